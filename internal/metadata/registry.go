// Package metadata describes the registers to clients: their fields, types
// and which fields drive the filter bar and record selector.
package metadata

import (
	"sort"
	"sync"
)

// EntityType defines the category of the entity.
type EntityType string

const (
	TypeRegister  EntityType = "register"
	TypeDirectory EntityType = "directory"
)

// FieldType defines the data type of a field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeNumber  FieldType = "number" // decimal
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
	TypeID      FieldType = "id"
	TypeEnum    FieldType = "enum"
)

// EntityDef describes a register.
type EntityDef struct {
	Name  string     `json:"name"`
	Label string     `json:"label,omitempty"`
	Type  EntityType `json:"type"`

	// Roles maps field1, field2, date and identifier to field names
	Roles  map[string]string `json:"roles,omitempty"`
	Fields []FieldDef        `json:"fields"`
}

// FieldDef describes a field.
type FieldDef struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	ReadOnly bool      `json:"readOnly,omitempty"`
	Scale    int       `json:"scale,omitempty"` // For numbers
	Options  []string  `json:"options,omitempty"`
}

// Field returns the named field definition.
func (d *EntityDef) Field(name string) (*FieldDef, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// Require marks fields as required.
func (d *EntityDef) Require(names ...string) {
	for _, n := range names {
		if f, ok := d.Field(n); ok {
			f.Required = true
		}
	}
}

// Enum turns a field into an enum with the given options.
func (d *EntityDef) Enum(name string, options ...string) {
	if f, ok := d.Field(name); ok {
		f.Type = TypeEnum
		f.Options = options
	}
}

// Registry stores entity definitions.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]EntityDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]EntityDef),
	}
}

// Register adds or replaces a definition.
func (r *Registry) Register(def EntityDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[def.Name] = def
}

// Get returns the named definition.
func (r *Registry) Get(name string) (EntityDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entities[name]
	return d, ok
}

// List returns all definitions sorted by name.
func (r *Registry) List() []EntityDef {
	r.mu.RLock()
	list := make([]EntityDef, 0, len(r.entities))
	for _, def := range r.entities {
		list = append(list, def)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
