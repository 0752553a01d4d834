package metadata

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"tcnursery/internal/core/id"
	"tcnursery/internal/domain"
)

var (
	idType      = reflect.TypeOf(id.ID{})
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// Inspect analyzes a struct and returns its EntityDef.
func Inspect(entity any, name string, entityType EntityType) EntityDef {
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if name == "" {
		name = t.Name()
	}

	def := EntityDef{
		Name:   name,
		Label:  guessLabel(name),
		Type:   entityType,
		Fields: make([]FieldDef, 0),
	}

	inspectStruct(t, &def)

	return def
}

// FromDefinition inspects a register's record type and attaches its label and roles.
func FromDefinition[T any](d domain.Definition[T], entityType EntityType) EntityDef {
	var zero T
	def := Inspect(zero, d.Name, entityType)
	def.Label = d.Label
	def.Roles = d.Roles()
	return def
}

func inspectStruct(t reflect.Type, def *EntityDef) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.PkgPath != "" { // unexported
			continue
		}

		// Handle embedded structs (flattening)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			inspectStruct(field.Type, def)
			continue
		}

		fDef := FieldDef{
			Name:     jsonName(field),
			Label:    guessLabel(field.Name),
			ReadOnly: isReadOnly(field),
		}
		if fDef.Name == "-" {
			continue
		}

		mapFieldType(&fDef, field)
		def.Fields = append(def.Fields, fDef)
	}
}

func mapFieldType(def *FieldDef, field reflect.StructField) {
	t := field.Type

	switch t {
	case idType:
		def.Type = TypeID
		return
	case timeType:
		def.Type = TypeDate
		return
	case decimalType:
		def.Type = TypeNumber
		def.Scale = 2
		if strings.Contains(field.Name, "Quantity") {
			def.Scale = 3
		}
		return
	}

	switch t.Kind() {
	case reflect.String:
		// Calendar dates are YYYY-MM-DD strings
		if field.Name == "Date" || strings.HasSuffix(field.Name, "Date") {
			def.Type = TypeDate
		} else {
			def.Type = TypeString
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		def.Type = TypeInteger
	case reflect.Float32, reflect.Float64:
		def.Type = TypeNumber
		def.Scale = 2
	case reflect.Bool:
		def.Type = TypeBoolean
	default:
		def.Type = TypeString // fallback
	}
}

func jsonName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			return parts[0]
		}
	}
	// Fallback: camelCase
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func isReadOnly(field reflect.StructField) bool {
	switch field.Name {
	case "ID", "Version", "CreatedAt", "UpdatedAt":
		return true
	}
	return false
}

// guessLabel splits CamelCase into words: "BatchNumber" -> "Batch number".
func guessLabel(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte(' ')
				r = unicode.ToLower(r)
			} else if !unicode.IsUpper(runes[i-1]) {
				r = unicode.ToLower(r)
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
