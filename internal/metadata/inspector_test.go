package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/sampling"
)

func TestGuessLabel(t *testing.T) {
	assert.Equal(t, "Batch number", guessLabel("BatchNumber"))
	assert.Equal(t, "Created at", guessLabel("CreatedAt"))
	assert.Equal(t, "ID", guessLabel("ID"))
	assert.Equal(t, "media", guessLabel("media"))
}

func TestFromDefinition(t *testing.T) {
	def := FromDefinition(inventory.Definition(), TypeRegister)

	assert.Equal(t, "inventory", def.Name)
	assert.Equal(t, "Inventory", def.Label)
	assert.Equal(t, map[string]string{
		"field1":     "category",
		"field2":     "itemName",
		"date":       "date",
		"identifier": "reference",
	}, def.Roles)

	id, ok := def.Field("id")
	require.True(t, ok)
	assert.Equal(t, TypeID, id.Type)
	assert.True(t, id.ReadOnly)

	date, ok := def.Field("date")
	require.True(t, ok)
	assert.Equal(t, TypeDate, date.Type)

	qty, ok := def.Field("quantity")
	require.True(t, ok)
	assert.Equal(t, TypeNumber, qty.Type)
	assert.Equal(t, 3, qty.Scale)

	created, ok := def.Field("createdAt")
	require.True(t, ok)
	assert.Equal(t, TypeDate, created.Type)
}

func TestEntityDef_EnumAndRequire(t *testing.T) {
	def := FromDefinition(sampling.Definition(), TypeRegister)
	def.Enum("status", "received", "testing", "passed", "failed")
	def.Require("date", "cropName")

	status, ok := def.Field("status")
	require.True(t, ok)
	assert.Equal(t, TypeEnum, status.Type)
	assert.Len(t, status.Options, 4)

	crop, _ := def.Field("cropName")
	assert.True(t, crop.Required)

	no, _ := def.Field("sampleNo")
	assert.Equal(t, TypeInteger, no.Type)
	assert.False(t, no.Required)
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(EntityDef{Name: "supplier"})
	reg.Register(EntityDef{Name: "media"})

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "media", list[0].Name)

	_, ok := reg.Get("hardening")
	assert.False(t, ok)
}
