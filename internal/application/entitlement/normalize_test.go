package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Inventario", "inventario"},
		{"accents stripped", "Autenticación", "autenticacion"},
		{"punctuation collapses", "Núm. Inventário!", "num-inventario"},
		{"inner whitespace", "  Core   De  Autenticación ", "core-de-autenticacion"},
		{"already normalized", "num-inventario", "num-inventario"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigKey(tt.in))
		})
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Inventario", "INVENTARIO"},
		{"accents stripped", "Autenticación", "AUTENTICACION"},
		{"punctuation collapses", "Núm. Inventário!", "NUM_INVENTARIO"},
		{"inner whitespace", "  Core   De  Autenticación ", "CORE_DE_AUTENTICACION"},
		{"already normalized", "NUM_INVENTARIO", "NUM_INVENTARIO"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleName(tt.in))
		})
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	inputs := []string{"Núm. Inventário!", "Autenticación", "ventas y compras", "A--B__C"}
	for _, in := range inputs {
		assert.Equal(t, ConfigKey(in), ConfigKey(ConfigKey(in)), "ConfigKey(%q)", in)
		assert.Equal(t, ModuleName(in), ModuleName(ModuleName(in)), "ModuleName(%q)", in)
	}
}

func TestEquivalentSpellingsConverge(t *testing.T) {
	// Different user-facing spellings of the same module must resolve to the
	// same registry name and the same config key.
	spellings := []string{"Núm. Inventário!", "num inventario", "NUM-INVENTARIO", "núm__inventario"}
	for _, s := range spellings {
		assert.Equal(t, "NUM_INVENTARIO", ModuleName(s), "ModuleName(%q)", s)
		assert.Equal(t, "num-inventario", ConfigKey(s), "ConfigKey(%q)", s)
	}
}

func TestAuthorityHelpers(t *testing.T) {
	assert.Equal(t, "ROLE_ADMIN", RoleAuthority("Admin"))
	assert.Equal(t, "ROLE_VENDEDOR", RoleAuthority("vendedor"))
	assert.Equal(t, "MODULE_CORE_DE_AUTENTICACION", ModuleAuthority("Core De Autenticación"))
}

func TestAuthoritySet(t *testing.T) {
	s := NewAuthoritySet("ROLE_ADMIN")
	s.Add("MODULE_INVENTARIO")
	s.Add("MODULE_INVENTARIO")

	assert.True(t, s.Has("ROLE_ADMIN"))
	assert.False(t, s.Has("MODULE_COMPRAS"))
	assert.True(t, s.HasAny("MODULE_COMPRAS", "MODULE_INVENTARIO"))
	assert.False(t, s.HasAny())
	assert.Equal(t, []string{"MODULE_INVENTARIO", "ROLE_ADMIN"}, s.Values())
}
