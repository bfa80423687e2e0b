package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoloDigitos(t *testing.T) {
	assert.Equal(t, "4539148803436467", SoloDigitos("4539 1488 0343 6467"))
	assert.Equal(t, "123456789", SoloDigitos("+1 (23) 45-67.89"))
	assert.Equal(t, "", SoloDigitos("sin dígitos"))
	assert.Equal(t, "", SoloDigitos(""))
}

func TestTelefonoValido(t *testing.T) {
	tests := []struct {
		telefono string
		valido   bool
	}{
		{"123456", false},           // 6 dígitos: corto
		{"1234567", true},           // 7 dígitos: mínimo
		{"123456789012345", true},   // 15 dígitos: máximo
		{"1234567890123456", false}, // 16 dígitos: largo
		{"12345a7", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valido, TelefonoValido(tt.telefono), "telefono %q", tt.telefono)
	}
}

func TestCorreoValido(t *testing.T) {
	assert.True(t, CorreoValido("ana@ejemplo.com"))
	assert.True(t, CorreoValido("a@b.c"))
	assert.False(t, CorreoValido("sin-arroba.com"))
	assert.False(t, CorreoValido("dos@@ejemplo.com"))
	assert.False(t, CorreoValido("ana@sindominio"))
	assert.False(t, CorreoValido(""))
}

func TestTarjetaValida(t *testing.T) {
	// Vectores Luhn conocidos: el último dígito cambia el checksum.
	assert.True(t, TarjetaValida("4539148803436467"))
	assert.False(t, TarjetaValida("4539148803436468"))
	// Longitud incorrecta aunque Luhn cuadre.
	assert.False(t, TarjetaValida("453914880343646"))
	assert.False(t, TarjetaValida("45391488034364670"))
	assert.False(t, TarjetaValida(""))
}

func TestCVVValido(t *testing.T) {
	assert.True(t, CVVValido("123"))
	assert.True(t, CVVValido("1234"))
	assert.False(t, CVVValido("12"))
	assert.False(t, CVVValido("12345"))
	assert.False(t, CVVValido("12a"))
}

func TestExpiracionValida(t *testing.T) {
	tests := []struct {
		exp    string
		valido bool
	}{
		{"01/25", true},
		{"12/99", true},
		{"00/25", false},
		{"13/25", false},
		{"1/25", false},
		{"01-25", false},
		{"01/2025", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valido, ExpiracionValida(tt.exp), "exp %q", tt.exp)
	}
}
