package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func precio(v float64) *float64 { return &v }

func TestHasRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		req  CreateProductRequest
		want bool
	}{
		{"complete", CreateProductRequest{Nombre: "Silla", Precio: precio(49.99), Estado: EstadoDisponible}, true},
		{"missing nombre", CreateProductRequest{Precio: precio(49.99), Estado: EstadoDisponible}, false},
		{"missing precio", CreateProductRequest{Nombre: "Silla", Estado: EstadoDisponible}, false},
		{"zero precio counts as absent", CreateProductRequest{Nombre: "Silla", Precio: precio(0), Estado: EstadoDisponible}, false},
		{"negative precio is present", CreateProductRequest{Nombre: "Silla", Precio: precio(-1), Estado: EstadoDisponible}, true},
		{"missing estado", CreateProductRequest{Nombre: "Silla", Precio: precio(49.99)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.HasRequiredFields())
		})
	}
}

func TestIsValidEstado(t *testing.T) {
	assert.True(t, IsValidEstado(EstadoDisponible))
	assert.True(t, IsValidEstado(EstadoNoDisponible))
	assert.False(t, IsValidEstado("Agotado"))
	assert.False(t, IsValidEstado("disponible"))
	assert.False(t, IsValidEstado(""))
}

// The wire-level field names are part of the API contract and must stay
// in Spanish.
func TestProductWireFieldNames(t *testing.T) {
	payload, err := json.Marshal(Product{
		ID:            1,
		Nombre:        "Silla",
		Descripcion:   "Silla de madera",
		Precio:        49.99,
		Estado:        EstadoDisponible,
		Categoria:     "Muebles",
		URLFotografia: "https://placehold.co/100x100",
	})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))
	for _, name := range []string{"id", "nombre", "descripcion", "precio", "estado", "categoria", "url_fotografia"} {
		assert.Contains(t, fields, name)
	}
}
