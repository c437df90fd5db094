package models

// Estado values accepted by the catalog. The database enforces the same
// pair with a CHECK constraint.
const (
	EstadoDisponible   = "Disponible"
	EstadoNoDisponible = "No disponible"
)

// Product represents a product in the database
type Product struct {
	ID            int     `json:"id"`
	Nombre        string  `json:"nombre"`
	Descripcion   string  `json:"descripcion"`
	Precio        float64 `json:"precio"`
	Estado        string  `json:"estado"`
	Categoria     string  `json:"categoria"`
	URLFotografia string  `json:"url_fotografia"`
}

// CreateProductRequest represents the request body for creating a product.
// Precio is a pointer so an absent field can be told apart from zero.
type CreateProductRequest struct {
	Nombre        string   `json:"nombre"`
	Descripcion   string   `json:"descripcion"`
	Precio        *float64 `json:"precio"`
	Estado        string   `json:"estado"`
	Categoria     string   `json:"categoria"`
	URLFotografia string   `json:"url_fotografia"`
}

// HasRequiredFields reports whether nombre, precio and estado are all present.
// A zero precio counts as absent, matching the mobile client's check.
func (r *CreateProductRequest) HasRequiredFields() bool {
	if r.Nombre == "" || r.Estado == "" {
		return false
	}
	if r.Precio == nil || *r.Precio == 0 {
		return false
	}
	return true
}

// IsValidEstado reports whether estado is one of the two allowed literals.
func IsValidEstado(estado string) bool {
	return estado == EstadoDisponible || estado == EstadoNoDisponible
}
