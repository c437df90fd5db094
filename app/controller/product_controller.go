package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"catalogo-productos/models"
	"catalogo-productos/repository"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{
		repository: repo,
	}
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeError writes the single-message error envelope
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// ListProducts handles GET /productos
// Responds with every persisted product in insertion order. An empty
// catalog is a success, not an error.
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	products, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListProducts: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("✓ ListProducts: Returning %d products", len(products))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    products,
	})
}

// CreateProduct handles POST /productos
// Validates the required fields before calling the store; the store is
// never invoked for a request that is missing nombre, precio or estado.
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Cuerpo de la solicitud inválido: %v", err))
		return
	}

	if !req.HasRequiredFields() {
		log.Printf("❌ CreateProduct: Missing required fields")
		writeError(w, http.StatusBadRequest, "Faltan campos obligatorios: nombre, precio y estado.")
		return
	}

	product, err := c.repository.Insert(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error inserting product: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("✅ CreateProduct: Product created - id=%d, nombre=%s", product.ID, product.Nombre)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Producto creado con éxito",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /items/:id
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	idStr := strings.TrimPrefix(r.URL.Path, "/items/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Printf("❌ DeleteProduct: Invalid id %q", idStr)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Id inválido: %q", idStr))
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("❌ DeleteProduct: Product %d not found", id)
			writeError(w, http.StatusNotFound, "Producto no encontrado.")
			return
		}
		log.Printf("❌ DeleteProduct: Error deleting product %d: %v", id, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("✅ DeleteProduct: Product deleted - id=%d", id)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Producto eliminado con éxito",
		"id":      id,
	})
}
