package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"catalogo-productos/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	conn *sql.DB

	// Serializes Insert/Delete. The contract gives no ordering guarantee
	// for concurrent writes, so they are not allowed to race on id
	// assignment.
	writeMu sync.Mutex
}

// NewProductRepository creates a new ProductRepository on an injected handle
func NewProductRepository(conn *sql.DB) *ProductRepository {
	return &ProductRepository{conn: conn}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// EnsureSchema creates the productos table if it doesn't exist.
// The CHECK constraint keeps estado restricted to the two allowed literals.
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS productos (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			descripcion TEXT,
			precio DOUBLE PRECISION NOT NULL,
			estado TEXT CHECK(estado IN ('Disponible', 'No disponible')) NOT NULL,
			categoria TEXT,
			url_fotografia TEXT
		)
	`
	if _, err := r.conn.ExecContext(ctx, query); err != nil {
		log.Printf("❌ Error creating 'productos' table: %v", err)
		return fmt.Errorf("failed to create productos table: %w", err)
	}

	log.Printf("✓ Table 'productos' created or already exists")
	return nil
}

// Insert persists a new product and returns the stored record with its
// assigned id. Ids come from the SERIAL sequence and are never reused,
// even after a delete.
func (r *ProductRepository) Insert(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	// Check the schema constraints before touching the database so a bad
	// record is rejected with ErrConstraint instead of a driver error.
	if !req.HasRequiredFields() {
		return nil, fmt.Errorf("%w: nombre, precio y estado son obligatorios", ErrConstraint)
	}
	if !models.IsValidEstado(req.Estado) {
		return nil, fmt.Errorf("%w: estado debe ser '%s' o '%s'", ErrConstraint, models.EstadoDisponible, models.EstadoNoDisponible)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	query := `
		INSERT INTO productos (nombre, descripcion, precio, estado, categoria, url_fotografia)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	product := &models.Product{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Precio:        *req.Precio,
		Estado:        req.Estado,
		Categoria:     req.Categoria,
		URLFotografia: req.URLFotografia,
	}

	err := r.conn.QueryRowContext(ctx, query,
		req.Nombre, req.Descripcion, *req.Precio, req.Estado, req.Categoria, req.URLFotografia,
	).Scan(&product.ID)
	if err != nil {
		log.Printf("❌ Error inserting product: %v", err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("✓ Product inserted: id=%d, nombre=%s", product.ID, product.Nombre)
	return product, nil
}

// List returns all persisted products ordered by id, which is insertion
// order. No other sort is applied.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, nombre, COALESCE(descripcion, ''), precio, estado,
		       COALESCE(categoria, ''), COALESCE(url_fotografia, '')
		FROM productos
		ORDER BY id ASC
	`

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Estado, &p.Categoria, &p.URLFotografia); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

// Delete removes the product with the given id. A second delete of the
// same id reports ErrNotFound again; "already gone" is not a success.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	result, err := r.conn.ExecContext(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting product %d: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	log.Printf("✓ Product deleted: id=%d", id)
	return nil
}
