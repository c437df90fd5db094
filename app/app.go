package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"catalogo-productos/app/controller"
	"catalogo-productos/app/router"
	"catalogo-productos/db"
	"catalogo-productos/repository"
)

// Initialize connects to the database, ensures the schema and wires the
// repository and controllers into a mux. The caller owns both returned
// handles; there is no package-level state.
func Initialize(ctx context.Context) (*http.ServeMux, *sql.DB, error) {
	// Initialize database connection
	conn, err := db.Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repository and ensure the productos table exists
	productRepo := repository.NewProductRepository(conn)
	if err := productRepo.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Product: controller.NewProductController(productRepo),
	}

	// Setup routes
	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return mux, conn, nil
}
