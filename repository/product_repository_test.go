package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo-productos/models"
	"catalogo-productos/repository"
)

// setupTestRepo attempts to connect to a PostgreSQL database for testing.
// It skips the test if the connection cannot be established.
func setupTestRepo(t *testing.T) *repository.ProductRepository {
	t.Helper()

	pgUser := os.Getenv("PGUSER")
	pgPassword := os.Getenv("PGPASSWORD")
	pgHost := os.Getenv("PGHOST")
	pgPort := os.Getenv("PGPORT")
	pgDB := os.Getenv("PGDATABASE")

	if pgUser == "" {
		pgUser = "user"
	}
	if pgPassword == "" {
		pgPassword = "password"
	}
	if pgHost == "" {
		pgHost = "localhost"
	}
	if pgPort == "" {
		pgPort = "5432"
	}
	if pgDB == "" {
		pgDB = "testdb"
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgHost, pgPort, pgUser, pgPassword, pgDB)

	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}

	if err := conn.Ping(); err != nil {
		t.Skipf("skipping repository tests: could not connect to postgres: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	repo := repository.NewProductRepository(conn)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	// Start every test from an empty catalog
	_, err = conn.Exec(`TRUNCATE productos`)
	require.NoError(t, err)

	return repo
}

func precio(v float64) *float64 { return &v }

func TestInsertAndList_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre:      "Silla",
		Descripcion: "Silla de madera",
		Precio:      precio(49.99),
		Estado:      models.EstadoDisponible,
		Categoria:   "Muebles",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	second, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Mesa",
		Precio: precio(120),
		Estado: models.EstadoNoDisponible,
	})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, *created, products[0])
	assert.Equal(t, *second, products[1])
}

func TestInsert_IDsAreMonotonic(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var lastID int
	for i := 0; i < 3; i++ {
		created, err := repo.Insert(ctx, &models.CreateProductRequest{
			Nombre: fmt.Sprintf("Producto %d", i),
			Precio: precio(10),
			Estado: models.EstadoDisponible,
		})
		require.NoError(t, err)
		assert.Greater(t, created.ID, lastID)
		lastID = created.ID
	}

	// A deleted id is never reused
	require.NoError(t, repo.Delete(ctx, lastID))
	created, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Otro",
		Precio: precio(5),
		Estado: models.EstadoDisponible,
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, lastID)
}

func TestInsert_RejectsMissingFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Silla",
		Estado: models.EstadoDisponible,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConstraint)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestInsert_RejectsInvalidEstado(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Silla",
		Precio: precio(49.99),
		Estado: "Agotado",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConstraint)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDelete_NotFoundAndIdempotenceOfAbsence(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Silla",
		Precio: precio(49.99),
		Estado: models.EstadoDisponible,
	})
	require.NoError(t, err)

	// First delete succeeds, second reports not found
	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrNotFound)

	// Deleting an id that never existed changes nothing
	assert.ErrorIs(t, repo.Delete(ctx, 999999), repository.ErrNotFound)
	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestInsert_NegativePrecioIsAllowed(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.CreateProductRequest{
		Nombre: "Descuento",
		Precio: precio(-5),
		Estado: models.EstadoDisponible,
	})
	require.NoError(t, err)
	assert.Equal(t, -5.0, created.Precio)
}
