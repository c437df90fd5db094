package repository

import (
	"context"

	"catalogo-productos/models"
)

// ProductRepositoryInterface defines the contract for product storage operations
type ProductRepositoryInterface interface {
	Insert(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id int) error
}
