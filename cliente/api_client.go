package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"catalogo-productos/models"
)

// APIClient is a thin HTTP wrapper over the catalog API. It holds no
// state beyond the base URL; every call is one request, one response.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new APIClient for the given base URL
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// listResponse mirrors the GET /productos envelope
type listResponse struct {
	Message string           `json:"message"`
	Data    []models.Product `json:"data"`
	Error   string           `json:"error"`
}

// createResponse mirrors the POST /productos envelope
type createResponse struct {
	Message string          `json:"message"`
	Data    *models.Product `json:"data"`
	Error   string          `json:"error"`
}

// deleteResponse mirrors the DELETE /items/:id envelope
type deleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
	Error   string `json:"error"`
}

// FetchProducts retrieves the full product list in stored order
func (c *APIClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/productos", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("%s", body.Error)
	}

	return body.Data, nil
}

// CreateProduct sends a candidate product and returns the stored record
// including its server-assigned id
func (c *APIClient) CreateProduct(ctx context.Context, product *models.CreateProductRequest) (*models.Product, error) {
	payload, err := json.Marshal(product)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/productos", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body createResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode create response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("%s", body.Error)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("unexpected empty create response")
	}

	return body.Data, nil
}

// DeleteProduct removes the product with the given id
func (c *APIClient) DeleteProduct(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/items/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode delete response: %w", err)
	}
	if body.Error != "" {
		return fmt.Errorf("%s", body.Error)
	}

	return nil
}
