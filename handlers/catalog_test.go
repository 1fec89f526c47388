package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"chairbook/models"
	"chairbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubCatalogService fails every write with err and serves one fixed service.
type stubCatalogService struct {
	err error
}

func (s stubCatalogService) CreateService(_ context.Context, in models.Service) (*models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	in.ID = "svc-1"
	return &in, nil
}
func (s stubCatalogService) GetServices(context.Context) ([]models.Service, error) {
	return []models.Service{{ID: "svc-1"}}, nil
}
func (s stubCatalogService) GetService(_ context.Context, id string) (*models.Service, error) {
	if id != "svc-1" {
		return nil, fmt.Errorf("%w: service %s", catalog.ErrNotFound, id)
	}
	return &models.Service{ID: id}, nil
}
func (s stubCatalogService) EditService(_ context.Context, id string, _ models.ServiceUpdate) (*models.Service, error) {
	return &models.Service{ID: id}, s.err
}
func (s stubCatalogService) DeleteService(context.Context, string) error { return s.err }
func (s stubCatalogService) CreateProduct(_ context.Context, in models.Product) (*models.Product, error) {
	return &in, s.err
}
func (s stubCatalogService) GetProducts(context.Context) ([]models.Product, error) { return nil, nil }
func (s stubCatalogService) GetProduct(_ context.Context, id string) (*models.Product, error) {
	return &models.Product{ID: id}, nil
}
func (s stubCatalogService) EditProduct(_ context.Context, id string, _ models.ProductUpdate) (*models.Product, error) {
	return &models.Product{ID: id}, s.err
}
func (s stubCatalogService) DeleteProduct(context.Context, string) error { return s.err }

func newCatalogRouter(svc CatalogService) *gin.Engine {
	h := NewCatalogHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/create-service", h.CreateService)
	r.GET("/get-service/:id", h.GetService)
	r.DELETE("/delete-service/:id", h.DeleteService)
	r.DELETE("/delete-product/:id", h.DeleteProduct)
	return r
}

func TestCatalogHandlers(t *testing.T) {
	r := newCatalogRouter(stubCatalogService{})

	w := send(r, http.MethodPost, "/create-service", map[string]any{"serviceName": "Cut", "description": "x", "duration": 30, "price": 20})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	if w := get(r, "/get-service/svc-1"); w.Code != http.StatusOK {
		t.Fatalf("get: %d", w.Code)
	}
	if w := get(r, "/get-service/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("get missing: %d", w.Code)
	}
}

func TestCatalogHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: duration", catalog.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: used by 2", catalog.ErrInUse), http.StatusBadRequest},
		{fmt.Errorf("%w: gone", catalog.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		r := newCatalogRouter(stubCatalogService{err: tt.err})
		if w := send(r, http.MethodDelete, "/delete-service/svc-1", nil); w.Code != tt.status {
			t.Fatalf("%v: service status %d, want %d", tt.err, w.Code, tt.status)
		}
		if w := send(r, http.MethodDelete, "/delete-product/p-1", nil); w.Code != tt.status {
			t.Fatalf("%v: product status %d, want %d", tt.err, w.Code, tt.status)
		}
	}
}
