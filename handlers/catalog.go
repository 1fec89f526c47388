package handlers

import (
	"context"
	"errors"
	"net/http"

	"chairbook/models"
	"chairbook/services/catalog"
	"chairbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogService is the catalog API the handlers need.
type CatalogService interface {
	CreateService(ctx context.Context, in models.Service) (*models.Service, error)
	GetServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	EditService(ctx context.Context, id string, update models.ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, in models.Product) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	EditProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CatalogHandler struct {
	Svc    CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// CreateService handles POST /create-service.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var in models.Service
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	svc, err := h.Svc.CreateService(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "CreateService", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "service": svc, "message": "Service created successfully"})
}

// GetServices handles GET /get-services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	services, err := h.Svc.GetServices(c.Request.Context())
	if err != nil {
		h.fail(c, "GetServices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "services": services, "message": "All services retrieved successfully"})
}

// GetService handles GET /get-service/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetService", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "service": svc, "message": "Service retrieved successfully"})
}

// EditService handles PUT /edit-service/:id.
func (h *CatalogHandler) EditService(c *gin.Context) {
	var update models.ServiceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	svc, err := h.Svc.EditService(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, "EditService", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "service": svc, "message": "Service updated successfully"})
}

// DeleteService handles DELETE /delete-service/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "DeleteService", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "message": "Service deleted successfully"})
}

// CreateProduct handles POST /create-product.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in models.Product
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "product": p, "message": "Product created successfully"})
}

// GetProducts handles GET /get-products.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.Svc.GetProducts(c.Request.Context())
	if err != nil {
		h.fail(c, "GetProducts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "products": products, "message": "All products retrieved successfully"})
}

// GetProduct handles GET /get-product/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "product": p, "message": "Product retrieved successfully"})
}

// EditProduct handles PUT /edit-product/:id.
func (h *CatalogHandler) EditProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	p, err := h.Svc.EditProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, "EditProduct", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "product": p, "message": "Product updated successfully"})
}

// DeleteProduct handles DELETE /delete-product/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.Svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "DeleteProduct", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": false, "message": "Product deleted successfully"})
}

func (h *CatalogHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, catalog.ErrInUse):
		utils.JSONError(c, http.StatusBadRequest, "Cannot delete while appointments reference it", err.Error())
	default:
		h.Logger.Error(op+": failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
