package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vkoval/product-store-service/internal/model"
	"github.com/vkoval/product-store-service/internal/repository"
	"github.com/vkoval/product-store-service/internal/service"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// decodeBody decodes the request body into a generic mapping. UseNumber
// keeps the price intact until ParsePrice sees it.
func decodeBody(c *gin.Context) (map[string]any, error) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, &model.ValidationError{Detail: "malformed JSON body"}
	}
	return data, nil
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	data, err := decodeBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	product, err := (&model.Product{}).Deserialize(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	if err := pc.productService.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%d", product.ID))
	c.JSON(http.StatusCreated, product.Serialize())
}

// GetProduct handles the HTTP GET request for reading a product by ID.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// ids only exist for persisted rows, so a non-numeric id cannot match one
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, err := pc.productService.FindProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read product"})
		return
	}

	c.JSON(http.StatusOK, product.Serialize())
}

// UpdateProduct handles the HTTP PUT request for updating a product by ID.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, err := pc.productService.FindProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read product"})
		return
	}

	data, err := decodeBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	// deserializing onto the fetched entity keeps its id
	if _, err := product.Deserialize(data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	if err := pc.productService.UpdateProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product.Serialize())
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := pc.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProducts handles the HTTP GET request for listing products with
// optional filters. Filter precedence: name, then category, then
// availability, then no filter.
func (pc *ProductController) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []*model.Product
		err      error
	)

	// a present-but-empty available parameter is still a filter request,
	// so it must be validated rather than ignored
	availableParam, hasAvailable := c.GetQuery("available")

	switch {
	case c.Query("name") != "":
		products, err = pc.productService.FindByName(ctx, c.Query("name"))

	case c.Query("category") != "":
		category, parseErr := model.ParseCategory(c.Query("category"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		products, err = pc.productService.FindByCategory(ctx, category)

	case hasAvailable:
		available := strings.ToLower(availableParam)
		if available != "true" && available != "false" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability"})
			return
		}
		products, err = pc.productService.FindByAvailability(ctx, available == "true")

	default:
		products, err = pc.productService.ListProducts(ctx)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	results := make([]map[string]any, 0, len(products))
	for _, product := range products {
		results = append(results, product.Serialize())
	}

	c.JSON(http.StatusOK, results)
}
