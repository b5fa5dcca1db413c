package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/vkoval/product-store-service/internal/config"
)

// Controller handles general HTTP requests.
type Controller struct {
	config *config.Config
}

// New creates a new Controller with the given configuration.
func New(config *config.Config) *Controller {
	return &Controller{
		config: config,
	}
}

// Health handles the HTTP GET request for the liveness probe.
func (con *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "OK",
	})
}

// Index serves the static landing page.
func (con *Controller) Index(c *gin.Context) {
	c.File(filepath.Join(con.config.StaticDir, "index.html"))
}
