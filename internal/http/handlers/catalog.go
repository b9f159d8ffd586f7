package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCatalog serves the option lists for the form selects.
func (a *API) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, a.Catalog)
}
