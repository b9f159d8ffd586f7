package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "booking portal running"})
}

// StoreCheck verifies the ledger backend responds by reading the history key.
func (a *API) StoreCheck(c *gin.Context) {
	if a.Ledger == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ledger store not wired"})
		return
	}
	records := a.Ledger.Load()
	c.JSON(http.StatusOK, gin.H{"message": "ledger store OK", "recordsInLedger": len(records)})
}
