package handlers

import (
	"net/http"
	"strings"

	"bookingportal/internal/domain"
	"bookingportal/internal/http/middleware"
	"bookingportal/internal/services"
	"bookingportal/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetHistory loads the ledger, pruning expired records as a side effect.
func (a *API) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": a.Ledger.Load()})
}

// ClearHistory wipes the ledger. The store does not second-guess the caller,
// so confirmation is enforced here with an explicit confirm=true.
func (a *API) ClearHistory(c *gin.Context) {
	if !strings.EqualFold(c.Query("confirm"), "true") {
		RespondDomainError(c, domain.ValidationError{Field: "confirm", Msg: "pass confirm=true to clear the booking history"})
		return
	}

	_, err := a.Ledger.Clear()
	if err != nil {
		// in-memory ledger is already empty; report the durability loss
		utils.LogEvent(middleware.GetRequestID(c), "ledger", "clear", err.Error())
		c.JSON(http.StatusOK, gin.H{"history": []any{}, "storageWarning": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": []any{}})
}

// GetReceipt renders a PDF receipt for one ledger record.
func (a *API) GetReceipt(c *gin.Context) {
	rec, err := a.Ledger.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateReceipt(rec)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to generate receipt", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetAgent returns the cached agent name for pre-filling the form.
func (a *API) GetAgent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agentName": a.Ledger.AgentName()})
}

type agentRequest struct {
	AgentName string `json:"agentName"`
}

// SetAgent caches the agent name for the next session.
func (a *API) SetAgent(c *gin.Context) {
	var req agentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.Ledger.SetAgentName(req.AgentName); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "ledger", "agent", err.Error())
		c.JSON(http.StatusOK, gin.H{"agentName": req.AgentName, "storageWarning": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agentName": req.AgentName})
}
