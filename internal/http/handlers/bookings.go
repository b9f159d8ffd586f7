package handlers

import (
	"net/http"

	"bookingportal/internal/domain/models"
	"bookingportal/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// QuoteRequest carries the three inputs the allocation depends on.
type QuoteRequest struct {
	SupplierAmount string `json:"supplierAmount"`
	AgencyFee      string `json:"agencyFee"`
	PaymentType    string `json:"paymentType"`
}

// Quote recomputes the charge split for the current form inputs.
func (a *API) Quote(c *gin.Context) {
	var req QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	c.JSON(http.StatusOK, a.Bookings.Quote(req.SupplierAmount, req.AgencyFee, req.PaymentType))
}

// SubmitBooking forwards the form to the external booking service and, on
// success, records the booking in the local ledger.
func (a *API) SubmitBooking(c *gin.Context) {
	var form models.BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}

	result, err := a.Bookings.Submit(c.Request.Context(), middleware.GetRequestID(c), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"link":           result.PaymentLink,
		"allocation":     result.Allocation,
		"record":         result.Record,
		"storageWarning": result.StorageWarning,
	})
}

// SubmitStatus exposes the submission gate so the form can disable or
// re-enable its submit control.
func (a *API) SubmitStatus(c *gin.Context) {
	c.JSON(http.StatusOK, a.Bookings.State())
}
