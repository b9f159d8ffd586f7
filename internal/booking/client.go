// Package booking talks to the external booking/payment service. The service
// issues the Stripe payment link and sends the guest email; this side only
// consumes its contract.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookingportal/internal/domain"
	"bookingportal/internal/domain/models"
)

const defaultErrorMessage = "Failed to create booking"

// CreateRequest is the submission body: every form field verbatim plus the
// computed charge. The service is not trusted to recompute the split; the
// amount sent is the amount charged.
type CreateRequest struct {
	models.BookingForm
	AmountToChargeNow string `json:"amountToChargeNow"`
}

type createResponse struct {
	Success bool   `json:"success"`
	Link    string `json:"link"`
	Error   string `json:"error"`
}

// Client submits bookings over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) Client {
	return Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateBooking posts the submission and returns the payment link. Any
// transport error, non-success status or success:false body comes back as an
// UpstreamError carrying the service's message when it sent one.
func (c Client) CreateBooking(ctx context.Context, req CreateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to encode booking", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/create-booking", bytes.NewReader(body))
	if err != nil {
		return "", domain.InternalError{Msg: "failed to build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return "", domain.UpstreamError{Msg: "Server is not responding. Check API keys.", Err: err}
	}
	defer resp.Body.Close()

	var result createResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		msg := strings.TrimSpace(result.Error)
		if msg == "" {
			msg = defaultErrorMessage
		}
		return "", domain.UpstreamError{Msg: msg, Err: fmt.Errorf("booking service status %d", resp.StatusCode)}
	}
	if decodeErr != nil {
		return "", domain.UpstreamError{Msg: defaultErrorMessage, Err: decodeErr}
	}

	return result.Link, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
