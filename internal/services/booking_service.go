package services

import (
	"context"
	"sync"
	"time"

	"bookingportal/internal/booking"
	"bookingportal/internal/domain"
	"bookingportal/internal/domain/models"
	"bookingportal/internal/ledger"
	"bookingportal/internal/utils"
)

// DefaultReArmDelay matches the portal's post-success lockout before the
// form accepts the next booking.
const DefaultReArmDelay = 10 * time.Second

// Submission states.
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusError   = "error"
)

// BookingClient is what the service needs from the external client.
type BookingClient interface {
	CreateBooking(ctx context.Context, req booking.CreateRequest) (string, error)
}

// SubmitState is the observable state of the submission gate.
type SubmitState struct {
	Status       string `json:"status"`
	PaymentLink  string `json:"paymentLink,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// SubmitResult is returned to the caller on a successful submission.
type SubmitResult struct {
	Allocation     domain.Allocation   `json:"allocation"`
	PaymentLink    string              `json:"paymentLink"`
	Record         models.LedgerRecord `json:"record"`
	StorageWarning bool                `json:"storageWarning,omitempty"`
}

// BookingService orchestrates one submission: compute the allocation, call
// the booking service, append the ledger on success. Only one submission is
// in flight at a time; after success the gate stays closed until the re-arm
// delay elapses.
type BookingService struct {
	Client     BookingClient
	Ledger     *ledger.Store
	ReArmDelay time.Duration

	mu    sync.Mutex
	state SubmitState
}

func NewBookingService(client BookingClient, store *ledger.Store) *BookingService {
	return &BookingService{
		Client:     client,
		Ledger:     store,
		ReArmDelay: DefaultReArmDelay,
		state:      SubmitState{Status: StatusIdle},
	}
}

// Quote recomputes the allocation for the current inputs. Pure passthrough
// to the engine; callers hit it on every amount or mode change.
func (s *BookingService) Quote(supplierAmount, agencyFee, paymentType string) domain.Allocation {
	return domain.ComputeAllocation(supplierAmount, agencyFee, domain.NormalizeMode(paymentType))
}

// State reports the current gate state.
func (s *BookingService) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs the full submission flow. A submission already in flight, or a
// success still inside the re-arm window, is rejected with a ConflictError.
// A failed upstream call re-opens the gate immediately and no ledger entry
// is written.
func (s *BookingService) Submit(ctx context.Context, requestID string, form models.BookingForm) (SubmitResult, error) {
	if err := validateForm(form); err != nil {
		return SubmitResult{}, err
	}

	if err := s.acquire(); err != nil {
		return SubmitResult{}, err
	}

	mode := domain.NormalizeMode(form.PaymentType)
	form.PaymentType = string(mode)
	alloc := domain.ComputeAllocation(form.SupplierAmount, form.AgencyFee, mode)

	link, err := s.Client.CreateBooking(ctx, booking.CreateRequest{
		BookingForm:       form,
		AmountToChargeNow: alloc.AmountToChargeNow,
	})
	if err != nil {
		s.fail(err.Error())
		utils.LogEvent(requestID, "booking", "submit", "upstream failed: "+err.Error())
		return SubmitResult{}, err
	}

	rec := models.LedgerRecord{
		GuestName:          form.GuestName,
		ConfirmationNumber: form.ConfirmationNumber,
		Amount:             alloc.AmountToChargeNow,
		Link:               link,
	}

	result := SubmitResult{Allocation: alloc, PaymentLink: link}

	newLedger, appendErr := s.Ledger.Append(rec)
	result.Record = newLedger[0]
	if appendErr != nil {
		// durability lost, submission still succeeded
		result.StorageWarning = true
		utils.LogEvent(requestID, "booking", "submit", "ledger append failed: "+appendErr.Error())
	}

	if form.AgentName != "" {
		if err := s.Ledger.SetAgentName(form.AgentName); err != nil {
			utils.LogEvent(requestID, "booking", "submit", "agent name cache failed: "+err.Error())
		}
	}

	s.succeed(link)
	utils.LogEvent(requestID, "booking", "submit", "confirmation="+form.ConfirmationNumber+" charged="+alloc.AmountToChargeNow)
	return result, nil
}

func validateForm(form models.BookingForm) error {
	switch {
	case utils.TrimOrEmpty(form.ConfirmationNumber) == "":
		return domain.ValidationError{Field: "confirmationNumber", Msg: "required"}
	case utils.TrimOrEmpty(form.GuestName) == "":
		return domain.ValidationError{Field: "guestName", Msg: "required"}
	case utils.TrimOrEmpty(form.GuestEmail) == "":
		return domain.ValidationError{Field: "guestEmail", Msg: "required"}
	}
	return nil
}

func (s *BookingService) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Status {
	case StatusLoading:
		return domain.ConflictError{Resource: "submission", Msg: "a submission is already in flight"}
	case StatusSuccess:
		return domain.ConflictError{Resource: "submission", Msg: "previous booking just completed, form re-arms shortly"}
	}
	s.state = SubmitState{Status: StatusLoading}
	return nil
}

func (s *BookingService) fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SubmitState{Status: StatusError, ErrorMessage: message}
}

func (s *BookingService) succeed(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SubmitState{Status: StatusSuccess, PaymentLink: link}

	delay := s.ReArmDelay
	if delay <= 0 {
		delay = DefaultReArmDelay
	}
	time.AfterFunc(delay, s.rearm)
}

func (s *BookingService) rearm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == StatusSuccess {
		s.state = SubmitState{Status: StatusIdle}
	}
}
