package services

import (
	"context"
	"testing"
	"time"

	"bookingportal/internal/booking"
	"bookingportal/internal/domain"
	"bookingportal/internal/domain/models"
	"bookingportal/internal/kvstore"
	"bookingportal/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	link string
	err  error
	got  booking.CreateRequest
}

func (f *fakeClient) CreateBooking(_ context.Context, req booking.CreateRequest) (string, error) {
	f.got = req
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

func validForm() models.BookingForm {
	return models.BookingForm{
		ConfirmationNumber: "123456789",
		GuestName:          "Jane Doe",
		GuestEmail:         "jane@example.com",
		SupplierAmount:     "45.00",
		AgencyFee:          "15.00",
		PaymentType:        "pay_at_counter",
		AgentName:          "Alex",
	}
}

func newService(client BookingClient) (*BookingService, *ledger.Store) {
	store := ledger.NewStore(kvstore.NewMemory())
	svc := NewBookingService(client, store)
	svc.ReArmDelay = 20 * time.Millisecond
	return svc, store
}

func TestSubmitSuccessAppendsLedger(t *testing.T) {
	client := &fakeClient{link: "https://pay.example/abc"}
	svc, store := newService(client)

	result, err := svc.Submit(context.Background(), "req-1", validForm())
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/abc", result.PaymentLink)
	assert.Equal(t, "15.00", result.Allocation.AmountToChargeNow)
	assert.Equal(t, "45.00", result.Allocation.AmountDueAtCounter)
	assert.False(t, result.StorageWarning)

	// outbound request carried the computed charge, not a recomputed one
	assert.Equal(t, "15.00", client.got.AmountToChargeNow)
	assert.Equal(t, "pay_at_counter", client.got.PaymentType)

	history := store.Load()
	require.Len(t, history, 1)
	assert.Equal(t, "Jane Doe", history[0].GuestName)
	assert.Equal(t, "123456789", history[0].ConfirmationNumber)
	assert.Equal(t, "15.00", history[0].Amount)
	assert.Equal(t, "https://pay.example/abc", history[0].Link)
	assert.NotZero(t, history[0].CreatedAt)

	assert.Equal(t, "Alex", store.AgentName())
}

func TestSubmitUpstreamFailureLeavesLedgerUntouched(t *testing.T) {
	client := &fakeClient{err: domain.UpstreamError{Msg: "stripe key invalid"}}
	svc, store := newService(client)

	_, err := svc.Submit(context.Background(), "req-1", validForm())
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))

	assert.Empty(t, store.Load())

	state := svc.State()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "stripe key invalid", state.ErrorMessage)

	// form stays resubmittable after a failure
	_, err = svc.Submit(context.Background(), "req-2", validForm())
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	svc, _ := newService(&fakeClient{link: "x"})

	form := validForm()
	form.GuestName = "  "
	_, err := svc.Submit(context.Background(), "req-1", form)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, StatusIdle, svc.State().Status)
}

func TestSubmitGateBlocksUntilReArm(t *testing.T) {
	client := &fakeClient{link: "https://pay.example/abc"}
	svc, _ := newService(client)

	_, err := svc.Submit(context.Background(), "req-1", validForm())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, svc.State().Status)

	// locked out right after success
	_, err = svc.Submit(context.Background(), "req-2", validForm())
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	// re-arms to idle after the delay
	require.Eventually(t, func() bool {
		return svc.State().Status == StatusIdle
	}, time.Second, 5*time.Millisecond)

	_, err = svc.Submit(context.Background(), "req-3", validForm())
	require.NoError(t, err)
}

func TestSubmitDefaultsPaymentModeToPrepaid(t *testing.T) {
	client := &fakeClient{link: "x"}
	svc, _ := newService(client)

	form := validForm()
	form.PaymentType = ""
	result, err := svc.Submit(context.Background(), "req-1", form)
	require.NoError(t, err)

	assert.Equal(t, "prepaid", client.got.PaymentType)
	assert.Equal(t, "60.00", result.Allocation.AmountToChargeNow)
	assert.Equal(t, "0.00", result.Allocation.AmountDueAtCounter)
}

func TestQuoteMatchesEngine(t *testing.T) {
	svc, _ := newService(&fakeClient{})
	got := svc.Quote("45.00", "15.00", "prepaid")
	assert.Equal(t, domain.ComputeAllocation("45.00", "15.00", domain.ModePrepaid), got)
}
