package domain

import "bookingportal/internal/utils"

// PaymentMode selects how a booking is paid. Prepaid charges the full trip
// cost online; pay-at-counter charges only the agency fee online and leaves
// the supplier amount to be collected in person.
type PaymentMode string

const (
	ModePrepaid      PaymentMode = "prepaid"
	ModePayAtCounter PaymentMode = "pay_at_counter"
)

// NormalizeMode maps arbitrary input to a valid mode, defaulting to prepaid.
func NormalizeMode(s string) PaymentMode {
	if PaymentMode(s) == ModePayAtCounter {
		return ModePayAtCounter
	}
	return ModePrepaid
}

// Allocation is the derived charge split. All fields are 2-decimal dollar
// strings; the allocation is recomputed from inputs and never stored.
type Allocation struct {
	TotalTripCost      string `json:"totalTripCost"`
	AmountToChargeNow  string `json:"amountToChargeNow"`
	AmountDueAtCounter string `json:"amountDueAtCounter"`
}

// ComputeAllocation derives the online/counter split from the two dollar
// inputs and the payment mode. Malformed or empty amounts count as zero.
//
// Each input is rounded to integer cents first, halves away from zero, and
// the split is computed on cents, so
// amountToChargeNow + amountDueAtCounter == totalTripCost holds exactly.
func ComputeAllocation(supplierAmount, agencyFee string, mode PaymentMode) Allocation {
	supplierCents := utils.RoundCents(utils.ParseAmount(supplierAmount))
	feeCents := utils.RoundCents(utils.ParseAmount(agencyFee))
	totalCents := supplierCents + feeCents

	chargeCents := totalCents
	counterCents := int64(0)
	if mode == ModePayAtCounter {
		chargeCents = feeCents
		counterCents = supplierCents
	}

	return Allocation{
		TotalTripCost:      utils.FormatCents(totalCents),
		AmountToChargeNow:  utils.FormatCents(chargeCents),
		AmountDueAtCounter: utils.FormatCents(counterCents),
	}
}
