package models

// BookingForm carries one intake submission. The identity and trip fields are
// opaque strings forwarded to the booking service verbatim; only the two
// amounts and the payment type feed the allocation.
type BookingForm struct {
	ConfirmationNumber string `json:"confirmationNumber"`
	GuestName          string `json:"guestName"`
	GuestEmail         string `json:"guestEmail"`

	PickupLocation  string `json:"pickupLocation"`
	PickupDate      string `json:"pickupDate"`
	DropoffLocation string `json:"dropoffLocation"`
	DropoffDate     string `json:"dropoffDate"`

	VehicleCategory string `json:"vehicleCategory"`
	VehicleModel    string `json:"vehicleModel"`
	SupplierName    string `json:"supplierName"`

	SupplierAmount string `json:"supplierAmount"`
	AgencyFee      string `json:"agencyFee"`
	PaymentType    string `json:"paymentType"`

	AgentName  string `json:"agentName"`
	Commission string `json:"commission"`
}
