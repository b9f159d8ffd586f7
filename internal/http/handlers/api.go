package handlers

import (
	"bookingportal/internal/catalog"
	"bookingportal/internal/ledger"
	"bookingportal/internal/services"
)

// API bundles the dependencies the handlers close over. The router builds
// one and mounts its methods.
type API struct {
	Bookings *services.BookingService
	Ledger   *ledger.Store
	Catalog  catalog.Catalog
}
