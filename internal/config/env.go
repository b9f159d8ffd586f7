package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	// BookingServiceURL is the base URL of the external booking/payment
	// service the portal submits to.
	BookingServiceURL string

	// LedgerBackend selects where the booking history persists:
	// "bolt" (default), "mysql" or "memory".
	LedgerBackend string
	LedgerPath    string
	MySQLDSN      string

	CatalogPath string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	// .env is a convenience for local runs; absence is fine
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	serviceURL := strings.TrimSpace(os.Getenv("BOOKING_SERVICE_URL"))
	if serviceURL == "" {
		serviceURL = "https://carrentalemailservice-c73f9b7cf7b6.herokuapp.com"
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_BACKEND")))
	if backend == "" {
		backend = "bolt"
	}

	ledgerPath := strings.TrimSpace(os.Getenv("LEDGER_PATH"))
	if ledgerPath == "" {
		ledgerPath = "portal.db"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		BookingServiceURL:  serviceURL,
		LedgerBackend:      backend,
		LedgerPath:         ledgerPath,
		MySQLDSN:           strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		CatalogPath:        strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		CORSAllowedOrigins: origins,
	}
}
