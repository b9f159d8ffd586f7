package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingportal/internal/booking"
	"bookingportal/internal/catalog"
	intconfig "bookingportal/internal/config"
	router "bookingportal/internal/http"
	"bookingportal/internal/http/handlers"
	"bookingportal/internal/ledger"
	"bookingportal/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	backend, closeBackend := intconfig.OpenBackend(env)
	defer closeBackend()

	store := ledger.NewStore(backend)
	// prune on startup so the first history view is already converged
	log.Printf("ledger loaded with %d record(s)", len(store.Load()))

	cat, err := catalog.Load(env.CatalogPath)
	if err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}

	api := &handlers.API{
		Bookings: services.NewBookingService(booking.NewClient(env.BookingServiceURL), store),
		Ledger:   store,
		Catalog:  cat,
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Booking portal listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
