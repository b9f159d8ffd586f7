package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	"bookingportal/internal/kvstore"

	_ "github.com/go-sql-driver/mysql"
)

// OpenBackend builds the ledger persistence backend selected by env. A
// backend that cannot be opened degrades to in-memory with a warning:
// losing durability must never keep the portal from taking bookings.
func OpenBackend(env Env) (kvstore.Backend, func()) {
	switch env.LedgerBackend {
	case "memory":
		log.Println("ledger backend: in-memory (no persistence)")
		return kvstore.NewMemory(), func() {}

	case "mysql":
		backend, closeFn, err := openMySQL(env.MySQLDSN)
		if err != nil {
			log.Printf("warning: mysql ledger backend unavailable, falling back to memory: %v", err)
			return kvstore.NewMemory(), func() {}
		}
		log.Println("ledger backend: mysql")
		return backend, closeFn

	default:
		b, err := kvstore.OpenBolt(env.LedgerPath)
		if err != nil {
			log.Printf("warning: cannot open ledger file %s, falling back to memory: %v", env.LedgerPath, err)
			return kvstore.NewMemory(), func() {}
		}
		log.Printf("ledger backend: bolt (%s)", env.LedgerPath)
		return b, func() { _ = b.Close() }
	}
}

func openMySQL(dsn string) (kvstore.Backend, func(), error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	backend := kvstore.SQL{DB: db}
	if err := backend.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return backend, func() { _ = db.Close() }, nil
}
