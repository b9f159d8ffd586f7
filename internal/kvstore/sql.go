package kvstore

import (
	"database/sql"
	"time"
)

// SQL stores snapshots in a MySQL key-value table, for desks that keep the
// portal state on the office database server instead of a local file.
type SQL struct {
	DB    *sql.DB
	Table string
}

func (s SQL) table() string {
	if s.Table != "" {
		return s.Table
	}
	return "portal_state"
}

// EnsureSchema creates the key-value table when missing.
func (s SQL) EnsureSchema() error {
	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS ` + s.table() + ` (
		k VARCHAR(191) NOT NULL PRIMARY KEY,
		v LONGBLOB NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	return err
}

func (s SQL) Get(key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRow(`SELECT v FROM `+s.table()+` WHERE k=? LIMIT 1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s SQL) Set(key string, value []byte) error {
	_, err := s.DB.Exec(`INSERT INTO `+s.table()+` (k, v, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE v=VALUES(v), updated_at=VALUES(updated_at)`,
		key, value, time.Now())
	return err
}

func (s SQL) Delete(key string) error {
	_, err := s.DB.Exec(`DELETE FROM `+s.table()+` WHERE k=?`, key)
	return err
}
