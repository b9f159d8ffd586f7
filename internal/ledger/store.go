// Package ledger owns the locally persisted history of completed bookings.
package ledger

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"bookingportal/internal/domain"
	"bookingportal/internal/domain/models"
	"bookingportal/internal/kvstore"
	"bookingportal/internal/utils"

	"github.com/google/uuid"
)

const (
	historyKey   = "bookingHistory"
	agentNameKey = "agentName"

	// RetentionWindow is how long a record stays in the ledger. Records
	// without a createdAt timestamp predate timestamping and never expire.
	RetentionWindow = 30 * 24 * time.Hour
)

// Store persists the booking ledger through an injected backend. The
// in-memory copy stays authoritative for the session when the backend fails,
// so a broken disk costs durability, never the ability to submit.
type Store struct {
	mu      sync.Mutex
	backend kvstore.Backend
	records []models.LedgerRecord
	loaded  bool
	now     func() time.Time
}

func NewStore(backend kvstore.Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// Load reads the persisted ledger, drops entries that cannot be decoded, and
// prunes records older than the retention window. When pruning removed
// anything the surviving snapshot is written back immediately, so repeated
// loads converge without an explicit save. Ordering is preserved.
func (s *Store) Load() []models.LedgerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readSnapshot()
	kept, pruned := s.prune(records)
	s.records = kept
	s.loaded = true

	if pruned > 0 {
		if err := s.writeSnapshot(kept); err != nil {
			utils.LogEvent("", "ledger", "prune", "write-back failed: "+err.Error())
		}
	}
	return copyRecords(kept)
}

// Append stamps the record, prepends it (newest first) and persists the full
// snapshot. The in-memory update always happens; a persistence failure is
// returned as a recoverable StorageError alongside the updated ledger.
func (s *Store) Append(rec models.LedgerRecord) ([]models.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	now := s.now()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = now.UnixMilli()
	}
	if rec.Date == "" {
		rec.Date = utils.FormatDisplayDate(now)
	}
	if rec.Time == "" {
		rec.Time = utils.FormatDisplayTime(now)
	}

	s.records = append([]models.LedgerRecord{rec}, s.records...)

	if err := s.writeSnapshot(s.records); err != nil {
		return copyRecords(s.records), domain.StorageError{Op: "append", Err: err}
	}
	return copyRecords(s.records), nil
}

// Clear empties the ledger and deletes the persisted key entirely, so the
// next Load behaves like first-ever use. Confirmation is the caller's job.
func (s *Store) Clear() ([]models.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.loaded = true
	if err := s.backend.Delete(historyKey); err != nil {
		return nil, domain.StorageError{Op: "clear", Err: err}
	}
	return nil, nil
}

// Get returns a single record by id.
func (s *Store) Get(id string) (models.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.LedgerRecord{}, domain.NotFoundError{Resource: "ledger record"}
}

// AgentName returns the last-used agent name, empty when unset.
func (s *Store) AgentName() string {
	data, err := s.backend.Get(agentNameKey)
	if err != nil {
		return ""
	}
	return string(data)
}

// SetAgentName caches the agent name for the next session.
func (s *Store) SetAgentName(name string) error {
	if err := s.backend.Set(agentNameKey, []byte(utils.TrimOrEmpty(name))); err != nil {
		return domain.StorageError{Op: "agent name", Err: err}
	}
	return nil
}

// hydrateLocked reads the persisted ledger the first time the store is
// touched, so writes that land before Load start from the saved history
// instead of snapshotting over it. Callers must hold s.mu.
func (s *Store) hydrateLocked() {
	if s.loaded {
		return
	}
	s.records, _ = s.prune(s.readSnapshot())
	s.loaded = true
}

// readSnapshot decodes the persisted array entry by entry, discarding only
// the items that fail to decode. A missing key or a payload that is not an
// array at all yields an empty ledger, never an error.
func (s *Store) readSnapshot() []models.LedgerRecord {
	data, err := s.backend.Get(historyKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			utils.LogEvent("", "ledger", "load", "read failed: "+err.Error())
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		utils.LogEvent("", "ledger", "load", "discarding malformed history")
		return nil
	}

	records := make([]models.LedgerRecord, 0, len(raw))
	for _, item := range raw {
		var rec models.LedgerRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			utils.LogEvent("", "ledger", "load", "discarding unreadable entry")
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (s *Store) prune(records []models.LedgerRecord) (kept []models.LedgerRecord, pruned int) {
	nowMillis := s.now().UnixMilli()
	cutoff := RetentionWindow.Milliseconds()
	kept = make([]models.LedgerRecord, 0, len(records))
	for _, rec := range records {
		if rec.CreatedAt != 0 && nowMillis-rec.CreatedAt > cutoff {
			pruned++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, pruned
}

func (s *Store) writeSnapshot(records []models.LedgerRecord) error {
	if records == nil {
		records = []models.LedgerRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.backend.Set(historyKey, data)
}

func copyRecords(records []models.LedgerRecord) []models.LedgerRecord {
	out := make([]models.LedgerRecord, len(records))
	copy(out, records)
	return out
}
