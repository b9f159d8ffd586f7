package models

// LedgerRecord is one completed submission in the local booking history.
// Records are immutable once created; they leave the ledger only through
// age-based pruning or a full clear.
//
// Field names match the persisted history shape, including records written by
// earlier portal versions. CreatedAt is epoch milliseconds; zero means the
// record predates timestamping and is never pruned.
type LedgerRecord struct {
	ID                 string `json:"id,omitempty"`
	GuestName          string `json:"guestName"`
	ConfirmationNumber string `json:"confirmationNumber"`
	Amount             string `json:"amount"`
	Link               string `json:"link"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	CreatedAt          int64  `json:"createdAt,omitempty"`
}
