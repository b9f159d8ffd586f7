package services

import (
	"testing"

	"bookingportal/internal/domain/models"
)

func TestReceiptServiceGenerate(t *testing.T) {
	rec := models.LedgerRecord{
		ID:                 "rec-1",
		GuestName:          "Jane Doe",
		ConfirmationNumber: "123456789",
		Amount:             "60.00",
		Link:               "https://pay.example/abc",
		Date:               "3/15/2026",
		Time:               "2:30 PM",
	}

	svc := ReceiptService{}
	pdf, filename, err := svc.GenerateReceipt(rec)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateReceipt returned empty data")
	}
	if filename != "RECEIPT_123456789_Jane_Doe.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Jane Doe", "Jane_Doe"},
		{"///", "receipt"},
		{"  A1 # B2  ", "A1_B2"},
	}
	for _, tc := range cases {
		if got := safeFilenamePart(tc.in); got != tc.want {
			t.Fatalf("safeFilenamePart(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
