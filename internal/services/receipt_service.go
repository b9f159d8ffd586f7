package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bookingportal/internal/domain/models"
	"bookingportal/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for a ledger record, for agents who
// hand the guest a printed confirmation at the desk.
type ReceiptService struct {
	RequestID string
}

func (s ReceiptService) GenerateReceipt(rec models.LedgerRecord) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "receipt", "generate", "confirmation="+rec.ConfirmationNumber)
	return buildReceiptPDF(rec)
}

func buildReceiptPDF(rec models.LedgerRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest          : %s", safe(rec.GuestName, "-")),
		fmt.Sprintf("Confirmation # : %s", safe(rec.ConfirmationNumber, "-")),
		fmt.Sprintf("Charged Online : $%s", safe(rec.Amount, "0.00")),
		fmt.Sprintf("Booked On      : %s %s", safe(rec.Date, "-"), safe(rec.Time, "")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if strings.TrimSpace(rec.Link) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Payment Link:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, rec.Link, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Generated %s. Keep this receipt for your records.",
		time.Now().Format("2006-01-02 15:04")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(rec.ConfirmationNumber+"_"+rec.GuestName))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var filenameJunk = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	s = filenameJunk.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "receipt"
	}
	return s
}
