package ledger

import "fmt"

// DocumentType classifies the paperwork accompanying a delivery.
type DocumentType string

const (
	DocumentInvoice    DocumentType = "Invoice"
	DocumentDebitNote  DocumentType = "DebitNote"
	DocumentCreditNote DocumentType = "CreditNote"
)

// DocumentTypes returns all recognized document types.
func DocumentTypes() []DocumentType {
	return []DocumentType{DocumentInvoice, DocumentDebitNote, DocumentCreditNote}
}

// ParseDocumentType matches s against the recognized document types.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, known := range DocumentTypes() {
		if string(known) == s {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

func (d DocumentType) Valid() bool {
	for _, known := range DocumentTypes() {
		if d == known {
			return true
		}
	}
	return false
}
