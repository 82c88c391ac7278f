package ledger

import "fmt"

// Supplier identifies one of the known poultry suppliers. Labels are exact;
// they match the names used on delivery and deposit paperwork.
type Supplier string

const (
	SupplierLiris   Supplier = "LIRIS SA"
	SupplierGallina Supplier = "Gallina 1"
	SupplierMonze   Supplier = "Monze Anzules"
	SupplierMedina  Supplier = "Medina"
)

// Suppliers returns the known suppliers in their reporting order.
func Suppliers() []Supplier {
	return []Supplier{SupplierLiris, SupplierGallina, SupplierMonze, SupplierMedina}
}

// ParseSupplier matches s against the known supplier labels.
func ParseSupplier(s string) (Supplier, error) {
	for _, known := range Suppliers() {
		if string(known) == s {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown supplier %q", s)
}

func (s Supplier) Valid() bool {
	for _, known := range Suppliers() {
		if s == known {
			return true
		}
	}
	return false
}
