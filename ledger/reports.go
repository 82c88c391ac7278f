package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// Report projections are pure functions over a Ledgers snapshot. They read
// the reconciliation outputs, so callers should Reconcile first.

// WeekSummary aggregates the delivery ledger over one ISO week.
type WeekSummary struct {
	Year int `json:"year"`
	Week int `json:"week"`

	Total        decimal.Decimal `json:"total"`
	DepositTotal decimal.Decimal `json:"deposit_total"`
	DailyBalance decimal.Decimal `json:"daily_balance"`
	// Cumulative is the cumulative balance of the week's last record in
	// insertion order.
	Cumulative decimal.Decimal `json:"cumulative_balance"`
}

type isoWeek struct {
	year, week int
}

// WeeklySummary groups the delivery ledger by ISO week, ordered by week.
func WeeklySummary(l *Ledgers) []WeekSummary {
	groups := map[isoWeek]*WeekSummary{}
	for _, r := range l.Deliveries.All() {
		year, week := r.Date.ISOWeek()
		key := isoWeek{year, week}
		s, ok := groups[key]
		if !ok {
			s = &WeekSummary{Year: year, Week: week}
			groups[key] = s
		}
		s.Total = s.Total.Add(r.Total)
		s.DepositTotal = s.DepositTotal.Add(r.DepositTotal)
		s.DailyBalance = s.DailyBalance.Add(r.DailyBalance)
		s.Cumulative = r.Cumulative
	}

	keys := maps.Keys(groups)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	out := make([]WeekSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}

// MonthSummary aggregates the debit note ledger over one calendar month.
type MonthSummary struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	PossibleDiscount decimal.Decimal `json:"possible_discount"`
	RealDiscount     decimal.Decimal `json:"real_discount"`
}

type calendarMonth struct {
	year  int
	month time.Month
}

// MonthlyDiscounts groups the debit note ledger by calendar month, ordered
// by month. Notes without a real discount contribute zero to the real
// discount sum.
func MonthlyDiscounts(l *Ledgers) []MonthSummary {
	groups := map[calendarMonth]*MonthSummary{}
	for _, n := range l.Notes.All() {
		key := calendarMonth{n.Date.Year, n.Date.Month}
		s, ok := groups[key]
		if !ok {
			s = &MonthSummary{Year: key.year, Month: key.month}
			groups[key] = s
		}
		s.PossibleDiscount = s.PossibleDiscount.Add(n.PossibleDiscount)
		if n.RealDiscount != nil {
			s.RealDiscount = s.RealDiscount.Add(*n.RealDiscount)
		}
	}

	keys := maps.Keys(groups)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}

// SupplierTotal compares what one supplier delivered against what was
// deposited for them.
type SupplierTotal struct {
	Supplier Supplier `json:"supplier"`

	Total        decimal.Decimal `json:"total"`
	DepositTotal decimal.Decimal `json:"deposit_total"`
}

// SupplierTotals groups the delivery ledger by supplier, in the fixed
// supplier display order. Suppliers without deliveries are omitted.
func SupplierTotals(l *Ledgers) []SupplierTotal {
	groups := map[Supplier]*SupplierTotal{}
	for _, r := range l.Deliveries.All() {
		s, ok := groups[r.Supplier]
		if !ok {
			s = &SupplierTotal{Supplier: r.Supplier}
			groups[r.Supplier] = s
		}
		s.Total = s.Total.Add(r.Total)
		s.DepositTotal = s.DepositTotal.Add(r.DepositTotal)
	}

	out := make([]SupplierTotal, 0, len(groups))
	for _, supplier := range Suppliers() {
		if s, ok := groups[supplier]; ok {
			out = append(out, *s)
		}
	}
	return out
}
