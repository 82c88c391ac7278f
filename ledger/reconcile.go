package ledger

// Reconcile recomputes the reconciliation outputs of every delivery record
// from current ledger state.
//
// For each delivery in insertion order: the matched deposit total is the sum
// of deposits on the same (date, supplier); the daily balance is that total
// minus the delivery total; the cumulative balance is the previous record's
// cumulative balance plus the daily balance, seeded with the opening
// balance. Afterwards every debit note with a present real discount raises
// the cumulative balance of every delivery dated on or after the note.
//
// This is a full recomputation from a clean base, never an incremental
// patch: running it twice with unchanged ledgers yields identical balances.
// The retroactive discount rule depends on that; see the package tests.
func Reconcile(l *Ledgers) {
	running := l.OpeningBalance
	for _, r := range l.Deliveries.All() {
		r.DepositTotal = l.Deposits.TotalFor(r.Date, r.Supplier)
		r.DailyBalance = r.DepositTotal.Sub(r.Total)
		r.Cumulative = running.Add(r.DailyBalance)
		running = r.Cumulative
	}

	for _, n := range l.Notes.All() {
		if n.RealDiscount == nil {
			continue
		}
		for _, r := range l.Deliveries.All() {
			if !r.Date.Before(n.Date) {
				r.Cumulative = r.Cumulative.Add(*n.RealDiscount)
			}
		}
	}
}
