package web

import (
	"net/http"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"version": s.Version,
	})
}

func (s *Server) handleDeliveries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.snapshot().Deliveries.All())
}

func (s *Server) handleDeposits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.snapshot().Deposits.All())
}

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.snapshot().Notes.All())
}

// handleBalance reports the cumulative balance after the last delivery, or
// the opening balance when the ledger is empty.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	l := s.snapshot()

	balance := l.OpeningBalance
	records := l.Deliveries.All()
	if len(records) > 0 {
		balance = records[len(records)-1].Cumulative
	}

	writeJSON(w, map[string]string{
		"opening_balance":    l.OpeningBalance.StringFixed(2),
		"cumulative_balance": balance.StringFixed(2),
	})
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ledger.WeeklySummary(s.snapshot()))
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ledger.MonthlyDiscounts(s.snapshot()))
}

func (s *Server) handleSuppliers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ledger.SupplierTotals(s.snapshot()))
}
