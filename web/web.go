// Package web serves a read-only JSON view of the ledgers over HTTP.
//
// The server loads the ledger snapshots at startup and watches the data
// directory with fsnotify, reloading (and reconciling) whenever a snapshot
// file changes, so a long-running viewer always reflects the last save.
//
// SECURITY WARNING: there is no authentication; bind only to localhost.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jimfa07/urban-octo-dollop/ledger"
	"github.com/jimfa07/urban-octo-dollop/store"
)

// Server exposes ledger state and reports as JSON endpoints.
type Server struct {
	Addr    string
	Version string

	store          *store.Store
	openingBalance decimal.Decimal
	log            zerolog.Logger

	mu      sync.RWMutex
	ledgers *ledger.Ledgers
}

// New creates a server over the given snapshot store.
func New(addr string, st *store.Store, openingBalance decimal.Decimal, log zerolog.Logger) *Server {
	return &Server{
		Addr:           addr,
		store:          st,
		openingBalance: openingBalance,
		log:            log,
	}
}

// Start loads the ledgers, starts the snapshot watcher and serves until the
// context is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if err := s.reload(); err != nil {
		return fmt.Errorf("load ledgers: %w", err)
	}

	watcher, err := s.startWatcher(ctx)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info().Str("addr", s.Addr).Msg("serving ledger viewer")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// reload replaces the in-memory ledgers from the snapshot store.
func (s *Server) reload() error {
	l, err := s.store.Load(s.openingBalance)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ledgers = l
	s.mu.Unlock()
	return nil
}

// startWatcher watches the data directory and reloads when a snapshot file
// is written or replaced. Saves rename a temp file over the snapshot, so
// rename events matter as much as writes.
func (s *Server) startWatcher(ctx context.Context) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(s.store.Dir()); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	snapshots := map[string]struct{}{}
	for _, f := range s.store.Files() {
		snapshots[filepath.Base(f)] = struct{}{}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, watched := snapshots[filepath.Base(event.Name)]; !watched {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := s.reload(); err != nil {
					s.log.Error().Err(err).Str("file", event.Name).Msg("snapshot reload failed")
					continue
				}
				s.log.Info().Str("file", event.Name).Msg("snapshots reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Error().Err(err).Msg("watcher error")
			}
		}
	}()

	return watcher, nil
}

func (s *Server) router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/deliveries", s.handleDeliveries)
	mux.HandleFunc("GET /api/deposits", s.handleDeposits)
	mux.HandleFunc("GET /api/notes", s.handleNotes)
	mux.HandleFunc("GET /api/balance", s.handleBalance)
	mux.HandleFunc("GET /api/reports/weekly", s.handleWeekly)
	mux.HandleFunc("GET /api/reports/monthly", s.handleMonthly)
	mux.HandleFunc("GET /api/reports/suppliers", s.handleSuppliers)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(started)).
			Msg("request")
	})
}

// snapshot returns the current ledgers under the read lock.
func (s *Server) snapshot() *ledger.Ledgers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgers
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
