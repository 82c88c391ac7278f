package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jimfa07/urban-octo-dollop/config"
	"github.com/jimfa07/urban-octo-dollop/ledger"
	"github.com/jimfa07/urban-octo-dollop/store"
	"github.com/jimfa07/urban-octo-dollop/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Config    string `help:"Path to the config file." type:"path" optional:""`
	DataDir   string `help:"Override the data directory."`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Delivery DeliveryCmd `cmd:"" help:"Record, list and remove supplier deliveries."`
	Deposit  DepositCmd  `cmd:"" help:"Record, list and remove bank deposits."`
	Note     NoteCmd     `cmd:"" help:"Record, list and remove debit note discounts."`
	Report   ReportCmd   `cmd:"" help:"Weekly, monthly and per-supplier reports."`
	Import   ImportCmd   `cmd:"" help:"Bulk-load delivery records from a CSV or XLSX file."`
	Export   ExportCmd   `cmd:"" help:"Export the delivery ledger to a CSV or XLSX file."`
	Web      WebCmd      `cmd:"" help:"Start the read-only ledger viewer."`
}

// session is one loaded ledger state plus the means to persist it again.
type session struct {
	cfg     config.Config
	opening decimal.Decimal
	store   *store.Store
	ledgers *ledger.Ledgers
	log     zerolog.Logger
}

// open loads configuration and the ledger snapshots.
func (g *Globals) open() (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if g.DataDir != "" {
		cfg.DataDir = g.DataDir
	}

	opening, err := cfg.Opening()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.LogLevel)
	st := store.New(cfg.DataDir, store.WithLogger(log.With().Str("component", "store").Logger()))

	ledgers, err := st.Load(opening)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		opening: opening,
		store:   st,
		ledgers: ledgers,
		log:     log,
	}, nil
}

// save reconciles and persists the full ledger state.
func (s *session) save() error {
	ledger.Reconcile(s.ledgers)
	return s.store.Save(s.ledgers)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// withTelemetry runs fn, reporting collected timings to stderr afterwards
// when the --telemetry flag is set.
func (g *Globals) withTelemetry(ctx *kong.Context, name string, fn func(collector telemetry.Collector) error) error {
	if !g.Telemetry {
		return fn(telemetry.FromContext(context.Background()))
	}

	collector := telemetry.NewTimingCollector()
	timer := collector.Start(name)

	err := fn(collector)

	timer.End()
	_, _ = fmt.Fprintln(ctx.Stderr)
	collector.Report(ctx.Stderr)
	return err
}
