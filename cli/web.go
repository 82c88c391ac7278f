package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/jimfa07/urban-octo-dollop/web"
)

type WebCmd struct {
	Addr string `help:"Listen address (overrides the configured web.addr)."`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	addr := s.cfg.Web.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	server := web.New(addr, s.store, s.opening, s.log.With().Str("component", "web").Logger())
	server.Version = Version

	printInfof(ctx.Stdout, "serving ledger viewer on http://%s", addr)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(runCtx)
}
