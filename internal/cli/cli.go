// Package cli holds the crowdfund command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"crowdfund/internal/config"
)

// Environment provides an abstraction around the execution environment.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// CLI is the root command. Serve runs when no command is given.
type CLI struct {
	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Serve the campaign HTTP API."`
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations and exit."`
	Seed    SeedCmd    `cmd:"" help:"Insert demo campaigns and contributions into PostgreSQL."`
	Token   TokenCmd   `cmd:"" help:"Mint a bearer token for a principal (development only)."`
	Watch   WatchCmd   `cmd:"" help:"Print ledger events published to Redis."`
}

// Run parses args, executes the selected command and returns the process
// exit code. Configuration comes from the environment.
func Run(env Environment, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "crowdfund: %v\n", err)
		return 1
	}
	logger := cfg.Log.New(env.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app CLI
	parser, err := kong.New(&app,
		kong.Name("crowdfund"),
		kong.Description("Crowdfunding campaign ledger."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Bind(&cfg, &env, logger),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		fmt.Fprintf(env.Stderr, "crowdfund: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	if err = kctx.Run(); err != nil {
		logger.Error("command failed", slog.String("command", kctx.Command()), slog.Any("error", err))
		return 1
	}
	return 0
}
