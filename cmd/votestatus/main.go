// Command votestatus prints the vote tallies of the voting backend as
// terminal tables, once or every -watch interval.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/danielhkuo/votaciones/apiclient"
	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/dashboard"
)

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	cfg, err := cliparse.ParseStatusFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	client, err := apiclient.New(cfg.APIURL, cfg.Timeout, nil)
	if err != nil {
		slog.Error("invalid backend URL", "url", cfg.APIURL, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok := show(ctx, client)
	if cfg.Watch == 0 {
		stop()
		if !ok {
			os.Exit(1)
		}
		return
	}

	ticker := time.NewTicker(cfg.Watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			show(ctx, client)
		}
	}
}

// show loads and prints one snapshot, reporting whether the load succeeded
func show(ctx context.Context, client *apiclient.Client) bool {
	d := dashboard.New(client)
	d.Load(ctx)

	if err := d.WriteTables(os.Stdout); err != nil {
		slog.Error("failed to write tables", "error", err)
		return false
	}
	return d.Error == ""
}
