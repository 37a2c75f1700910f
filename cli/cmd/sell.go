package cmd

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/ThinkIshdeep/Chatur-Bazar/adapter"
	"github.com/ThinkIshdeep/Chatur-Bazar/adapter/webhook"
	"github.com/ThinkIshdeep/Chatur-Bazar/classify"
	"github.com/ThinkIshdeep/Chatur-Bazar/cli/config"
	"github.com/ThinkIshdeep/Chatur-Bazar/cli/tui"
	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/engine"
	"github.com/ThinkIshdeep/Chatur-Bazar/journal"
	"github.com/ThinkIshdeep/Chatur-Bazar/log"
	"github.com/ThinkIshdeep/Chatur-Bazar/metrics"
)

// SellCommand returns the sell command, the interactive till session.
func SellCommand() *cli.Command {
	return &cli.Command{
		Name:  "sell",
		Usage: "Start an interactive till session",
		Flags: []cli.Flag{
			ConfigFlag,
			&cli.StringFlag{
				Name:  "terminal",
				Usage: "Till name carried on logs and metrics",
			},
			&cli.StringFlag{
				Name:  "journal",
				Usage: "Session journal file (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Session log file (overrides config)",
			},
		},
		Action: sellAction,
	}
}

func sellAction(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if v := c.String("terminal"); v != "" {
		cfg.Terminal = v
	}
	if v := c.String("journal"); v != "" {
		cfg.Journal = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}

	ctx := context.Background()
	sessionID := uuid.NewString()

	logFile, err := openLogWriter(cfg.LogFile)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer logFile.Close()
	logger := log.NewLoggerWithWriter(&log.SessionMeta{
		SessionID: sessionID,
		Terminal:  cfg.Terminal,
	}, logFile)

	st, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer st.Close()

	snap, seeded, err := loadOrSeed(ctx, st)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pub, err := buildAdapter(cfg.Adapter)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer pub.Close()

	var jw *journal.Writer
	if cfg.Journal != "" {
		jf, err := os.OpenFile(cfg.Journal, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer jf.Close()
		jw = journal.NewWriter(jf)
	}

	clk := clock.System{}
	eng := engine.New(clk, snap, cfg.Input.StreakWindow.Duration)
	cls := classify.New(clk, cfg.Input.VelocityThreshold.Duration)

	logger.Info("session start", map[string]any{
		"products": len(snap.Products),
		"seeded":   seeded,
		"backend":  cfg.Storage.Backend,
	})

	met := metrics.NewCollector(sessionID, cfg.Terminal)
	err = tui.Run(tui.Options{
		Engine:     eng,
		Classifier: cls,
		Clock:      clk,
		Store:      st,
		Adapter:    pub,
		Metrics:    met,
		Logger:     logger,
		Journal:    jw,
		Currency:   cfg.Currency,
		Terminal:   cfg.Terminal,
	})
	if err != nil {
		logger.Error("session end", map[string]any{"error": err.Error()})
		return cli.Exit(err.Error(), 1)
	}

	ms := met.Snapshot()
	logger.Info("session end", map[string]any{
		"revenue":     eng.Revenue(),
		"checkouts":   ms.Checkouts,
		"units_added": ms.UnitsAdded,
		"streak_peak": ms.StreakPeak,
	})
	return nil
}

func buildAdapter(ac config.AdapterConfig) (adapter.Adapter, error) {
	if ac.Type != "webhook" {
		return adapter.Noop{}, nil
	}
	cfg := webhook.Config{
		URL:     ac.URL,
		Headers: ac.Headers,
		Timeout: ac.Timeout.Duration,
	}
	if ac.Retries != nil {
		cfg.Retries = *ac.Retries
	}
	return webhook.New(cfg)
}
