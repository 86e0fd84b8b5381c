package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/codeql-fly/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

// Dispatch tunes how long a dispatch waits for a freshly written workflow
// file to become eligible
type Dispatch struct {
	delay         time.Duration
	readyAttempts int64
	readyInterval time.Duration
}

func (x *Dispatch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "dispatch-delay",
			Usage:       "Fixed wait before dispatch when the workflow file never shows up",
			Category:    "Dispatch",
			Value:       ghapp.DefaultDispatchDelay,
			Destination: &x.delay,
			Sources:     cli.EnvVars("CODEQL_FLY_DISPATCH_DELAY"),
		},
		&cli.Int64Flag{
			Name:        "dispatch-ready-attempts",
			Usage:       "How many times the workflow file is polled before dispatch",
			Category:    "Dispatch",
			Value:       ghapp.DefaultReadyAttempts,
			Destination: &x.readyAttempts,
			Sources:     cli.EnvVars("CODEQL_FLY_DISPATCH_READY_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "dispatch-ready-interval",
			Usage:       "Interval between workflow file polls",
			Category:    "Dispatch",
			Value:       ghapp.DefaultReadyInterval,
			Destination: &x.readyInterval,
			Sources:     cli.EnvVars("CODEQL_FLY_DISPATCH_READY_INTERVAL"),
		},
	}
}

func (x *Dispatch) Options() []ghapp.Option {
	return []ghapp.Option{
		ghapp.WithDispatchDelay(x.delay),
		ghapp.WithReadyPoll(int(x.readyAttempts), x.readyInterval),
	}
}

func (x *Dispatch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("delay", x.delay),
		slog.Int64("readyAttempts", x.readyAttempts),
		slog.Duration("readyInterval", x.readyInterval),
	)
}
