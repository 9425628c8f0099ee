package components

import (
	"context"
	"log/slog"

	"zenithstays/internal/notifier"
	"zenithstays/internal/pkg/config"
	"zenithstays/internal/realtime"
	"zenithstays/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		func(cfg config.Config) config.NotifierConfig { return cfg.Notifier },
		func(cfg config.Config) config.RealtimeConfig { return cfg.Realtime },
		realtime.NewRegistry,
		func(r *realtime.Registry) commands.EventEmitter { return r },
		fx.Annotate(
			notifier.NewTwilioNotifier,
			fx.As(new(notifier.Notifier)),
		),
		NewNotifierQueue,
	),
)

// NewNotifierQueue wires the SMS worker pool into the application lifecycle
// so queued notifications drain before shutdown.
func NewNotifierQueue(lc fx.Lifecycle, n notifier.Notifier, cfg config.NotifierConfig, logger *slog.Logger) notifier.Dispatcher {
	queue := notifier.NewQueue(n, cfg, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			queue.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			queue.Stop(cfg.ShutdownTimeout)
			return nil
		},
	})

	return queue
}
