package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// LoggerModule provides the process-wide structured logger. The HTTP entry
// point overrides this with the request-logging variant; the e2e harness and
// background components use it as is.
var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

func NewLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}
