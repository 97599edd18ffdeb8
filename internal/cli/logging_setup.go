package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Umesh-Bhati/Blynd/internal/config"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

// setupLogging builds the invocation context: a component-tagged logger
// and a per-invocation trace ID, both carried on the context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.ComponentLogger(logging.NewLogger(cfg.Logging), "cli")

	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	logger = logger.With().Str("trace_id", traceID).Logger()
	ctx = logging.WithContext(ctx, logger)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return ctx
}
