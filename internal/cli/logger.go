package cli

import (
	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/config"
	"github.com/glorpus-work/rtenv/pkg/orchestrator"
)

// initLogging points the global logger at the configured level and format.
func initLogging(cfg *config.Config) {
	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))
}

// logEvent reports orchestrator progress at debug level; the builder's own
// output is what users follow during an install.
func logEvent(e orchestrator.Event) {
	fields := logger.Fields{"phase": e.Phase}
	if e.ID != "" {
		fields["version"] = e.ID
	}
	logger.Debug(e.Msg, fields)
}
