package cli

import (
	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/rehash"
	"github.com/spf13/cobra"
)

// NewRehashCmd creates the rehash command.
func NewRehashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rehash",
		Short: "Rehash shims",
		Long:  "Create or remove shims so there is one for every program of every installed version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			stats, err := rehash.New(cfg.Settings.Root).Sync(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("Shims updated", logger.Fields{"written": stats.Written, "removed": stats.Removed})
			return nil
		},
	}
}
