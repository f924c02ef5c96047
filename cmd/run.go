package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ulrikandersen/slack-status-updater/internal/check"
	"github.com/ulrikandersen/slack-status-updater/internal/config"
)

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Check today's working location once and update Slack",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatal(err)
			}
			checker := check.New(cfg)
			if err := checker.Run(cmd.Context()); err != nil {
				log.Fatal(err)
			}
		},
	}
)

func init() {
	RootCmd.AddCommand(runCmd)
}
