package cmd

import (
	"context"
	"log"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/ulrikandersen/slack-status-updater/internal/check"
	"github.com/ulrikandersen/slack-status-updater/internal/config"
	"github.com/ulrikandersen/slack-status-updater/internal/web"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the daily schedule and the manual HTTP trigger",
		Run: func(cmd *cobra.Command, args []string) {
			addr, err := cmd.Flags().GetString("addr")
			if err != nil {
				log.Fatalf("Error parsing arg addr: %v", err)
			}
			schedule, err := cmd.Flags().GetString("schedule")
			if err != nil {
				log.Fatalf("Error parsing arg schedule: %v", err)
			}

			cfg, err := config.Load()
			if err != nil {
				log.Fatal(err)
			}
			checker := check.New(cfg)

			scheduler := cron.New()
			_, err = scheduler.AddFunc(schedule, func() {
				if err := checker.Run(context.Background()); err != nil {
					slog.Error("scheduled run failed", "error", err)
				}
			})
			if err != nil {
				log.Fatalf("Invalid schedule %q: %v", schedule, err)
			}
			scheduler.Start()
			defer scheduler.Stop()

			log.Printf("Listening on %s (schedule %s)", addr, schedule)
			if err := web.NewServer(checker.Run).Run(addr); err != nil {
				log.Fatal(err)
			}
		},
	}
)

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Address for the manual trigger endpoint")
	serveCmd.Flags().String("schedule", "@daily", "Cron schedule for the working location check")
	RootCmd.AddCommand(serveCmd)
}
