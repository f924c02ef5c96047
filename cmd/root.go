package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	RootCmd = &cobra.Command{
		Use:   "slack-status-updater",
		Short: "Set your Slack status from your Google Calendar working location",
		Long: `Checks the working location declared in Google Calendar for today and
updates Slack accordingly: working from home sets a status, a missing
declaration sends a reminder, and an office day does nothing.`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
