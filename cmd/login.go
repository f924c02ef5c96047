package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ulrikandersen/slack-status-updater/internal/auth"
	"github.com/ulrikandersen/slack-status-updater/internal/config"
)

var (
	// loginCmd obtains the long-lived refresh token the daily check
	// exchanges for access tokens.
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Login to Google Calendar and obtain a refresh token",
		Run: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			credentials := auth.Credentials{
				ClientID:     os.Getenv(config.EnvGoogleClientID),
				ClientSecret: os.Getenv(config.EnvGoogleClientSecret),
			}
			if credentials.ClientID == "" || credentials.ClientSecret == "" {
				log.Fatalf("%s and %s must be set", config.EnvGoogleClientID, config.EnvGoogleClientSecret)
			}

			fmt.Printf("Go to the following link in your browser:\n%v\n", credentials.AuthCodeURL())
			fmt.Println("Enter the authorization code:")

			var authCode string
			if _, err := fmt.Scan(&authCode); err != nil {
				log.Fatalf("Unable to read authorization code: %v", err)
			}

			token, err := credentials.Exchange(cmd.Context(), authCode)
			if err != nil {
				log.Fatalf("Unable to retrieve token from web: %v", err)
			}
			if token.RefreshToken == "" {
				log.Fatal("No refresh token returned; revoke the app's access and try again")
			}

			fmt.Printf("Authentication successful! Set %s to:\n%s\n", config.EnvGoogleRefreshToken, token.RefreshToken)
		},
	}
)

func init() {
	RootCmd.AddCommand(loginCmd)
}
