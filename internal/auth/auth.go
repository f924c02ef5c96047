package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// ErrNoAccessToken indicates the token endpoint did not return a usable
// access token for the configured refresh token.
var ErrNoAccessToken = errors.New("no access token returned from token endpoint")

// Google Calendar permission scopes. Events are only ever read.
var scopes = []string{calendar.CalendarEventsReadonlyScope}

// Credentials holds the OAuth client pair plus the long-lived refresh
// token obtained through the login command.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func (c Credentials) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}
}

// TokenSource exchanges the refresh token for an access token and returns
// a reusable source. A failed exchange, or an exchange that yields an
// empty access token, reports ErrNoAccessToken.
func (c Credentials) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	source := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAccessToken, err)
	}
	if token.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	return oauth2.ReuseTokenSource(token, source), nil
}

// AuthCodeURL returns the consent page URL for the interactive login flow.
func (c Credentials) AuthCodeURL() string {
	return c.oauthConfig().AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token carrying a refresh token.
func (c Credentials) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauthConfig().Exchange(ctx, code)
}
