package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ulrikandersen/slack-status-updater/internal/auth"
	"github.com/ulrikandersen/slack-status-updater/internal/calendar"
	"github.com/ulrikandersen/slack-status-updater/internal/config"
	"github.com/ulrikandersen/slack-status-updater/internal/slack"
)

const (
	homeStatusText  = "Working from home"
	homeStatusEmoji = ":house_with_garden:"

	reminderText    = "Please set your working location in Google Calendar for today."
	authFailureText = "Failed to refresh Google Calendar credentials. Working location check skipped."
)

// UpstreamError wraps a failed calendar or Slack API call.
type UpstreamError struct {
	API string
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.API, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Checker runs the once-a-day pass: look up today's declared work
// location in Google Calendar and either set the Slack status, send a
// reminder, or do nothing. Each pass is stateless; there are no retries,
// the next scheduled run is the recovery mechanism.
type Checker struct {
	Calendar calendar.Source
	Profile  slack.ProfileService
	Messages slack.MessageService
	Channel  string

	// Now overrides the clock in tests.
	Now func() time.Time
}

func New(cfg *config.Config) *Checker {
	return &Checker{
		Calendar: &calendar.GoogleSource{Credentials: auth.Credentials{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RefreshToken: cfg.GoogleRefreshToken,
		}},
		Profile:  slack.NewProfileService(cfg.SlackUserToken),
		Messages: slack.NewMessageService(cfg.SlackBotToken),
		Channel:  cfg.SlackChannelID,
	}
}

func (c *Checker) Run(ctx context.Context) error {
	now := c.now()

	events, err := c.Calendar.Events(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNoAccessToken) {
			c.notifyAuthFailure(ctx)
		}
		return err
	}

	todays, err := events.ListDay(ctx, now)
	if err != nil {
		return &UpstreamError{API: "calendar", Op: "events.list", Err: err}
	}

	location := calendar.LocationForDay(todays)
	slog.Info("resolved work location", "location", location.String(), "events", len(todays))

	switch location {
	case calendar.LocationHome:
		return c.setHomeStatus(ctx, now)
	case calendar.LocationUnset:
		return c.sendReminder(ctx)
	default:
		slog.Info("working from the office, nothing to do")
		return nil
	}
}

// setHomeStatus writes the home status unless a status is already set.
// The existence check is the only duplicate-write protection; with a
// single daily trigger that is enough.
func (c *Checker) setHomeStatus(ctx context.Context, now time.Time) error {
	status, err := c.Profile.GetStatus(ctx)
	if err != nil {
		return &UpstreamError{API: "slack", Op: "users.profile.get", Err: err}
	}
	if status.Set() {
		slog.Info("status already set, leaving it alone", "text", status.Text, "emoji", status.Emoji)
		return nil
	}

	expiration := endOfDay(now).Unix()
	if err := c.Profile.SetStatus(ctx, homeStatusText, homeStatusEmoji, expiration); err != nil {
		return &UpstreamError{API: "slack", Op: "users.profile.set", Err: err}
	}
	slog.Info("status set", "text", homeStatusText, "expiration", expiration)
	return nil
}

func (c *Checker) sendReminder(ctx context.Context) error {
	if err := c.Messages.Post(ctx, c.Channel, reminderText); err != nil {
		return &UpstreamError{API: "slack", Op: "chat.postMessage", Err: err}
	}
	slog.Info("reminder sent", "channel", c.Channel)
	return nil
}

// notifyAuthFailure is best effort: a failed send must not mask the
// credential error that triggered it.
func (c *Checker) notifyAuthFailure(ctx context.Context) {
	if err := c.Messages.Post(ctx, c.Channel, authFailureText); err != nil {
		slog.Error("sending auth failure notice", "error", err)
	}
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// endOfDay returns 23:59:59 of the given instant's UTC day, which is
// both the status expiration and the end of the lookup window.
func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
}
