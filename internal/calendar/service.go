package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/ulrikandersen/slack-status-updater/internal/auth"
)

const defaultCalendar = "primary"

// EventsService lists calendar events for a single day.
type EventsService interface {
	ListDay(ctx context.Context, day time.Time) ([]*gcal.Event, error)
}

// Source opens an EventsService after refreshing credentials. Opening
// fails with auth.ErrNoAccessToken when the refresh-token exchange does
// not produce an access token.
type Source interface {
	Events(ctx context.Context) (EventsService, error)
}

// GoogleSource is the production Source backed by the Google Calendar API.
type GoogleSource struct {
	Credentials auth.Credentials
}

func (g *GoogleSource) Events(ctx context.Context) (EventsService, error) {
	tokenSource, err := g.Credentials.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	service, err := gcal.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("creating calendar client: %w", err)
	}
	return &eventsService{service: service}, nil
}

type eventsService struct {
	service *gcal.Service
}

// ListDay returns the primary calendar's events intersecting the UTC day
// containing the given instant, in start-time order.
func (s *eventsService) ListDay(ctx context.Context, day time.Time) ([]*gcal.Event, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)

	call := s.service.Events.List(defaultCalendar).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	allEvents := []*gcal.Event{}
	err := call.Pages(ctx, func(events *gcal.Events) error {
		allEvents = append(allEvents, events.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allEvents, nil
}
