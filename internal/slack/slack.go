package slack

import (
	"context"

	slackapi "github.com/slack-go/slack"
)

// Status is the user-facing presence text/emoji pair.
type Status struct {
	Text       string
	Emoji      string
	Expiration int64
}

// Set reports whether the profile already carries a status.
func (s Status) Set() bool {
	return s.Text != "" || s.Emoji != ""
}

// ProfileService reads and writes the authenticated user's status profile.
type ProfileService interface {
	GetStatus(ctx context.Context) (Status, error)
	SetStatus(ctx context.Context, text, emoji string, expiration int64) error
}

// MessageService posts messages to a channel.
type MessageService interface {
	Post(ctx context.Context, channelID string, text string) error
}

type profileService struct {
	api *slackapi.Client
}

// NewProfileService wraps the Slack Web API with a user-scoped token.
func NewProfileService(userToken string) ProfileService {
	return &profileService{api: slackapi.New(userToken)}
}

func (p *profileService) GetStatus(ctx context.Context) (Status, error) {
	profile, err := p.api.GetUserProfileContext(ctx, &slackapi.GetUserProfileParameters{})
	if err != nil {
		return Status{}, err
	}
	return Status{
		Text:       profile.StatusText,
		Emoji:      profile.StatusEmoji,
		Expiration: int64(profile.StatusExpiration),
	}, nil
}

func (p *profileService) SetStatus(ctx context.Context, text, emoji string, expiration int64) error {
	return p.api.SetUserCustomStatusContext(ctx, text, emoji, expiration)
}

type messageService struct {
	api *slackapi.Client
}

// NewMessageService wraps the Slack Web API with a bot-scoped token.
func NewMessageService(botToken string) MessageService {
	return &messageService{api: slackapi.New(botToken)}
}

func (m *messageService) Post(ctx context.Context, channelID string, text string) error {
	_, _, err := m.api.PostMessageContext(ctx, channelID, slackapi.MsgOptionText(text, false))
	return err
}
