// Package chat abstracts the group-chat platform the game runs on.
package chat

import "context"

type Locale string

const (
	LocaleArabic  Locale = "arabic"
	LocaleEnglish Locale = "english"
)

// MessageEvent is one inbound chat message, normalized for the game layer.
type MessageEvent struct {
	MessageID string
	GuildID   string
	ChannelID string
	SenderID  string
	Content   string
	IsGroup   bool
	Locale    Locale
}

type ParticipantInfo struct {
	Nickname string
}

type Client interface {
	Connect(ctx context.Context) error
	Close() error
	RegisterMessageHandler(handler func(MessageEvent))
	SendChannelMessage(channelID, content string) error
	SendDirectMessage(userID, content string) error
	Reply(event MessageEvent, content string) error
	GetParticipantInfo(guildID, userID string) (ParticipantInfo, error)
	GetBotUserID() (string, error)
	Run() error
}
