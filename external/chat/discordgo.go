package chat

import (
	"context"
	"fmt"
	"unicode"

	"github.com/bwmarrin/discordgo"
	chatpkg "github.com/majlislab/jasoos/internal/chat"
)

type Client struct {
	session   *discordgo.Session
	token     string
	botUserID string
}

func NewClient(token string) chatpkg.Client {
	return &Client{token: token}
}

func (c *Client) Connect(ctx context.Context) error {
	_ = ctx
	s, err := discordgo.New("Bot " + c.token)
	if err != nil {
		return err
	}
	c.session = s
	s.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent
	if err := s.Open(); err != nil {
		return err
	}
	userID, err := c.GetBotUserID()
	if err != nil {
		return err
	}
	c.botUserID = userID
	return nil
}

func (c *Client) Close() error {
	if c.session != nil {
		return c.session.Close()
	}
	return nil
}

func (c *Client) RegisterMessageHandler(handler func(chatpkg.MessageEvent)) {
	c.session.AddHandler(func(s *discordgo.Session, mc *discordgo.MessageCreate) {
		if mc == nil || mc.Message == nil || mc.Author == nil {
			return
		}
		if mc.Author.Bot {
			return
		}
		handler(chatpkg.MessageEvent{
			MessageID: mc.ID,
			GuildID:   mc.GuildID,
			ChannelID: mc.ChannelID,
			SenderID:  mc.Author.ID,
			Content:   mc.Content,
			IsGroup:   mc.GuildID != "",
			Locale:    detectLocale(mc.Content),
		})
	})
}

func (c *Client) SendChannelMessage(channelID, content string) error {
	_, err := c.session.ChannelMessageSend(channelID, content)
	return err
}

func (c *Client) SendDirectMessage(userID, content string) error {
	ch, err := c.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel for user %s: %w", userID, err)
	}
	_, err = c.session.ChannelMessageSend(ch.ID, content)
	return err
}

func (c *Client) Reply(event chatpkg.MessageEvent, content string) error {
	_, err := c.session.ChannelMessageSendReply(event.ChannelID, content, &discordgo.MessageReference{
		MessageID: event.MessageID,
		ChannelID: event.ChannelID,
		GuildID:   event.GuildID,
	})
	return err
}

func (c *Client) GetParticipantInfo(guildID, userID string) (chatpkg.ParticipantInfo, error) {
	if member := c.resolveGuildMember(guildID, userID); member != nil {
		return chatpkg.ParticipantInfo{Nickname: memberDisplayName(member)}, nil
	}
	u, err := c.session.User(userID)
	if err != nil {
		return chatpkg.ParticipantInfo{}, err
	}
	name := u.GlobalName
	if name == "" {
		name = u.Username
	}
	return chatpkg.ParticipantInfo{Nickname: name}, nil
}

func (c *Client) GetBotUserID() (string, error) {
	if c.botUserID != "" {
		return c.botUserID, nil
	}
	if c.session == nil {
		return "", fmt.Errorf("discord session is not initialized")
	}
	if c.session.State != nil && c.session.State.User != nil && c.session.State.User.ID != "" {
		c.botUserID = c.session.State.User.ID
		return c.botUserID, nil
	}
	u, err := c.session.User("@me")
	if err != nil {
		return "", err
	}
	c.botUserID = u.ID
	return c.botUserID, nil
}

func (c *Client) Run() error {
	select {}
}

func (c *Client) resolveGuildMember(guildID, userID string) *discordgo.Member {
	if guildID == "" {
		return nil
	}
	if c.session.State != nil {
		if member, err := c.session.State.Member(guildID, userID); err == nil && member != nil {
			return member
		}
	}
	member, err := c.session.GuildMember(guildID, userID)
	if err != nil {
		return nil
	}
	return member
}

func memberDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		if member.User.GlobalName != "" {
			return member.User.GlobalName
		}
		return member.User.Username
	}
	return ""
}

// detectLocale stands in for the platform-provided source locale: any
// Arabic-script rune marks the message as Arabic.
func detectLocale(content string) chatpkg.Locale {
	for _, r := range content {
		if unicode.Is(unicode.Arabic, r) {
			return chatpkg.LocaleArabic
		}
	}
	return chatpkg.LocaleEnglish
}
