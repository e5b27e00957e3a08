package chat

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	chatpkg "github.com/majlislab/jasoos/internal/chat"
)

func newTestMember(nick, globalName, username string) *discordgo.Member {
	return &discordgo.Member{
		Nick: nick,
		User: &discordgo.User{GlobalName: globalName, Username: username},
	}
}

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		content string
		want    chatpkg.Locale
	}{
		{"!جس انشاء", chatpkg.LocaleArabic},
		{"!جاسوس انضم", chatpkg.LocaleArabic},
		{"!spy create", chatpkg.LocaleEnglish},
		{"1", chatpkg.LocaleEnglish},
		{"hello الجاسوس", chatpkg.LocaleArabic},
		{"", chatpkg.LocaleEnglish},
	}
	for _, tt := range tests {
		if got := detectLocale(tt.content); got != tt.want {
			t.Errorf("detectLocale(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestMemberDisplayNameFallbacks(t *testing.T) {
	if got := memberDisplayName(newTestMember("nick", "global", "user")); got != "nick" {
		t.Errorf("expected nick, got %q", got)
	}
	if got := memberDisplayName(newTestMember("", "global", "user")); got != "global" {
		t.Errorf("expected global name, got %q", got)
	}
	if got := memberDisplayName(newTestMember("", "", "user")); got != "user" {
		t.Errorf("expected username, got %q", got)
	}
}
