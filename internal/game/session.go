package game

import (
	"time"

	"github.com/majlislab/jasoos/internal/chat"
)

type State string

const (
	StateAwaitingCategoryMode   State = "awaiting_category_mode"
	StateAwaitingCategoryLetter State = "awaiting_category_letter"
	StateLobby                  State = "lobby"
	StateActiveRound            State = "active_round"
	StateScored                 State = "scored"
	StateAwaitingContinuation   State = "awaiting_continuation"
)

type GameType string

const (
	GameTypeRandom   GameType = "random"
	GameTypeSpecific GameType = "specific"
)

const minPlayers = 3

// PlayerEntry is one participant's per-round state. GuessedSpy stays empty
// until the player submits their single guess.
type PlayerEntry struct {
	Nickname   string
	Score      int
	GuessedSpy string
}

// Session is the lifecycle container for one channel's game. All fields are
// guarded by the owning Manager's mutex.
type Session struct {
	GuildID     string
	ChannelID   string
	CreatorID   string
	Language    chat.Locale
	GameType    GameType
	CategoryKey string
	State       State

	SpyID          string
	SpyNickname    string
	SecretWord     string
	roundStartedAt time.Time

	players map[string]*PlayerEntry
	order   []string

	// One live timer at most; the generation counter invalidates callbacks
	// armed for a state the session has since left.
	timer    *time.Timer
	timerGen uint64
}

func newSession(guildID, channelID, creatorID string, language chat.Locale) *Session {
	return &Session{
		GuildID:   guildID,
		ChannelID: channelID,
		CreatorID: creatorID,
		Language:  language,
		State:     StateAwaitingCategoryMode,
		players:   make(map[string]*PlayerEntry),
	}
}

// successor carries creator, channel, category mode and language into a fresh
// lobby for the next round.
func (s *Session) successor() *Session {
	next := newSession(s.GuildID, s.ChannelID, s.CreatorID, s.Language)
	next.GameType = s.GameType
	next.CategoryKey = s.CategoryKey
	next.State = StateLobby
	return next
}

func (s *Session) addPlayer(userID, nickname string) bool {
	if _, joined := s.players[userID]; joined {
		return false
	}
	s.players[userID] = &PlayerEntry{Nickname: nickname}
	s.order = append(s.order, userID)
	return true
}

func (s *Session) removePlayer(userID string) (PlayerEntry, bool) {
	entry, ok := s.players[userID]
	if !ok {
		return PlayerEntry{}, false
	}
	delete(s.players, userID)
	for i, id := range s.order {
		if id == userID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return *entry, true
}

func (s *Session) player(userID string) (*PlayerEntry, bool) {
	entry, ok := s.players[userID]
	return entry, ok
}

func (s *Session) hasPlayer(userID string) bool {
	_, ok := s.players[userID]
	return ok
}

func (s *Session) playerCount() int {
	return len(s.players)
}

// playerIDs returns participant ids in join order.
func (s *Session) playerIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// allNonSpyGuessed reports whether every player except the Spy has submitted
// a guess. The Spy is exempt; its own guess, if any, is not counted.
func (s *Session) allNonSpyGuessed() bool {
	for id, entry := range s.players {
		if id == s.SpyID {
			continue
		}
		if entry.GuessedSpy == "" {
			return false
		}
	}
	return true
}
