// Package game implements the per-channel Spy game lifecycle: category
// selection, lobby, active round, scoring and round continuation.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/majlislab/jasoos/internal/catalog"
	"github.com/majlislab/jasoos/internal/chat"
	"github.com/majlislab/jasoos/internal/config"
	"github.com/majlislab/jasoos/internal/repository"
)

// Manager is the process-wide session registry and the handler for every
// inbound message intent. A single mutex serializes intents and timer
// callbacks, so a session's fields never see interleaved mutation.
type Manager struct {
	cfg     *config.Config
	repo    repository.Repository
	chat    chat.Client
	catalog *catalog.Catalog

	timeout time.Duration
	pick    func(n int) int

	mu        sync.Mutex
	sessions  map[string]*Session
	botUserID string
}

func NewManager(cfg *config.Config, repo repository.Repository, chatClient chat.Client, cat *catalog.Catalog) *Manager {
	return &Manager{
		cfg:      cfg,
		repo:     repo,
		chat:     chatClient,
		catalog:  cat,
		timeout:  cfg.PhaseTimeout(),
		pick:     rand.IntN,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) SetBotUserID(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.botUserID = id
}

// HandleMessage is the single entry point for inbound chat messages.
func (m *Manager) HandleMessage(event chat.MessageEvent) {
	if !event.IsGroup || strings.TrimSpace(event.Content) == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if event.SenderID == m.botUserID {
		return
	}

	in := parseCommand(event.Content)
	s := m.sessions[event.ChannelID]
	lang := normalizeLocale(event.Locale)
	if s != nil {
		lang = s.Language
	}

	// Category mode, category letter and continuation replies arrive as
	// bare text; only the creator's input is consulted in those states.
	if s != nil && event.SenderID == s.CreatorID && in.kind == intentNone {
		switch s.State {
		case StateAwaitingCategoryMode:
			m.handleModeChoice(s, event)
			return
		case StateAwaitingCategoryLetter:
			m.handleLetterChoice(s, event)
			return
		case StateAwaitingContinuation:
			if strings.TrimSpace(event.Content) == "1" {
				m.handleContinuation(s)
			}
			return
		}
	}

	switch in.kind {
	case intentHelp:
		m.reply(event, msgHelp(lang))
	case intentCreate:
		m.handleCreate(event)
	case intentJoin:
		m.handleJoin(s, event, lang)
	case intentStart:
		m.handleStart(s, event, lang)
	case intentGuess:
		m.handleGuess(s, event, in.arg, lang)
	case intentKick:
		m.handleKick(s, event, in.arg, lang)
	case intentEnd:
		m.handleEnd(s, event, lang)
	case intentChannelTotals:
		m.handleChannelTotals(event, lang)
	case intentGlobalTotals:
		m.handleGlobalTotals(event, lang)
	}
}

func (m *Manager) handleCreate(event chat.MessageEvent) {
	existing := m.sessions[event.ChannelID]
	if existing != nil && existing.State != StateAwaitingContinuation {
		m.reply(event, msgAlreadyActive(existing.Language))
		return
	}
	if existing != nil {
		// An explicit new game closes the continuation window.
		m.deleteSession(existing)
	}

	lang := normalizeLocale(event.Locale)
	s := newSession(event.GuildID, event.ChannelID, event.SenderID, lang)
	m.sessions[event.ChannelID] = s
	slog.Info("session created", "channel_id", s.ChannelID, "creator_id", s.CreatorID, "language", lang)

	m.reply(event, msgModePrompt(lang))
	m.armTimer(s, StateAwaitingCategoryMode, m.expireCategorySelection)
}

func (m *Manager) handleModeChoice(s *Session, event chat.MessageEvent) {
	switch strings.TrimSpace(event.Content) {
	case "1":
		m.cancelTimer(s)
		s.GameType = GameTypeSpecific
		s.State = StateAwaitingCategoryLetter
		m.reply(event, msgCategoryList(s.Language, m.categoryLines(s.Language)))
		m.armTimer(s, StateAwaitingCategoryLetter, m.expireCategorySelection)
	case "2":
		m.cancelTimer(s)
		s.GameType = GameTypeRandom
		s.State = StateLobby
		m.reply(event, msgRandomChosen(s.Language))
	default:
		m.reply(event, msgChooseOneOrTwo(s.Language))
	}
}

func (m *Manager) handleLetterChoice(s *Session, event chat.MessageEvent) {
	cat, ok := m.catalog.MatchLetter(event.Content)
	if !ok {
		m.reply(event, msgInvalidCategory(s.Language))
		return
	}
	m.cancelTimer(s)
	s.CategoryKey = cat.Key
	s.State = StateLobby
	slog.Info("category chosen", "channel_id", s.ChannelID, "category", cat.Key)
	m.reply(event, msgCategoryChosen(s.Language, categoryName(cat, s.Language)))
}

func (m *Manager) handleJoin(s *Session, event chat.MessageEvent, lang chat.Locale) {
	if s == nil || s.State != StateLobby {
		m.reply(event, msgNoJoinableGame(lang))
		return
	}
	if s.hasPlayer(event.SenderID) {
		m.reply(event, msgAlreadyJoined(s.Language))
		return
	}
	nickname := m.lookupNickname(event.GuildID, event.SenderID)
	s.addPlayer(event.SenderID, nickname)
	slog.Info("player joined", "channel_id", s.ChannelID, "user_id", event.SenderID, "players", s.playerCount())
	m.reply(event, msgJoined(s.Language, nickname, s.playerCount()))
}

func (m *Manager) handleStart(s *Session, event chat.MessageEvent, lang chat.Locale) {
	if s == nil || s.State != StateLobby {
		m.reply(event, msgNoJoinableGame(lang))
		return
	}
	if event.SenderID != s.CreatorID {
		m.reply(event, msgOnlyCreatorCanStart(s.Language))
		return
	}
	if s.playerCount() < minPlayers {
		m.reply(event, msgNeedThreePlayers(s.Language))
		return
	}
	m.cancelTimer(s)
	s.State = StateActiveRound
	m.startRound(s)
}

func (m *Manager) startRound(s *Session) {
	var cat catalog.Category
	var ok bool
	if s.GameType == GameTypeRandom {
		keys := m.catalog.Keys()
		cat, ok = m.catalog.Get(keys[m.pick(len(keys))])
	} else {
		cat, ok = m.catalog.Get(s.CategoryKey)
	}
	if !ok || len(cat.Words) == 0 {
		slog.Error("chosen category has no words", "channel_id", s.ChannelID, "category", s.CategoryKey)
		m.announce(s.ChannelID, msgEmptyCategory(s.Language))
		m.deleteSession(s)
		return
	}

	s.CategoryKey = cat.Key
	s.SecretWord = cat.Words[m.pick(len(cat.Words))]
	ids := s.playerIDs()
	s.SpyID = ids[m.pick(len(ids))]
	if entry, found := s.player(s.SpyID); found {
		s.SpyNickname = entry.Nickname
	}
	s.roundStartedAt = time.Now()

	for _, id := range ids {
		if id == s.SpyID {
			m.dm(id, msgSpyDM(s.Language))
			continue
		}
		m.dm(id, msgWordDM(s.Language, s.SecretWord, categoryName(cat, s.Language)))
	}
	m.announce(s.ChannelID, msgRoundStarted(s.Language))
	slog.Info("round started", "channel_id", s.ChannelID, "category", cat.Key, "players", len(ids))

	m.armTimer(s, StateActiveRound, func(s *Session) {
		slog.Info("guess collection timed out", "channel_id", s.ChannelID)
		m.announce(s.ChannelID, msgGuessTimeout(s.Language))
		m.endRound(s)
	})
}

func (m *Manager) handleGuess(s *Session, event chat.MessageEvent, target string, lang chat.Locale) {
	if s == nil || s.State != StateActiveRound {
		m.reply(event, msgNoActiveRound(lang))
		return
	}
	entry, isPlayer := s.player(event.SenderID)
	if !isPlayer {
		m.reply(event, msgNotInGame(s.Language))
		return
	}
	if !s.hasPlayer(target) {
		m.reply(event, msgInvalidGuessTarget(s.Language))
		return
	}
	if entry.GuessedSpy != "" {
		m.reply(event, msgAlreadyGuessed(s.Language))
		return
	}

	// The Spy's own guess is recorded but stays outside every tally.
	entry.GuessedSpy = target
	m.announce(s.ChannelID, msgGuessPlaced(s.Language, entry.Nickname))

	if s.allNonSpyGuessed() {
		m.endRound(s)
	}
	// Otherwise the guess timer armed at round start keeps running.
}

func (m *Manager) handleKick(s *Session, event chat.MessageEvent, target string, lang chat.Locale) {
	if s == nil || (s.State != StateLobby && s.State != StateActiveRound) {
		m.reply(event, msgNoActiveGame(lang))
		return
	}
	if event.SenderID != s.CreatorID {
		m.reply(event, msgOnlyCreatorCanKick(s.Language))
		return
	}
	entry, ok := s.removePlayer(target)
	if !ok {
		m.reply(event, msgPlayerNotInGame(s.Language))
		return
	}
	slog.Info("player kicked", "channel_id", s.ChannelID, "user_id", target, "players", s.playerCount())
	m.reply(event, msgKicked(s.Language, entry.Nickname))

	if s.State != StateActiveRound {
		return
	}
	if s.playerCount() < minPlayers {
		m.announce(s.ChannelID, msgBelowMinimum(s.Language))
		m.endRound(s)
		return
	}
	// Kicking the Spy or the last missing guesser both settle the round.
	if target == s.SpyID || s.allNonSpyGuessed() {
		m.endRound(s)
	}
}

func (m *Manager) handleEnd(s *Session, event chat.MessageEvent, lang chat.Locale) {
	if s == nil || event.SenderID != s.CreatorID {
		m.reply(event, msgNoGameToEnd(lang))
		return
	}
	m.cancelTimer(s)
	m.reply(event, msgEndedByCreator(s.Language))
	if s.State == StateActiveRound {
		m.endRound(s)
		return
	}
	m.deleteSession(s)
}

// endRound scores the current round exactly once, persists the deltas and
// opens the continuation window. Callers hold the manager mutex.
func (m *Manager) endRound(s *Session) {
	if s.State == StateScored || s.State == StateAwaitingContinuation {
		return
	}
	s.State = StateScored
	m.cancelTimer(s)

	out := scoreRound(s)
	m.announce(s.ChannelID, msgSpyReveal(s.Language, out.SpyNickname))

	ctx := context.Background()
	lines := []string{msgResultsHeader(s.Language)}
	for _, res := range out.Results {
		if entry, ok := s.player(res.UserID); ok {
			entry.Score += res.Delta
		}
		if err := m.repo.IncrementChannelScore(ctx, s.ChannelID, res.UserID, res.Delta); err != nil {
			slog.Error("failed to update channel score", "channel_id", s.ChannelID, "user_id", res.UserID, "error", err)
		}
		if err := m.repo.IncrementGlobalScore(ctx, res.UserID, res.Delta); err != nil {
			slog.Error("failed to update global score", "user_id", res.UserID, "error", err)
		}
		total, err := m.repo.GetChannelScore(ctx, s.ChannelID, res.UserID)
		if err != nil {
			slog.Error("failed to read channel score", "channel_id", s.ChannelID, "user_id", res.UserID, "error", err)
		}
		lines = append(lines, msgResultLine(s.Language, res.Nickname, res.Delta, total))
	}
	m.announce(s.ChannelID, strings.Join(lines, "\n"))

	if err := m.repo.RecordRound(ctx, repository.RoundRecord{
		ID:          uuid.NewString(),
		ChannelID:   s.ChannelID,
		CategoryKey: s.CategoryKey,
		SecretWord:  s.SecretWord,
		SpyID:       s.SpyID,
		PlayerCount: len(out.Results),
		SpyDelta:    out.SpyDelta,
		StartedAt:   s.roundStartedAt,
		EndedAt:     time.Now(),
	}); err != nil {
		slog.Error("failed to record round", "channel_id", s.ChannelID, "error", err)
	}
	slog.Info("round scored", "channel_id", s.ChannelID, "correct", out.Correct, "incorrect", out.Incorrect, "spy_delta", out.SpyDelta)

	s.State = StateAwaitingContinuation
	m.announce(s.ChannelID, msgContinuePrompt(s.Language))
	m.armTimer(s, StateAwaitingContinuation, func(s *Session) {
		slog.Info("continuation window lapsed", "channel_id", s.ChannelID)
		m.deleteSession(s)
	})
}

func (m *Manager) handleContinuation(s *Session) {
	m.cancelTimer(s)
	next := s.successor()
	m.sessions[next.ChannelID] = next
	slog.Info("continuation accepted", "channel_id", next.ChannelID, "game_type", next.GameType, "category", next.CategoryKey)
	m.announce(next.ChannelID, msgNewRoundStarted(next.Language))
}

func (m *Manager) handleChannelTotals(event chat.MessageEvent, lang chat.Locale) {
	scores, err := m.repo.ListChannelScores(context.Background(), event.ChannelID)
	if err != nil {
		slog.Error("failed to list channel scores", "channel_id", event.ChannelID, "error", err)
		return
	}
	lines := []string{msgChannelTotalsHeader(lang)}
	if len(scores) == 0 {
		lines = append(lines, msgNoChannelScores(lang))
	}
	for _, sc := range scores {
		lines = append(lines, fmt.Sprintf("%s: %d", m.lookupNickname(event.GuildID, sc.UserID), sc.Score))
	}
	m.reply(event, strings.Join(lines, "\n"))
}

func (m *Manager) handleGlobalTotals(event chat.MessageEvent, lang chat.Locale) {
	scores, err := m.repo.ListGlobalScores(context.Background())
	if err != nil {
		slog.Error("failed to list global scores", "error", err)
		return
	}
	lines := []string{msgGlobalTotalsHeader(lang)}
	if len(scores) == 0 {
		lines = append(lines, msgNoGlobalScores(lang))
	}
	for i, sc := range scores {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", i+1, m.lookupNickname(event.GuildID, sc.UserID), sc.Score))
	}
	m.reply(event, strings.Join(lines, "\n"))
}

func (m *Manager) expireCategorySelection(s *Session) {
	slog.Info("category selection timed out", "channel_id", s.ChannelID, "state", s.State)
	m.deleteSession(s)
	m.announce(s.ChannelID, msgCategoryTimeout(s.Language))
}

// armTimer replaces the session's single outstanding timer. The callback
// re-validates at fire time that the session is still registered, unchanged
// in generation and still in the state it was armed for, so a late firing
// can never act on a progressed or replaced session.
func (m *Manager) armTimer(s *Session, expected State, fire func(*Session)) {
	s.timerGen++
	gen := s.timerGen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(m.timeout, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		current, registered := m.sessions[s.ChannelID]
		if !registered || current != s || s.timerGen != gen || s.State != expected {
			return
		}
		fire(s)
	})
}

func (m *Manager) cancelTimer(s *Session) {
	s.timerGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (m *Manager) deleteSession(s *Session) {
	m.cancelTimer(s)
	delete(m.sessions, s.ChannelID)
}

func (m *Manager) categoryLines(lang chat.Locale) []string {
	lines := make([]string, 0, m.catalog.Len())
	for _, key := range m.catalog.Keys() {
		cat, _ := m.catalog.Get(key)
		lines = append(lines, fmt.Sprintf("%s - %s", strings.ToUpper(key[:1]), categoryName(cat, lang)))
	}
	return lines
}

func (m *Manager) lookupNickname(guildID, userID string) string {
	info, err := m.chat.GetParticipantInfo(guildID, userID)
	if err != nil || info.Nickname == "" {
		return "User " + userID
	}
	return info.Nickname
}

func (m *Manager) reply(event chat.MessageEvent, content string) {
	if err := m.chat.Reply(event, content); err != nil {
		slog.Error("failed to reply", "channel_id", event.ChannelID, "error", err)
	}
}

func (m *Manager) announce(channelID, content string) {
	if err := m.chat.SendChannelMessage(channelID, content); err != nil {
		slog.Error("failed to send channel message", "channel_id", channelID, "error", err)
	}
}

func (m *Manager) dm(userID, content string) {
	if err := m.chat.SendDirectMessage(userID, content); err != nil {
		slog.Error("failed to send direct message", "user_id", userID, "error", err)
	}
}

func categoryName(cat catalog.Category, lang chat.Locale) string {
	if arabic(lang) {
		return cat.NameArabic
	}
	return cat.NameEnglish
}

func normalizeLocale(locale chat.Locale) chat.Locale {
	if locale == chat.LocaleArabic {
		return chat.LocaleArabic
	}
	return chat.LocaleEnglish
}
