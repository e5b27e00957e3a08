package game

import (
	"testing"

	"github.com/majlislab/jasoos/internal/chat"
)

type testPlayer struct {
	id    string
	guess string
}

func scoringSession(spyID string, players []testPlayer) *Session {
	s := newSession("g1", "ch1", players[0].id, chat.LocaleEnglish)
	s.State = StateActiveRound
	for _, p := range players {
		s.addPlayer(p.id, "nick-"+p.id)
		s.players[p.id].GuessedSpy = p.guess
	}
	s.SpyID = spyID
	if entry, ok := s.player(spyID); ok {
		s.SpyNickname = entry.Nickname
	}
	return s
}

func deltaByID(out roundOutcome) map[string]int {
	deltas := make(map[string]int, len(out.Results))
	for _, res := range out.Results {
		deltas[res.UserID] = res.Delta
	}
	return deltas
}

func TestScoreRound_MixedGuesses(t *testing.T) {
	// Spy detected by two, accused wrongly by one, one abstainer.
	s := scoringSession("201", []testPlayer{
		{id: "201", guess: ""},
		{id: "202", guess: "201"},
		{id: "203", guess: "201"},
		{id: "204", guess: "202"},
		{id: "205", guess: ""},
	})
	out := scoreRound(s)

	if out.Correct != 2 || out.Incorrect != 1 {
		t.Fatalf("expected 2 correct / 1 incorrect, got %d / %d", out.Correct, out.Incorrect)
	}
	if out.SpyDelta != -2 {
		t.Fatalf("expected spy delta -2, got %d", out.SpyDelta)
	}
	want := map[string]int{"201": -2, "202": 1, "203": 1, "204": -1, "205": 0}
	got := deltaByID(out)
	for id, delta := range want {
		if got[id] != delta {
			t.Errorf("player %s delta = %d, want %d", id, got[id], delta)
		}
	}

	// Deltas are asymmetric, not zero-sum.
	sum := 0
	for _, res := range out.Results {
		sum += res.Delta
	}
	if sum != -1 {
		t.Errorf("expected delta sum -1, got %d", sum)
	}
}

func TestScoreRound_CleanBluff(t *testing.T) {
	// Nobody guesses: Spy gains one point per other player.
	s := scoringSession("201", []testPlayer{
		{id: "201"},
		{id: "202"},
		{id: "203"},
	})
	out := scoreRound(s)

	if out.SpyDelta != 2 {
		t.Fatalf("expected spy delta +2, got %d", out.SpyDelta)
	}
	got := deltaByID(out)
	if got["202"] != 0 || got["203"] != 0 {
		t.Errorf("abstainers should score 0, got %v", got)
	}
}

func TestScoreRound_AllWrongStillBluff(t *testing.T) {
	s := scoringSession("201", []testPlayer{
		{id: "201"},
		{id: "202", guess: "203"},
		{id: "203", guess: "202"},
	})
	out := scoreRound(s)

	if out.Correct != 0 || out.Incorrect != 2 {
		t.Fatalf("expected 0 correct / 2 incorrect, got %d / %d", out.Correct, out.Incorrect)
	}
	if out.SpyDelta != 2 {
		t.Fatalf("expected spy delta +2 on zero detections, got %d", out.SpyDelta)
	}
	got := deltaByID(out)
	if got["202"] != -1 || got["203"] != -1 {
		t.Errorf("wrong guessers should score -1, got %v", got)
	}
}

func TestScoreRound_SignFlipsAtFirstDetection(t *testing.T) {
	s := scoringSession("201", []testPlayer{
		{id: "201"},
		{id: "202", guess: "201"},
		{id: "203"},
	})
	out := scoreRound(s)
	if out.SpyDelta != -1 {
		t.Fatalf("single detection should flip spy delta to -1, got %d", out.SpyDelta)
	}
}

func TestScoreRound_SpyOwnGuessExcluded(t *testing.T) {
	s := scoringSession("201", []testPlayer{
		{id: "201", guess: "202"},
		{id: "202", guess: "201"},
		{id: "203", guess: "203"},
	})
	out := scoreRound(s)

	if out.Correct != 1 || out.Incorrect != 1 {
		t.Fatalf("spy guess must stay outside tallies, got %d correct / %d incorrect", out.Correct, out.Incorrect)
	}
	if out.SpyDelta != -1 {
		t.Fatalf("expected spy delta -1, got %d", out.SpyDelta)
	}
}

func TestScoreRound_KickedSpyStillScored(t *testing.T) {
	s := scoringSession("201", []testPlayer{
		{id: "201"},
		{id: "202", guess: "201"},
		{id: "203", guess: "201"},
		{id: "204", guess: "201"},
	})
	s.removePlayer("201")
	out := scoreRound(s)

	if out.SpyDelta != -3 {
		t.Fatalf("expected spy delta -3, got %d", out.SpyDelta)
	}
	got := deltaByID(out)
	if got["201"] != -3 {
		t.Fatalf("kicked spy missing from results: %v", got)
	}
	var spyResult *playerResult
	for i := range out.Results {
		if out.Results[i].IsSpy {
			spyResult = &out.Results[i]
		}
	}
	if spyResult == nil || spyResult.Nickname != "nick-201" {
		t.Fatalf("expected snapshotted spy nickname in results, got %+v", spyResult)
	}
}
