package game

// playerResult is one participant's score delta for a concluded round, in
// join order. The Spy appears even when it was kicked mid-round.
type playerResult struct {
	UserID   string
	Nickname string
	Delta    int
	IsSpy    bool
}

type roundOutcome struct {
	SpyID       string
	SpyNickname string
	SpyDelta    int
	Correct     int
	Incorrect   int
	Results     []playerResult
}

// scoreRound computes every score delta for the session's current round.
// Non-Spy players partition by guess outcome: +1 for naming the Spy, -1 for
// naming anyone else, 0 for no guess. The Spy loses one point per correct
// detector, or gains one point per other player on a clean bluff. The Spy's
// own recorded guess never enters the tallies.
func scoreRound(s *Session) roundOutcome {
	out := roundOutcome{SpyID: s.SpyID, SpyNickname: s.SpyNickname}

	nonSpyCount := 0
	for _, id := range s.order {
		if id == s.SpyID {
			continue
		}
		nonSpyCount++
		entry := s.players[id]
		if entry.GuessedSpy == "" {
			continue
		}
		if entry.GuessedSpy == s.SpyID {
			out.Correct++
		} else {
			out.Incorrect++
		}
	}

	if out.Correct > 0 {
		out.SpyDelta = -out.Correct
	} else {
		out.SpyDelta = nonSpyCount
	}

	spyPresent := false
	for _, id := range s.order {
		entry := s.players[id]
		if id == s.SpyID {
			spyPresent = true
			out.Results = append(out.Results, playerResult{
				UserID: id, Nickname: entry.Nickname, Delta: out.SpyDelta, IsSpy: true,
			})
			continue
		}
		delta := 0
		if entry.GuessedSpy == s.SpyID {
			delta = 1
		} else if entry.GuessedSpy != "" {
			delta = -1
		}
		out.Results = append(out.Results, playerResult{
			UserID: id, Nickname: entry.Nickname, Delta: delta,
		})
	}
	if !spyPresent && s.SpyID != "" {
		// Spy was kicked during the round; its delta still persists.
		out.Results = append(out.Results, playerResult{
			UserID: s.SpyID, Nickname: s.SpyNickname, Delta: out.SpyDelta, IsSpy: true,
		})
	}
	return out
}
