// internal/engine/uno.go
package engine

// refreshVulnerability re-evaluates the UNO call-out flag after an operation
// changed the named player's hand. A player whose hand just became exactly
// one card is open to a call-out; the flag is dropped as soon as its holder's
// hand size leaves one (by drawing, by winning, or by the game ending).
func refreshVulnerability(s *GameState, changedID string) {
	if s.VulnerablePlayer != "" {
		idx := s.PlayerIndex(s.VulnerablePlayer)
		if idx < 0 || len(s.Players[idx].Hand) != 1 {
			s.VulnerablePlayer = ""
		}
	}
	if s.IsOver {
		s.VulnerablePlayer = ""
		return
	}
	if idx := s.PlayerIndex(changedID); idx >= 0 && len(s.Players[idx].Hand) == 1 {
		s.VulnerablePlayer = changedID
	}
}

// CallPenalty is another participant calling out a player who reached one
// card without declaring. The target's hand size is re-checked so a stale
// call that lost the race fails cleanly: the externally serialized second
// call sees vulnerability already cleared and gets InvalidCall.
func CallPenalty(s *GameState, targetID, callerID string) (*GameState, error) {
	if s.IsOver {
		return nil, failf(FailInvalidCall, "game is over")
	}
	if s.PlayerIndex(callerID) < 0 {
		return nil, failf(FailInvalidCall, "unknown caller %s", callerID)
	}
	if callerID == targetID {
		return nil, failf(FailInvalidCall, "cannot call a penalty on yourself")
	}
	if s.VulnerablePlayer == "" || s.VulnerablePlayer != targetID {
		return nil, failf(FailInvalidCall, "%s is not open to a call-out", targetID)
	}
	idx := s.PlayerIndex(targetID)
	if idx < 0 || len(s.Players[idx].Hand) != 1 {
		return nil, failf(FailInvalidCall, "%s is not open to a call-out", targetID)
	}

	next := s.clone()
	next.VulnerablePlayer = ""
	dealPenalty(next, idx, 2)
	return next, nil
}

// CallSelf is the vulnerable player declaring in time: vulnerability clears
// and no cards are dealt.
func CallSelf(s *GameState, playerID string) (*GameState, error) {
	if s.IsOver {
		return nil, failf(FailInvalidCall, "game is over")
	}
	if s.VulnerablePlayer == "" || s.VulnerablePlayer != playerID {
		return nil, failf(FailInvalidCall, "%s is not open to a call-out", playerID)
	}

	next := s.clone()
	next.VulnerablePlayer = ""
	return next, nil
}
