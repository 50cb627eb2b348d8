// internal/engine/turn.go
package engine

// nextIndex walks steps seats forward in the current direction, counting only
// steps that land on an active player. Inactive seats are transparently
// skipped. If no player is active the index is returned unchanged rather than
// looping forever.
func nextIndex(s *GameState, steps int) int {
	n := len(s.Players)
	idx := s.CurrentPlayerIndex
	for step := 0; step < steps; step++ {
		landed := false
		for hop := 0; hop < n; hop++ {
			idx = (idx + s.Direction + n) % n
			if s.Players[idx].Active {
				landed = true
				break
			}
		}
		if !landed {
			return s.CurrentPlayerIndex
		}
	}
	return idx
}

// activeCount returns the number of players still marked active.
func activeCount(s *GameState) int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Active {
			n++
		}
	}
	return n
}
