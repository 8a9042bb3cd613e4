package scopa

// resolveTurnEnd settles the intermediate state produced by the turn
// resolver: closes out the round if the deck and both hands are empty,
// records a sweep if the table was cleared, and deals new hands when a
// turn cycle completes.
func resolveTurnEnd(oldState GameState) (GameState, bool) {
	newState := oldState.Clone()

	turnFinished := true
	for _, p := range newState.Players {
		if len(p.Hand) > 0 {
			turnFinished = false
			break
		}
	}
	roundFinished := turnFinished && len(newState.Deck) == 0

	if roundFinished {
		// Whatever is left on the table goes to the last capturer. A
		// round with no captures has no last capturer; the residue then
		// stays on the table so no card is lost.
		if len(newState.Table) > 0 {
			if idx, ok := newState.findPlayer(newState.LatestCaptured); ok {
				p := &newState.Players[idx]
				p.Captured = append(p.Captured, newState.Table...)
				newState.Table = newState.Table[:0]
			}
		}
		newState.Status = StatusEnded
		return newState, true
	}

	// An empty table mid-round means the last capture was a sweep. The
	// capturing card moves onto the player's scopa pile as the bonus
	// marker. No sweep is awarded on the very last capture of a round;
	// the close-out branch above takes precedence.
	if len(newState.Table) == 0 {
		if idx, ok := newState.findPlayer(newState.LatestCaptured); ok {
			p := &newState.Players[idx]
			if n := len(p.Captured); n > 0 {
				p.Scopa = append(p.Scopa, p.Captured[n-1])
				p.Captured = p.Captured[:n-1]
			}
		}
	}

	if turnFinished {
		for i := range newState.Players {
			newState.Players[i].Hand = newState.Deck.Deal(handSize)
		}
	}

	return newState, false
}
