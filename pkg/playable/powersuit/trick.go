package powersuit

import (
	"powersuit-server/pkg/deck"
)

// Play is a single card played to a trick
type Play struct {
	PlayerIndex int        `json:"playerIndex"`
	Card        *deck.Card `json:"card"`
}

// Trick is the ordered list of cards played in one trick
type Trick []*Play

// Clone returns a shallow copy of the trick
func (t Trick) Clone() Trick {
	return append(Trick{}, t...)
}

// hasPlayed returns true if the seat already played to the trick
func (t Trick) hasPlayed(seat int) bool {
	for _, play := range t {
		if play.PlayerIndex == seat {
			return true
		}
	}

	return false
}

// ResolvedTrick is a trick in the round's history
type ResolvedTrick struct {
	TrickNumber int   `json:"trickNumber"`
	Cards       Trick `json:"cards"`
	WinnerIndex int   `json:"winnerIndex"`
}

// Winner returns the winning play of a complete trick.
// The highest trump wins if any trump was played, otherwise the highest card of the lead suit.
// Off-suit discards never win.
func Winner(trick Trick, leadSuit, trumpSuit deck.Suit) *Play {
	var best *Play
	for _, play := range trick {
		if play.Card.Suit == trumpSuit && (best == nil || play.Card.Value > best.Card.Value) {
			best = play
		}
	}

	if best != nil {
		return best
	}

	for _, play := range trick {
		if play.Card.Suit == leadSuit && (best == nil || play.Card.Value > best.Card.Value) {
			best = play
		}
	}

	return best
}
