package powersuit

import (
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/deck"
)

// Deal is a dealt round: one hand per seat and the trump suit
type Deal struct {
	Hands     []deck.Hand
	TrumpSuit deck.Suit
	Attempts  int
}

// NewDeal shuffles and deals a deck for the capacity until the deal is valid.
// At most attempts deals are tried, after which ErrNoValidDeal is returned.
func NewDeal(g rng.Generator, capacity, attempts int) (*Deal, error) {
	d := deck.New(capacity)
	suits := d.Suits()

	for i := 1; i <= attempts; i++ {
		d.Shuffle(g)
		hands, err := d.Deal(capacity)
		if err != nil {
			return nil, err
		}

		trump := suits[g.Intn(len(suits))]
		if ValidDeal(hands, trump, len(suits)) {
			return &Deal{
				Hands:     hands,
				TrumpSuit: trump,
				Attempts:  i,
			}, nil
		}
	}

	return nil, ErrNoValidDeal
}

// ValidDeal returns true if no hand holds every ace in the deck and every hand holds a trump
func ValidDeal(hands []deck.Hand, trumpSuit deck.Suit, aces int) bool {
	for _, hand := range hands {
		if hand.CountValue(deck.Ace) == aces {
			return false
		}

		if len(hand.OfSuit(trumpSuit)) == 0 {
			return false
		}
	}

	return true
}
