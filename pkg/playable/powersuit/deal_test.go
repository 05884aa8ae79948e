package powersuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/deck"
)

func TestNewDeal(t *testing.T) {
	for _, capacity := range []int{3, 4} {
		g := rng.NewSeeded(int64(capacity))
		for i := 0; i < 50; i++ {
			deal, err := NewDeal(g, capacity, 100)
			if !assert.NoError(t, err) {
				return
			}

			assert.Len(t, deal.Hands, capacity)
			assert.Contains(t, deck.Suits(capacity), deal.TrumpSuit)

			seen := make(map[string]bool)
			for _, hand := range deal.Hands {
				assert.Len(t, hand, 13)
				assert.NotEmpty(t, hand.OfSuit(deal.TrumpSuit))
				assert.Less(t, hand.CountValue(deck.Ace), capacity)

				for _, c := range hand {
					key := deck.CardToString(c)
					assert.False(t, seen[key])
					seen[key] = true
				}
			}

			assert.Len(t, seen, 13*capacity)
		}
	}
}

func TestNewDeal_exhausted(t *testing.T) {
	deal, err := NewDeal(zeroRng{}, 3, 100)
	assert.Nil(t, deal)
	assert.Equal(t, ErrNoValidDeal, err)
}

func TestValidDeal(t *testing.T) {
	a := assert.New(t)

	hands := []deck.Hand{
		deck.CardsFromString("14s,14h,14c,2s"),
		deck.CardsFromString("3s,4h"),
		deck.CardsFromString("5s,5h"),
	}
	a.False(ValidDeal(hands, deck.Spades, 3), "one hand holds every ace")
	a.True(ValidDeal(hands, deck.Spades, 4), "a fourth ace exists elsewhere")

	hands = []deck.Hand{
		deck.CardsFromString("14s,2s"),
		deck.CardsFromString("14h,4h"),
		deck.CardsFromString("14c,5s"),
	}
	a.False(ValidDeal(hands, deck.Spades, 3), "seat 1 has no trump")
	a.True(ValidDeal([]deck.Hand{hands[0], hands[2]}, deck.Spades, 3))
}
