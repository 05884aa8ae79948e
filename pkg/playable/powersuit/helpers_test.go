package powersuit

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/deck"
)

// zeroRng always returns zero, a shuffle with it rotates the deck by one card
type zeroRng struct{}

func (zeroRng) Intn(int) int {
	return 0
}

func newTestGame(t *testing.T, capacity int, seed int64) *Game {
	t.Helper()

	logger, _ := test.NewNullLogger()
	g, err := NewGame(logger, rng.NewSeeded(seed), DefaultOptions(capacity))
	require.NoError(t, err)

	for i := 0; i < capacity; i++ {
		_, err := g.AddPlayer(fmt.Sprintf("id%d", i), fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}

	return g
}

// setupGame puts a game straight into the playing phase with known hands
func setupGame(t *testing.T, trump deck.Suit, hands ...string) (*Game, []*Player) {
	t.Helper()

	g := newTestGame(t, len(hands), 1)
	for i, p := range g.players {
		p.newRound(deck.CardsFromString(hands[i]))
		p.setBid(1)
	}

	g.state.Phase = PhasePlaying
	g.state.RoundNumber = 1
	g.state.TrumpSuit = trump
	g.state.CurrentPlayerIndex = 0

	return g, g.players
}

func card(s string) *deck.Card {
	return deck.CardFromString(s)
}
