package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_sort(t *testing.T) {
	h := Hand(CardsFromString("14s,2h,10c,3h,2c"))
	sort.Sort(h)
	assert.Equal(t, "2c,10c,2h,3h,14s", h.String())
}

func TestHand_Discard(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("2c,3c,4h"))
	a.True(h.HasCard(CardFromString("3c")))
	a.True(h.Discard(CardFromString("3c")))
	a.Equal("2c,4h", h.String())
	a.False(h.HasCard(CardFromString("3c")))
	a.False(h.Discard(CardFromString("3c")))
	a.Equal("2c,4h", h.String())
}

func TestHand_OfSuit(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("2c,14h,4h,14c"))
	a.Equal("14h,4h", h.OfSuit(Hearts).String())
	a.Len(h.OfSuit(Spades), 0)
	a.Equal(2, h.CountValue(Ace))

	clone := h.Clone()
	clone.Discard(CardFromString("2c"))
	a.Len(h, 4)
	a.Len(clone, 3)
}
