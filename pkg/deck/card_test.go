package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", CardFromString("2h").String())
	assert.Equal(t, "J♣", CardFromString("11c").String())
	assert.Equal(t, "Q♢", CardFromString("12d").String())
	assert.Equal(t, "K♠", CardFromString("13s").String())
	assert.Equal(t, "A♠", CardFromString("14s").String())
}

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard(Hearts, "K")
	a.NoError(err)
	a.Equal(Card{Suit: Hearts, Rank: "K", Value: 13}, *card)

	card, err = NewCard(Clubs, "10")
	a.NoError(err)
	a.Equal(10, card.Value)

	card, err = NewCard(Spades, "a")
	a.NoError(err)
	a.Equal("A", card.Rank)
	a.Equal(14, card.Value)

	_, err = NewCard("joker", "2")
	a.Equal(ErrUnknownSuit, err)

	_, err = NewCard(Spades, "1")
	a.Equal(ErrUnknownRank, err)

	_, err = NewCard(Spades, "11")
	a.Equal(ErrUnknownRank, err)

	_, err = NewCard(Spades, "")
	a.Equal(ErrUnknownRank, err)
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Nil(CardFromString(""))
	a.Equal(Card{Suit: Diamonds, Rank: "10", Value: 10}, *CardFromString("10d"))
	a.Panics(func() {
		CardFromString("1s")
	})

	cards := CardsFromString("2c,14s")
	a.Len(cards, 2)
	a.Equal("2c,14s", CardsToString(cards))
	a.Equal("", CardToString(nil))
}

func TestSuits(t *testing.T) {
	assert.Equal(t, []Suit{Spades, Hearts, Clubs}, Suits(3))
	assert.Equal(t, []Suit{Spades, Hearts, Clubs, Diamonds}, Suits(4))
}
