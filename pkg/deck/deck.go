package deck

import (
	"errors"

	"powersuit-server/internal/rng"
)

// CardsPerSuit is the number of ranks in every suit
const CardsPerSuit = 13

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrUnevenDeal is returned when the deck cannot be split evenly between the players
var ErrUnevenDeal = errors.New("deck cannot be split evenly")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	suits []Suit
}

// New returns a new deck of cards for a table of the given capacity.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(capacity int) *Deck {
	d := &Deck{
		suits: Suits(capacity),
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, len(d.suits)*CardsPerSuit)
	for _, suit := range d.suits {
		for value := 2; value <= Ace; value++ {
			cards = append(cards, &Card{
				Suit:  suit,
				Rank:  RankLabel(value),
				Value: value,
			})
		}
	}

	d.Cards = cards
}

// Suits returns the suits the deck was built from
func (d *Deck) Suits() []Suit {
	return append([]Suit{}, d.suits...)
}

// Shuffle rebuilds the deck and applies a Fisher-Yates shuffle
func (d *Deck) Shuffle(g rng.Generator) {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal partitions the remaining cards into n contiguous hands of equal size
func (d *Deck) Deal(n int) ([]Hand, error) {
	if n <= 0 || len(d.Cards)%n != 0 {
		return nil, ErrUnevenDeal
	}

	size := len(d.Cards) / n
	hands := make([]Hand, n)
	for i := range hands {
		hand := make(Hand, 0, size)
		for j := 0; j < size; j++ {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			hand.AddCard(card)
		}

		hands[i] = hand
	}

	return hands, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
