package deck

import "strings"

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Value < h[j].Value
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will remove the specified card and return true if it was found
func (h *Hand) Discard(card *Card) bool {
	newHand := make(Hand, 0, len(*h))
	found := false
	for _, c := range *h {
		if !found && c.Equal(card) {
			found = true
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return found
}

// OfSuit returns the cards of the given suit
func (h Hand) OfSuit(suit Suit) Hand {
	cards := make(Hand, 0)
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// CountValue returns how many cards in the hand have the value
func (h Hand) CountValue(value int) int {
	n := 0
	for _, c := range h {
		if c.Value == value {
			n++
		}
	}

	return n
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
