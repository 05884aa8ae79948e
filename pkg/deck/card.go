package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownSuit is returned when a card carries a suit that is not in any deck
var ErrUnknownSuit = errors.New("unknown suit")

// ErrUnknownRank is returned when a card carries a rank that is not in any deck
var ErrUnknownRank = errors.New("unknown rank")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spade"
	Hearts   Suit = "heart"
	Clubs    Suit = "club"
	Diamonds Suit = "diamond"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
// Rank is the label the client displays, Value orders cards within a suit
type Card struct {
	Suit  Suit   `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// Suits returns the suits used for a table of the given capacity
// Three player tables play without diamonds
func Suits(capacity int) []Suit {
	if capacity == 3 {
		return []Suit{Spades, Hearts, Clubs}
	}

	return []Suit{Spades, Hearts, Clubs, Diamonds}
}

// RankLabel returns the label for a value (2-14)
func RankLabel(value int) string {
	switch value {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(value)
	}
}

// RankValue returns the value for a rank label
func RankValue(rank string) (int, error) {
	switch strings.ToUpper(rank) {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	v, err := strconv.Atoi(rank)
	if err != nil || v < 2 || v > 10 {
		return 0, ErrUnknownRank
	}

	return v, nil
}

// NewCard builds a card, deriving the value from the rank label
func NewCard(suit Suit, rank string) (*Card, error) {
	if !suit.Valid() {
		return nil, ErrUnknownSuit
	}

	value, err := RankValue(rank)
	if err != nil {
		return nil, err
	}

	return &Card{Suit: suit, Rank: RankLabel(value), Value: value}, nil
}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	switch s {
	case Spades, Hearts, Clubs, Diamonds:
		return true
	}

	return false
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", RankLabel(c.Value), suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Value == card.Value
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <value><suit> where value >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Suit:  suit,
		Rank:  RankLabel(value),
		Value: value,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Value, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
