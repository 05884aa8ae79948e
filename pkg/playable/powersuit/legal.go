package powersuit

import (
	"powersuit-server/pkg/deck"
)

// LegalCards returns the cards in hand that may be played to the trick.
// The rules are applied top-down and the first one that matches decides:
//  1. leading a trick: any card
//  2. holding the lead suit: lead suit only, and only cards that beat the
//     highest lead suit card played so far if the hand has any
//  3. holding trump but not the lead suit: trump only
//  4. otherwise: any card
func LegalCards(hand deck.Hand, trick Trick, leadSuit, trumpSuit deck.Suit) deck.Hand {
	if len(trick) == 0 {
		return hand.Clone()
	}

	if leadCards := hand.OfSuit(leadSuit); len(leadCards) > 0 {
		maxPlayed := -1
		for _, play := range trick {
			if play.Card.Suit == leadSuit && play.Card.Value > maxPlayed {
				maxPlayed = play.Card.Value
			}
		}

		higher := make(deck.Hand, 0, len(leadCards))
		for _, card := range leadCards {
			if card.Value > maxPlayed {
				higher = append(higher, card)
			}
		}

		if len(higher) > 0 {
			return higher
		}

		return leadCards
	}

	if trumpCards := hand.OfSuit(trumpSuit); len(trumpCards) > 0 {
		return trumpCards
	}

	return hand.Clone()
}

// IsLegal returns true if card may be played from hand
func IsLegal(card *deck.Card, hand deck.Hand, trick Trick, leadSuit, trumpSuit deck.Suit) bool {
	return LegalCards(hand, trick, leadSuit, trumpSuit).HasCard(card)
}
