package powersuit

import (
	"powersuit-server/pkg/deck"
)

// Player is a seat at the table
type Player struct {
	ID   string
	Name string

	hand       deck.Hand
	bid        int
	hasBid     bool
	tricksWon  int
	score      int
	totalScore int
	ready      bool

	// vacant is set when the player leaves mid-round.
	// The seat keeps its index until the round is scored.
	vacant bool
}

// NewPlayer returns a new player
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
		hand: make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Bid returns the player's bid
// The second value is false while the player has not bid, which is distinct from a bid of zero
func (p *Player) Bid() (int, bool) {
	return p.bid, p.hasBid
}

// TricksWon returns the number of tricks won this round
func (p *Player) TricksWon() int {
	return p.tricksWon
}

// Score returns the score of the last scored round
func (p *Player) Score() int {
	return p.score
}

// TotalScore returns the cumulative score
func (p *Player) TotalScore() int {
	return p.totalScore
}

// IsReady returns true if the player is ready for the next round
func (p *Player) IsReady() bool {
	return p.ready
}

// IsVacant returns true if the player left during the current round
func (p *Player) IsVacant() bool {
	return p.vacant
}

func (p *Player) setBid(bid int) {
	p.bid = bid
	p.hasBid = true
}

// newRound resets the per-round values
func (p *Player) newRound(hand deck.Hand) {
	p.hand = hand
	p.bid = 0
	p.hasBid = false
	p.tricksWon = 0
	p.score = 0
}

// vacate discards the hand and freezes the bid
func (p *Player) vacate() {
	p.vacant = true
	p.ready = false
	p.hand = make(deck.Hand, 0)
	if !p.hasBid {
		p.setBid(0)
	}
}
