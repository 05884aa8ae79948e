package powersuit

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/deck"
)

// TricksPerRound is the number of tricks in every round
const TricksPerRound = deck.CardsPerSuit

// MaxBid is the highest bid a player may make
const MaxBid = TricksPerRound

// Options configures a game
type Options struct {
	Capacity     int
	DealAttempts int
	AutoBidMin   int
	AutoBidMax   int
}

// DefaultOptions returns the standard options for a table of the given capacity
func DefaultOptions(capacity int) Options {
	return Options{
		Capacity:     capacity,
		DealAttempts: 100,
		AutoBidMin:   1,
		AutoBidMax:   7,
	}
}

// GameState is the state of the current round
type GameState struct {
	Phase              Phase
	TrumpSuit          deck.Suit
	CurrentPlayerIndex int
	CurrentTrick       Trick
	TrickNumber        int
	RoundNumber        int
	LeadSuit           deck.Suit
	TrickHistory       []*ResolvedTrick
}

// Game is a game of Power Suit
// A game is not safe for concurrent use, the owning room serializes every call
type Game struct {
	options Options
	rng     rng.Generator
	logger  logrus.FieldLogger

	players []*Player
	state   GameState
}

// NewGame returns a new game waiting for players
func NewGame(logger logrus.FieldLogger, g rng.Generator, opts Options) (*Game, error) {
	if err := ValidateCapacity(opts.Capacity); err != nil {
		return nil, err
	}

	if opts.DealAttempts <= 0 {
		opts.DealAttempts = 1
	}

	return &Game{
		options: opts,
		rng:     g,
		logger:  logger,
		players: make([]*Player, 0, opts.Capacity),
		state: GameState{
			Phase:              PhaseWaiting,
			CurrentTrick:       Trick{},
			TrickNumber:        1,
			RoundNumber:        0,
			TrickHistory:       []*ResolvedTrick{},
			CurrentPlayerIndex: 0,
		},
	}, nil
}

// ValidateCapacity returns a ValidationError unless capacity is 3 or 4
func ValidateCapacity(capacity int) error {
	if capacity != 3 && capacity != 4 {
		return ValidationError{Field: "numPlayers", Reason: "players must be 3 or 4"}
	}

	return nil
}

// Capacity returns the number of seats
func (g *Game) Capacity() int {
	return g.options.Capacity
}

// State returns a copy of the game state
func (g *Game) State() GameState {
	s := g.state
	s.CurrentTrick = g.state.CurrentTrick.Clone()
	s.TrickHistory = append([]*ResolvedTrick{}, g.state.TrickHistory...)
	return s
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Seats returns every seat in seating order, including seats vacated this round
func (g *Game) Seats() []*Player {
	return append([]*Player{}, g.players...)
}

// Players returns the seated players who have not left
func (g *Game) Players() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if !p.vacant {
			players = append(players, p)
		}
	}

	return players
}

// Player returns the seat index and the player with the ID
func (g *Game) Player(id string) (int, *Player, error) {
	for i, p := range g.players {
		if p.ID == id && !p.vacant {
			return i, p, nil
		}
	}

	return -1, nil, ErrPlayerNotFound
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if i := g.state.CurrentPlayerIndex; i >= 0 && i < len(g.players) {
		return g.players[i]
	}

	return nil
}

func (g *Game) transition(next Phase) {
	if !g.state.Phase.CanTransition(next) {
		panic(fmt.Sprintf("invalid phase transition: %s -> %s", g.state.Phase, next))
	}

	g.logger.WithFields(logrus.Fields{
		"from": g.state.Phase.String(),
		"to":   next.String(),
	}).Debug("phase transition")
	g.state.Phase = next
}

// AddPlayer seats a new player
func (g *Game) AddPlayer(id, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ValidationError{Field: "playerName", Reason: "player name is required"}
	}

	if len(g.players) >= g.options.Capacity {
		return nil, ErrRoomFull
	}

	for _, p := range g.players {
		if p.Name == name {
			return nil, ErrNameTaken
		}
	}

	player := NewPlayer(id, name)
	g.players = append(g.players, player)
	return player, nil
}

// Departure describes the effects of a player leaving
type Departure struct {
	Player *Player
	// Vacated is true if the player left mid-round and their seat is held until scoring
	Vacated bool
	// BiddingComplete is true if the departure left every remaining bid in
	BiddingComplete bool
	// TurnAdvanced is true if it was the player's turn and the turn moved on
	TurnAdvanced bool
	// TrickComplete is true if every remaining seat has played to the current trick
	TrickComplete bool
}

// RemovePlayer removes a player
// Mid-round the seat is vacated rather than removed so seat indices stay stable
func (g *Game) RemovePlayer(id string) (*Departure, error) {
	index, player, err := g.Player(id)
	if err != nil {
		return nil, err
	}

	dep := &Departure{Player: player}

	switch g.state.Phase {
	case PhaseWaiting, PhaseScoring:
		g.players = append(g.players[:index], g.players[index+1:]...)
		return dep, nil
	}

	wasComplete := g.trickComplete()
	player.vacate()
	dep.Vacated = true

	if len(g.Players()) == 0 {
		return dep, nil
	}

	switch g.state.Phase {
	case PhaseBidding:
		dep.BiddingComplete = g.allBidsIn()
	case PhasePlaying:
		if wasComplete {
			break
		}

		if g.trickComplete() {
			dep.TrickComplete = true
		} else if g.state.CurrentPlayerIndex == index {
			g.advanceTurn()
			dep.TurnAdvanced = true
		}
	}

	return dep, nil
}

// SetReady marks the player as ready
// Returns true if every seat is taken and every player is ready
func (g *Game) SetReady(id string) (bool, error) {
	if !g.state.Phase.Allows("ready") {
		return false, ErrWrongPhase{Phase: g.state.Phase, Action: "ready up"}
	}

	_, player, err := g.Player(id)
	if err != nil {
		return false, err
	}

	player.ready = true
	return g.AllReady(), nil
}

// AllReady returns true if every seat is taken and every player is ready
func (g *Game) AllReady() bool {
	if len(g.players) != g.options.Capacity {
		return false
	}

	for _, p := range g.players {
		if !p.ready || p.vacant {
			return false
		}
	}

	return true
}

// StartRound deals a new round and opens bidding
func (g *Game) StartRound() (*Deal, error) {
	if g.state.Phase != PhaseWaiting && g.state.Phase != PhaseScoring {
		return nil, ErrWrongPhase{Phase: g.state.Phase, Action: "start a round"}
	}

	if len(g.players) != g.options.Capacity {
		return nil, ErrNotEnoughPlayers
	}

	deal, err := NewDeal(g.rng, g.options.Capacity, g.options.DealAttempts)
	if err != nil {
		for _, p := range g.players {
			p.ready = false
		}

		return nil, err
	}

	for i, p := range g.players {
		p.newRound(deal.Hands[i])
	}

	g.transition(PhaseBidding)
	g.state.RoundNumber++
	g.state.TrumpSuit = deal.TrumpSuit
	g.state.TrickNumber = 1
	g.state.CurrentTrick = Trick{}
	g.state.TrickHistory = []*ResolvedTrick{}
	g.state.LeadSuit = ""

	g.logger.WithFields(logrus.Fields{
		"round":    g.state.RoundNumber,
		"trump":    deal.TrumpSuit,
		"attempts": deal.Attempts,
	}).Info("round started")

	return deal, nil
}

// SubmitBid records a bid, replacing any earlier bid from the same player
// Returns true once every player has bid
func (g *Game) SubmitBid(id string, bid int) (bool, error) {
	if !g.state.Phase.Allows("bid") {
		return false, ErrWrongPhase{Phase: g.state.Phase, Action: "bid"}
	}

	_, player, err := g.Player(id)
	if err != nil {
		return false, err
	}

	if bid < 0 || bid > MaxBid {
		return false, ValidationError{Field: "bid", Reason: fmt.Sprintf("bid must be between 0 and %d", MaxBid)}
	}

	player.setBid(bid)
	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"bid":    bid,
	}).Debug("bid submitted")

	return g.allBidsIn(), nil
}

func (g *Game) allBidsIn() bool {
	for _, p := range g.players {
		if !p.hasBid {
			return false
		}
	}

	return true
}

// AutoBid assigns a random bid to every player who has not bid
// Returns the players that received a bid
func (g *Game) AutoBid() []*Player {
	filled := make([]*Player, 0)
	if g.state.Phase != PhaseBidding {
		return filled
	}

	for _, p := range g.players {
		if !p.hasBid {
			p.setBid(rng.Between(g.rng, g.options.AutoBidMin, g.options.AutoBidMax))
			filled = append(filled, p)
		}
	}

	return filled
}

// StartPlaying closes bidding and picks a random player to lead the first trick
func (g *Game) StartPlaying() (int, error) {
	if g.state.Phase != PhaseBidding {
		return 0, ErrWrongPhase{Phase: g.state.Phase, Action: "start playing"}
	}

	active := make([]int, 0, len(g.players))
	for i, p := range g.players {
		if !p.vacant {
			active = append(active, i)
		}
	}

	if len(active) == 0 {
		return 0, ErrNotEnoughPlayers
	}

	g.transition(PhasePlaying)
	g.state.CurrentPlayerIndex = active[g.rng.Intn(len(active))]
	return g.state.CurrentPlayerIndex, nil
}

// PlayResult is the outcome of a card being played
type PlayResult struct {
	Player      *Player
	PlayerIndex int
	Card        *deck.Card
	Trick       Trick
	AutoPlayed  bool
	// Skipped is true if the seat could not play and the turn was passed on
	Skipped bool
	// TrickComplete is true if the trick is waiting to be resolved
	TrickComplete bool
	// NextPlayerIndex is the next seat to play, only set if the trick is not complete
	NextPlayerIndex int
	LeadSuit        deck.Suit
}

// LegalCards returns the cards the current player may play
func (g *Game) LegalCards() deck.Hand {
	player := g.CurrentPlayer()
	if player == nil {
		return deck.Hand{}
	}

	return LegalCards(player.hand, g.state.CurrentTrick, g.state.LeadSuit, g.state.TrumpSuit)
}

// PlayCard plays a card for the player
func (g *Game) PlayCard(id string, card *deck.Card) (*PlayResult, error) {
	if !g.state.Phase.Allows("play") {
		return nil, ErrWrongPhase{Phase: g.state.Phase, Action: "play a card"}
	}

	index, player, err := g.Player(id)
	if err != nil {
		return nil, err
	}

	if g.trickComplete() {
		return nil, ErrTrickComplete
	}

	if index != g.state.CurrentPlayerIndex {
		return nil, ErrNotYourTurn
	}

	if card == nil {
		return nil, ValidationError{Field: "card", Reason: "a card is required"}
	}

	card, err = g.normalizeCard(card)
	if err != nil {
		return nil, err
	}

	if !player.hand.HasCard(card) {
		return nil, ErrCardNotInHand
	}

	if !IsLegal(card, player.hand, g.state.CurrentTrick, g.state.LeadSuit, g.state.TrumpSuit) {
		return nil, ErrIllegalCard
	}

	return g.commitPlay(index, player, card, false), nil
}

// normalizeCard validates a client supplied card against the deck in use
func (g *Game) normalizeCard(card *deck.Card) (*deck.Card, error) {
	c, err := deck.NewCard(card.Suit, card.Rank)
	if err != nil {
		return nil, ValidationError{Field: "card", Reason: err.Error()}
	}

	for _, suit := range deck.Suits(g.options.Capacity) {
		if suit == c.Suit {
			return c, nil
		}
	}

	return nil, ValidationError{Field: "card", Reason: deck.ErrUnknownSuit.Error()}
}

// AutoPlay plays a random legal card for the current player
// A seat that cannot play (vacated or empty handed) is skipped
func (g *Game) AutoPlay() (*PlayResult, error) {
	if !g.state.Phase.Allows("play") {
		return nil, ErrWrongPhase{Phase: g.state.Phase, Action: "play a card"}
	}

	if g.trickComplete() {
		return nil, ErrTrickComplete
	}

	index := g.state.CurrentPlayerIndex
	player := g.CurrentPlayer()
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	legal := g.LegalCards()
	if player.vacant || len(player.hand) == 0 || len(legal) == 0 {
		g.logger.WithField("seat", index).Warn("seat cannot play, skipping turn")
		res := &PlayResult{
			Player:      player,
			PlayerIndex: index,
			Skipped:     true,
			LeadSuit:    g.state.LeadSuit,
		}

		g.advanceTurn()
		res.NextPlayerIndex = g.state.CurrentPlayerIndex
		res.Trick = g.state.CurrentTrick.Clone()
		return res, nil
	}

	card := legal[g.rng.Intn(len(legal))]
	return g.commitPlay(index, player, card, true), nil
}

// commitPlay applies a validated play
func (g *Game) commitPlay(index int, player *Player, card *deck.Card, auto bool) *PlayResult {
	if !player.hand.Discard(card) {
		// should not happen, the card was validated against the hand
		panic(fmt.Sprintf("card %s not in hand of seat %d", card, index))
	}

	if len(g.state.CurrentTrick) == 0 {
		g.state.LeadSuit = card.Suit
	}

	g.state.CurrentTrick = append(g.state.CurrentTrick, &Play{
		PlayerIndex: index,
		Card:        card,
	})

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
		"auto":   auto,
	}).Debug("card played")

	res := &PlayResult{
		Player:      player,
		PlayerIndex: index,
		Card:        card,
		Trick:       g.state.CurrentTrick.Clone(),
		AutoPlayed:  auto,
		LeadSuit:    g.state.LeadSuit,
	}

	if g.trickComplete() {
		res.TrickComplete = true
		return res
	}

	g.advanceTurn()
	res.NextPlayerIndex = g.state.CurrentPlayerIndex
	return res
}

// trickComplete returns true if every seat still at the table has played
func (g *Game) trickComplete() bool {
	if g.state.Phase != PhasePlaying {
		return false
	}

	for i, p := range g.players {
		if !p.vacant && !g.state.CurrentTrick.hasPlayed(i) {
			return false
		}
	}

	return len(g.state.CurrentTrick) > 0
}

// advanceTurn moves the turn to the next seat that still has to play this trick
func (g *Game) advanceTurn() {
	g.state.CurrentPlayerIndex = g.nextSeat(g.state.CurrentPlayerIndex)
}

// nextSeat returns the first seat after from that is occupied and has not played
func (g *Game) nextSeat(from int) int {
	n := len(g.players)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if !g.players[i].vacant && !g.state.CurrentTrick.hasPlayed(i) {
			return i
		}
	}

	return from
}

// TrickResult is the outcome of a resolved trick
type TrickResult struct {
	Winner       *Player
	WinnerIndex  int
	WinningCard  *deck.Card
	TrickHistory []*ResolvedTrick
	// RoundOver is true after the last trick of the round
	RoundOver bool
	// NextTrickNumber and NextPlayerIndex describe the next trick when the round continues
	NextTrickNumber int
	NextPlayerIndex int
}

// ResolveTrick awards the current trick to its winner
func (g *Game) ResolveTrick() (*TrickResult, error) {
	if g.state.Phase != PhasePlaying {
		return nil, ErrWrongPhase{Phase: g.state.Phase, Action: "resolve a trick"}
	}

	if !g.trickComplete() {
		return nil, ErrTrickNotComplete
	}

	play := Winner(g.state.CurrentTrick, g.state.LeadSuit, g.state.TrumpSuit)
	if play == nil {
		// the lead card is always of the lead suit
		panic("trick has no winner")
	}

	winner := g.players[play.PlayerIndex]
	winner.tricksWon++

	g.state.TrickHistory = append(g.state.TrickHistory, &ResolvedTrick{
		TrickNumber: g.state.TrickNumber,
		Cards:       g.state.CurrentTrick.Clone(),
		WinnerIndex: play.PlayerIndex,
	})

	g.logger.WithFields(logrus.Fields{
		"trick":  g.state.TrickNumber,
		"winner": winner.Name,
		"card":   play.Card.String(),
	}).Debug("trick won")

	res := &TrickResult{
		Winner:       winner,
		WinnerIndex:  play.PlayerIndex,
		WinningCard:  play.Card,
		TrickHistory: append([]*ResolvedTrick{}, g.state.TrickHistory...),
	}

	if g.state.TrickNumber >= TricksPerRound {
		res.RoundOver = true
		return res, nil
	}

	g.state.TrickNumber++
	g.state.CurrentTrick = Trick{}
	g.state.LeadSuit = ""
	g.state.CurrentPlayerIndex = play.PlayerIndex
	if winner.vacant {
		g.advanceTurn()
	}

	res.NextTrickNumber = g.state.TrickNumber
	res.NextPlayerIndex = g.state.CurrentPlayerIndex
	return res, nil
}

// ScoreLine is a player's result for a round
type ScoreLine struct {
	Name       string `json:"name"`
	Bid        int    `json:"bid"`
	Won        int    `json:"won"`
	Score      int    `json:"score"`
	TotalScore int    `json:"totalScore"`
}

// ScoreRound scores the round and releases vacated seats
func (g *Game) ScoreRound() ([]*ScoreLine, error) {
	if g.state.Phase != PhasePlaying {
		return nil, ErrWrongPhase{Phase: g.state.Phase, Action: "score the round"}
	}

	if len(g.state.TrickHistory) < TricksPerRound {
		return nil, ErrRoundNotOver
	}

	lines := make([]*ScoreLine, len(g.players))
	for i, p := range g.players {
		p.score = Score(p.bid, p.tricksWon)
		p.totalScore += p.score
		lines[i] = &ScoreLine{
			Name:       p.Name,
			Bid:        p.bid,
			Won:        p.tricksWon,
			Score:      p.score,
			TotalScore: p.totalScore,
		}
	}

	g.transition(PhaseScoring)
	g.players = g.Players()

	g.logger.WithField("round", g.state.RoundNumber).Info("round complete")
	return lines, nil
}
