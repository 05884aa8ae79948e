package room

import (
	"errors"

	"powersuit-server/pkg/deck"
	"powersuit-server/pkg/playable"
	"powersuit-server/pkg/playable/powersuit"
)

// event keys sent to clients
const (
	eventJoinedRoom        = "joined-room"
	eventPlayerJoined      = "player-joined"
	eventPlayerReadyUpdate = "player-ready-update"
	eventRoundStarted      = "round-started"
	eventBiddingComplete   = "bidding-complete"
	eventCardPlayed        = "card-played"
	eventNextTurn          = "next-turn"
	eventTrickComplete     = "trick-complete"
	eventNextTrick         = "next-trick"
	eventRoundComplete     = "round-complete"
	eventPlayerLeft        = "player-left"
	eventError             = "error"
)

// ErrRoomNotFound is returned when no live room has the code
var ErrRoomNotFound = errors.New("room not found")

// ErrNotInRoom is returned when a game action arrives before the client joined a room
var ErrNotInRoom = errors.New("join a room first")

// ErrAlreadyInRoom is returned when a client tries to join a second room
var ErrAlreadyInRoom = errors.New("already in a room")

type rosterEntry struct {
	Name       string `json:"name"`
	IsReady    bool   `json:"isReady"`
	TotalScore int    `json:"totalScore"`
}

type joinedRoom struct {
	RoomID     string         `json:"roomId"`
	PlayerName string         `json:"playerName"`
	IsHost     bool           `json:"isHost"`
	Players    []*rosterEntry `json:"players"`
	MaxPlayers int            `json:"maxPlayers"`
}

type rosterUpdate struct {
	PlayerName string         `json:"playerName,omitempty"`
	Players    []*rosterEntry `json:"players"`
}

type roundStarted struct {
	Hand        deck.Hand `json:"hand"`
	TrumpSuit   deck.Suit `json:"trumpSuit"`
	RoundNumber int       `json:"roundNumber"`
	PlayerIndex int       `json:"playerIndex"`
}

type bidEntry struct {
	Name string `json:"name"`
	Bid  *int   `json:"bid"`
	// Left is set for a seat whose player left during bidding
	Left bool `json:"left,omitempty"`
}

type biddingComplete struct {
	Bids           []*bidEntry `json:"bids"`
	StartingPlayer string      `json:"startingPlayer"`
}

type cardPlayed struct {
	PlayerName   string          `json:"playerName"`
	PlayerIndex  int             `json:"playerIndex"`
	Card         *deck.Card      `json:"card"`
	CurrentTrick powersuit.Trick `json:"currentTrick"`
	AutoPlayed   bool            `json:"autoPlayed,omitempty"`
}

type nextTurn struct {
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	CurrentPlayerName  string     `json:"currentPlayerName"`
	LeadSuit           *deck.Suit `json:"leadSuit"`
}

type trickComplete struct {
	WinnerName   string                     `json:"winnerName"`
	WinnerIndex  int                        `json:"winnerIndex"`
	WinningCard  *deck.Card                 `json:"winningCard"`
	TrickHistory []*powersuit.ResolvedTrick `json:"trickHistory"`
}

type nextTrick struct {
	TrickNumber        int    `json:"trickNumber"`
	CurrentPlayerIndex int    `json:"currentPlayerIndex"`
	CurrentPlayerName  string `json:"currentPlayerName"`
}

type roundComplete struct {
	Scores []*powersuit.ScoreLine `json:"scores"`
}

type errorData struct {
	Message string              `json:"message"`
	Kind    powersuit.ErrorKind `json:"kind"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	kind := powersuit.Kind(err)
	if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrNotInRoom) || errors.Is(err, ErrAlreadyInRoom) {
		kind = powersuit.KindValidation
	}

	return &playable.Response{
		Key:   eventError,
		Value: err.Error(),
		Data: &errorData{
			Message: err.Error(),
			Kind:    kind,
		},
		Context: ctx,
	}
}

func roster(players []*powersuit.Player) []*rosterEntry {
	entries := make([]*rosterEntry, len(players))
	for i, p := range players {
		entries[i] = &rosterEntry{
			Name:       p.Name,
			IsReady:    p.IsReady(),
			TotalScore: p.TotalScore(),
		}
	}

	return entries
}

func bids(players []*powersuit.Player) []*bidEntry {
	entries := make([]*bidEntry, len(players))
	for i, p := range players {
		entry := &bidEntry{Name: p.Name, Left: p.IsVacant()}
		if bid, ok := p.Bid(); ok {
			entry.Bid = &bid
		}

		entries[i] = entry
	}

	return entries
}

func leadSuit(s deck.Suit) *deck.Suit {
	if s == "" {
		return nil
	}

	return &s
}
