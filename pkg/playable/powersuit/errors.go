package powersuit

import (
	"errors"
	"fmt"
)

// ErrRoomFull is returned when every seat at the table is taken
var ErrRoomFull = errors.New("room is full")

// ErrNameTaken is returned when a player with the same name is already seated
var ErrNameTaken = errors.New("could not join, name may be taken")

// ErrBadHostPin is returned when the first player to join supplies the wrong PIN
var ErrBadHostPin = errors.New("invalid host password")

// ErrNotYourTurn is returned when a player plays out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrIllegalCard is returned when a card is not allowed by the follow/overtake/trump rules
var ErrIllegalCard = errors.New("that card cannot be played, check the rules")

// ErrCardNotInHand is returned when a player plays a card they do not hold
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrTrickComplete is returned when a card arrives while a full trick waits to be resolved
var ErrTrickComplete = errors.New("the trick is complete")

// ErrTrickNotComplete is returned when a trick is resolved before every seat has played
var ErrTrickNotComplete = errors.New("the trick is not complete")

// ErrRoundNotOver is returned when the round is scored before the last trick
var ErrRoundNotOver = errors.New("the round is not over")

// ErrNoValidDeal is returned when no acceptable deal was found within the attempt limit
var ErrNoValidDeal = errors.New("could not find a valid deal")

// ErrNotEnoughPlayers is returned when a round is started before every seat is taken
var ErrNotEnoughPlayers = errors.New("waiting for more players")

// ErrPlayerNotFound is returned when an intent arrives for a player who is not seated
var ErrPlayerNotFound = errors.New("player not found in room")

// ErrWrongPhase is returned when an action is not valid in the current phase
type ErrWrongPhase struct {
	Phase  Phase
	Action string
}

func (e ErrWrongPhase) Error() string {
	return fmt.Sprintf("cannot %s during the %s phase", e.Action, e.Phase)
}

// ValidationError is a malformed input (pin, capacity, bid, card)
type ValidationError struct {
	Field  string
	Reason string
}

func (v ValidationError) Error() string {
	return v.Reason
}

// ErrorKind classifies an error reported to a client
type ErrorKind string

// error kinds
const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindTurn          ErrorKind = "turn"
	KindPhase         ErrorKind = "phase"
	KindInternal      ErrorKind = "internal"
)

// Kind returns the classification of err
func Kind(err error) ErrorKind {
	var ve ValidationError
	var pe ErrWrongPhase

	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &pe):
		return KindPhase
	case errors.Is(err, ErrRoomFull), errors.Is(err, ErrNameTaken), errors.Is(err, ErrBadHostPin):
		return KindAuthorization
	case errors.Is(err, ErrNotYourTurn), errors.Is(err, ErrIllegalCard),
		errors.Is(err, ErrCardNotInHand), errors.Is(err, ErrTrickComplete):
		return KindTurn
	}

	return KindInternal
}
