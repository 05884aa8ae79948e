package room

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"powersuit-server/pkg/playable"
	"powersuit-server/pkg/playable/powersuit"
)

func TestRegistry_Create(t *testing.T) {
	a := assert.New(t)

	reg, _ := newTestRegistry(1)

	r, err := reg.Create("12a4", 3)
	a.Nil(r)
	a.Equal(powersuit.ValidationError{Field: "hostPassword", Reason: "password must be exactly 4 digits"}, err)

	_, err = reg.Create("12345", 3)
	a.Error(err)

	_, err = reg.Create(testPin, 5)
	a.Equal(powersuit.ValidationError{Field: "numPlayers", Reason: "players must be 3 or 4"}, err)
	a.Equal(0, reg.Len())

	r, err = reg.Create(testPin, 4)
	a.NoError(err)
	a.Regexp(regexp.MustCompile(`^[0-9A-Z]{6}$`), r.Code)
	a.Equal(4, r.Capacity())
	a.NotEqual(testPin, r.pinHash)
	a.Equal(1, reg.Len())

	found, err := reg.Get(r.Code)
	a.NoError(err)
	a.Equal(r, found)

	r2, err := reg.Create(testPin, 3)
	a.NoError(err)
	a.NotEqual(r.Code, r2.Code)
	a.Equal(2, reg.Len())

	reg.Delete(r.Code)
	reg.Delete(r.Code)
	a.Equal(1, reg.Len())

	_, err = reg.Get(r.Code)
	a.Equal(ErrRoomNotFound, err)
}

func TestRegistry_ReceivedMessage(t *testing.T) {
	a := assert.New(t)

	reg, _ := newTestRegistry(1)
	c := NewClient(nil)

	reg.ReceivedMessage(c, joinMessage("NOPE00", "alice", testPin))
	msgs := drain(c)
	if a.Len(msgs, 1) {
		a.Equal(eventError, msgs[0].Key)
		a.Equal(ErrRoomNotFound.Error(), msgs[0].Value)
	}

	reg.ReceivedMessage(c, &playable.PayloadIn{Action: "player-ready", Context: "ctx"})
	msgs = drain(c)
	if a.Len(msgs, 1) {
		a.Equal(ErrNotInRoom.Error(), msgs[0].Value)
		a.Equal("ctx", msgs[0].Context)
		a.Equal(powersuit.KindValidation, msgs[0].Data.(*errorData).Kind)
	}
}
