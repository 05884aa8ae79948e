package room

import (
	"regexp"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
	"powersuit-server/internal/config"
	"powersuit-server/internal/rng"
	"powersuit-server/internal/util"
	"powersuit-server/pkg/playable"
	"powersuit-server/pkg/playable/powersuit"
)

// CodeLength is the length of a room code
const CodeLength = 6

var pinRx = regexp.MustCompile(`^\d{4}$`)

// Registry owns every live room
type Registry struct {
	cfg   config.Game
	clock Clock

	// codes generates room codes, newGenerator returns the randomness for a new room
	codes        rng.Generator
	newGenerator func() rng.Generator

	lock  sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry returns a registry using the wall clock and crypto randomness
func NewRegistry(cfg config.Game) *Registry {
	return &Registry{
		cfg:   cfg,
		clock: RealClock(),
		codes: rng.Crypto{},
		newGenerator: func() rng.Generator {
			return rng.Crypto{}
		},
		rooms: make(map[string]*Room),
	}
}

// Create creates a room with a fresh code
func (reg *Registry) Create(pin string, capacity int) (*Room, error) {
	if !pinRx.MatchString(pin) {
		return nil, powersuit.ValidationError{Field: "hostPassword", Reason: "password must be exactly 4 digits"}
	}

	if err := powersuit.ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	pinHash, err := argon2id.DefaultHashPassword(pin)
	if err != nil {
		return nil, err
	}

	reg.lock.Lock()
	defer reg.lock.Unlock()

	code := util.RandomCode(reg.codes, CodeLength)
	for _, exists := reg.rooms[code]; exists; _, exists = reg.rooms[code] {
		code = util.RandomCode(reg.codes, CodeLength)
	}

	r, err := newRoom(reg, code, pinHash, capacity, reg.newGenerator())
	if err != nil {
		return nil, err
	}

	reg.rooms[code] = r
	logrus.WithFields(logrus.Fields{
		"room":     code,
		"capacity": capacity,
	}).Info("room created")

	return r, nil
}

// Get returns the live room with the code
func (reg *Registry) Get(code string) (*Room, error) {
	reg.lock.RLock()
	defer reg.lock.RUnlock()

	r, ok := reg.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return r, nil
}

// Delete forgets the room
func (reg *Registry) Delete(code string) {
	reg.lock.Lock()
	defer reg.lock.Unlock()

	if _, ok := reg.rooms[code]; !ok {
		return
	}

	delete(reg.rooms, code)
	logrus.WithField("room", code).Info("room deleted")
}

// Len returns the number of live rooms
func (reg *Registry) Len() int {
	reg.lock.RLock()
	defer reg.lock.RUnlock()

	return len(reg.rooms)
}

// ReceivedMessage dispatches a message from a connected client
// join-room is routed to the requested room, everything else to the client's room
func (reg *Registry) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	if msg.Action != "join-room" {
		c.ReceivedMessage(msg)
		return
	}

	code, _ := msg.AdditionalData.GetString("roomId")
	name, _ := msg.AdditionalData.GetString("playerName")
	pin, _ := msg.AdditionalData.GetString("hostPassword")

	r, err := reg.Get(code)
	if err != nil {
		c.SendError(msg.Context, err)
		return
	}

	r.Join(c, name, pin, msg.Context)
}

// ClientDisconnected is called when a client disconnects from the server
func (reg *Registry) ClientDisconnected(c *Client) {
	logrus.WithField("client", c.String()).Debug("client disconnected")
	if r := c.Room(); r != nil {
		r.Disconnect(c)
	}
}
