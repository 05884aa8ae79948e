package room

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"powersuit-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID identifies the connection, and the seat once the client joins a room
	ID string

	// send is a channel for sending messages to the client
	send chan interface{}

	// CloseError contains the reason why the connection was closed
	CloseError error

	lock sync.Mutex
	room *Room
	name string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.New().String(),
		send: make(chan interface{}, 256),
		Conn: conn,
	}
}

// Send send a message to the web client
// Returns false if the client's queue is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send queue full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Room returns the room the client has joined, or nil
func (c *Client) Room() *Room {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.room
}

// claimRoom attaches the client to a room unless it is already in one
func (c *Client) claimRoom(r *Room, name string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.room != nil {
		return false
	}

	c.room = r
	c.name = name
	return true
}

// String returns a traceable identifier for the client and room
func (c *Client) String() string {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.room == nil {
		return c.ID
	}

	return fmt.Sprintf("%s:%s", c.name, c.room.Code)
}

// SendError sends an error to the client
func (c *Client) SendError(ctx string, err error) {
	c.Send(newErrorResponse(ctx, err))
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	r := c.Room()
	if r == nil {
		logrus.WithField("msg", msg.Action).Warn("received message, but client has not joined a room")
		c.SendError(msg.Context, ErrNotInRoom)
		return
	}

	r.ReceivedMessage(c, msg)
}
