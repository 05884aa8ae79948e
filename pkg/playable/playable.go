package playable

import (
	"math"

	"powersuit-server/pkg/deck"
)

// Response is the envelope for every message sent to a client
// Key names the event, Data carries its payload
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// Event returns a response for the named event
func Event(key string, data interface{}) *Response {
	return &Response{
		Key:  key,
		Data: data,
	}
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Card           *deck.Card     `json:"card"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// Numbers with a fractional part are not integers and return false
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		switch v := a[key].(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		}

		return 0, false
	}

	if floatVal != math.Trunc(floatVal) || math.IsInf(floatVal, 0) {
		return 0, false
	}

	return int(floatVal), true
}
