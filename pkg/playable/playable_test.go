package playable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"powersuit-server/pkg/deck"
)

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, "abc", OK("abc").Context)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	_ = json.Unmarshal([]byte(`{"bid":0,"half":2.5,"str":"3","neg":-1}`), &data)

	val, ok := data.GetInt("bid")
	a.True(ok)
	a.Equal(0, val)

	val, ok = data.GetInt("neg")
	a.True(ok)
	a.Equal(-1, val)

	_, ok = data.GetInt("half")
	a.False(ok)

	_, ok = data.GetInt("str")
	a.False(ok)

	_, ok = data.GetInt("missing")
	a.False(ok)

	val, ok = AdditionalData{"bid": 4}.GetInt("bid")
	a.True(ok)
	a.Equal(4, val)
}

func TestAdditionalData_GetString(t *testing.T) {
	a := assert.New(t)

	ad := AdditionalData{"roomId": "ABC123", "ready": true}
	s, ok := ad.GetString("roomId")
	a.True(ok)
	a.Equal("ABC123", s)

	_, ok = ad.GetString("ready")
	a.False(ok)
}

func TestPayloadIn_decode(t *testing.T) {
	a := assert.New(t)

	var msg PayloadIn
	a.NoError(json.Unmarshal([]byte(`{"action":"play-card","card":{"suit":"heart","rank":"K"},"context":"x"}`), &msg))
	a.Equal("play-card", msg.Action)
	a.Equal(deck.Hearts, msg.Card.Suit)
	a.Equal("K", msg.Card.Rank)
	a.Equal("x", msg.Context)
}
