package mux

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"powersuit-server/pkg/playable/powersuit"
)

type createRoomRequest struct {
	HostPassword string `json:"hostPassword"`
	// NumPlayers is accepted as a number or a numeric string
	NumPlayers interface{} `json:"numPlayers"`
}

type createRoomResponse struct {
	RoomID string `json:"roomId"`
}

// capacity returns the requested number of players
func (c createRoomRequest) capacity() (int, error) {
	errInvalid := powersuit.ValidationError{Field: "numPlayers", Reason: "players must be 3 or 4"}

	switch val := c.NumPlayers.(type) {
	case float64:
		if val != float64(int(val)) {
			return 0, errInvalid
		}

		return int(val), nil
	case string:
		switch val {
		case "3":
			return 3, nil
		case "4":
			return 4, nil
		}
	}

	return 0, errInvalid
}

func (m *Mux) postCreateRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createRoomRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		capacity, err := payload.capacity()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rm, err := m.registry.Create(payload.HostPassword, capacity)
		if err != nil {
			var ve powersuit.ValidationError
			if errors.As(err, &ve) {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"room":       rm.Code,
			"remoteAddr": remoteAddr(r),
		}).Debug("create room request")

		writeJSON(w, http.StatusOK, createRoomResponse{RoomID: rm.Code})
	}
}
