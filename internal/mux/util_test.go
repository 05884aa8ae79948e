package mux

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_remoteAddr(t *testing.T) {
	r := &http.Request{RemoteAddr: "127.0.0.1:5000"}
	assert.Equal(t, "127.0.0.1", remoteAddr(r))

	r.RemoteAddr = "[::1]:5000"
	assert.Equal(t, "[::1]", remoteAddr(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", remoteAddr(r))
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad input"))

	var resp errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorResponse{Message: "bad input", StatusCode: 400}, resp)

	// server errors never leak the underlying message
	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret"))
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
