package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	utils "github.com/strahius/scopa/internal"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateRoomRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newJoinRoomRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

func newGetRoomRequest(roomID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/room/"+roomID, nil)
	return request
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()

	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
