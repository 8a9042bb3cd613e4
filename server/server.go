package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/strahius/scopa"
	"github.com/strahius/scopa/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewRoomReq struct {
	Name string `json:"name"`
}

type JoinRoomReq struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
}

type RoomRes struct {
	RoomID   string   `json:"room_id"`
	PlayerID string   `json:"player_id"`
	Username string   `json:"username"`
	Players  []string `json:"players"`
}

type GetRoomRes struct {
	RoomID  string   `json:"room_id"`
	Players []string `json:"players"`
	Started bool     `json:"started"`
}

// InboundMessage is what a room member sends over their websocket
type InboundMessage struct {
	Event  protocol.ClientEvent `json:"event"`
	Action *scopa.PlayerAction  `json:"action,omitempty"`
}

// ErrorMessage is sent back to the acting client only
type ErrorMessage struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// GameServer exposes the room and game surface over HTTP and websockets
type GameServer struct {
	store  scopa.RoomStore
	engine *scopa.Engine
	hub    *Hub
	rooms  *roomRegistry
	http.Server
}

// NewServer creates a new GameServer around a room store
func NewServer(store scopa.RoomStore) *GameServer {
	s := new(GameServer)

	s.store = store
	s.hub = NewHub()
	s.engine = scopa.NewEngine(store, s.hub)
	s.rooms = newRoomRegistry()

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(enableCors(s.HandleNewRoom)))
	router.Handle("/join", http.HandlerFunc(enableCors(s.HandleJoinRoom)))
	router.Handle("/room/", http.HandlerFunc(enableCors(s.HandleFindRoom)))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.Handler = router

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// NewRoomCode generates a readable room code
func NewRoomCode() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func enableCors(handler http.HandlerFunc) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		handler.ServeHTTP(w, r)
	}
}

// HandleNewRoom handles a request to create a new room
func (g *GameServer) HandleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	roomID := NewRoomCode()
	if err := g.store.CreateRoom(r.Context(), roomID); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	member, err := g.rooms.AddMember(roomID, data.Name)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RoomRes{
		RoomID:   roomID,
		PlayerID: member.ID,
		Username: member.Username,
		Players:  g.rooms.Usernames(roomID),
	})
}

// HandleJoinRoom handles a request to join an existing room
func (g *GameServer) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	room, err := g.store.GetRoom(r.Context(), data.RoomID)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if room == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownRoomIDMsg(data.RoomID)))
		return
	}

	member, err := g.rooms.AddMember(data.RoomID, data.Name)
	if err != nil {
		if errors.Is(err, errRoomFull) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(err.Error()))
			return
		}
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, RoomRes{
		RoomID:   data.RoomID,
		PlayerID: member.ID,
		Username: member.Username,
		Players:  g.rooms.Usernames(data.RoomID),
	})
}

// HandleFindRoom handles a request to look up a room by its code
func (g *GameServer) HandleFindRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	roomID := strings.Replace(r.URL.Path, "/room/", "", 1)
	if roomID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing room ID"))
		return
	}

	room, err := g.store.GetRoom(r.Context(), roomID)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if room == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownRoomIDMsg(roomID)))
		return
	}

	writeJSON(w, http.StatusOK, GetRoomRes{
		RoomID:  roomID,
		Players: g.rooms.Usernames(roomID),
		Started: len(room.States) > 0,
	})
}

// HandleWS upgrades a room member's connection and pumps their actions
// into the engine
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	playerID := r.URL.Query().Get("player_id")

	member, ok := g.rooms.FindMember(roomID, playerID)
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("unknown room or player"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err.Error())
		return
	}

	g.hub.Register(roomID, conn)
	defer func() {
		g.hub.Unregister(roomID, conn)
		conn.Close()
	}()

	// Second member connected: deal the opening state. StartGame is
	// idempotent, so concurrent upgrades cannot deal twice.
	usernames := g.rooms.Usernames(roomID)
	if len(usernames) == roomCapacity {
		if _, err := g.engine.StartGame(r.Context(), roomID, usernames); err != nil {
			log.Println(err.Error())
			return
		}
	}

	for {
		var msg InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket error for %s in %s: %s", member.Username, roomID, err.Error())
			}
			return
		}

		if err := g.dispatch(r, roomID, msg); err != nil {
			// engine errors go back to the acting client only
			if err := conn.WriteJSON(ErrorMessage{Event: "error", Message: err.Error()}); err != nil {
				return
			}
		}
	}
}

func (g *GameServer) dispatch(r *http.Request, roomID string, msg InboundMessage) error {
	switch msg.Event {
	case protocol.PlayerAction:
		if msg.Action == nil {
			return errors.New("player-action message has no action")
		}
		return g.engine.UpdateGameState(r.Context(), roomID, *msg.Action)
	case protocol.RestartRound:
		return g.engine.RestartGameState(r.Context(), roomID)
	default:
		return fmt.Errorf("unknown event %q", msg.Event)
	}
}

func unknownRoomIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown room ID '%s'", unknownID)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Printf("could not parse request body: %s", err.Error())
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}
