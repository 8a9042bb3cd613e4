package server

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	uuid "github.com/satori/go.uuid"
)

// scopa is a two-player game
const roomCapacity = 2

var errRoomFull = errors.New("room is full")

// Member is a player's transport identity within a room. The engine
// only ever sees usernames; player IDs stay at the session boundary.
type Member struct {
	ID       string
	Username string
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

var usernameAdjectives = []string{"Swift", "Lucky", "Clever", "Bold", "Quiet", "Fierce", "Merry", "Sly"}
var usernameAnimals = []string{"Fox", "Owl", "Wolf", "Hare", "Crow", "Lynx", "Boar", "Stag"}

// NewUsername generates a readable username for players who don't
// bring their own
func NewUsername() string {
	return fmt.Sprintf("%s-%s-%d",
		usernameAdjectives[rand.Intn(len(usernameAdjectives))],
		usernameAnimals[rand.Intn(len(usernameAnimals))],
		rand.Intn(100),
	)
}

// roomRegistry tracks who belongs to which room. Membership is a
// transport concern; the room store only holds game states.
type roomRegistry struct {
	mu      sync.Mutex
	members map[string][]Member
}

func newRoomRegistry() *roomRegistry {
	return &roomRegistry{members: map[string][]Member{}}
}

// AddMember adds a player to a room, assigning a username if name is
// empty. Usernames are unique within a room.
func (r *roomRegistry) AddMember(roomID, name string) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members[roomID]) >= roomCapacity {
		return Member{}, errRoomFull
	}

	username := name
	for username == "" || r.taken(roomID, username) {
		username = NewUsername()
	}

	member := Member{ID: NewID(), Username: username}
	r.members[roomID] = append(r.members[roomID], member)
	return member, nil
}

func (r *roomRegistry) taken(roomID, username string) bool {
	for _, m := range r.members[roomID] {
		if m.Username == username {
			return true
		}
	}
	return false
}

// FindMember looks a member up by player ID
func (r *roomRegistry) FindMember(roomID, playerID string) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members[roomID] {
		if m.ID == playerID {
			return m, true
		}
	}
	return Member{}, false
}

// Usernames returns the usernames of a room's members in join order
func (r *roomRegistry) Usernames(roomID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	usernames := make([]string, len(r.members[roomID]))
	for i, m := range r.members[roomID] {
		usernames[i] = m.Username
	}
	return usernames
}
