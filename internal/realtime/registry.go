package realtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry groups live connections into rooms keyed by user identity and
// fans events out to them. Rooms are created lazily on first Join and vanish
// when the last connection leaves; they carry no state of their own.
//
// The mutex guards only the room maps. Emit snapshots the member set and
// queues frames outside the lock, so emits to other rooms never contend with
// a fan-out in progress.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[uuid.UUID]map[*Client]struct{}
	members map[*Client]uuid.UUID

	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		rooms:   make(map[uuid.UUID]map[*Client]struct{}),
		members: make(map[*Client]uuid.UUID),
		logger:  logger,
	}
}

// Join adds the client to the room keyed by userID. A client belongs to at
// most one room; re-joining moves it.
func (r *Registry) Join(c *Client, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.members[c]; ok {
		if prev == userID {
			return
		}
		r.detachLocked(c, prev)
	}

	room, ok := r.rooms[userID]
	if !ok {
		room = make(map[*Client]struct{})
		r.rooms[userID] = room
	}
	room[c] = struct{}{}
	r.members[c] = userID
}

// Leave removes the client from its room. Idempotent: leaving twice, or
// leaving without ever joining, is a no-op.
func (r *Registry) Leave(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.members[c]
	if !ok {
		return
	}
	r.detachLocked(c, userID)
}

func (r *Registry) detachLocked(c *Client, userID uuid.UUID) {
	delete(r.members, c)
	if room, ok := r.rooms[userID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(r.rooms, userID)
		}
	}
}

// Emit queues the event on every connection in the user's room. An empty
// room is a silent no-op; the SMS side channel covers offline owners.
// Delivery is best-effort per connection: a full send buffer drops the frame
// for that connection only.
func (r *Registry) Emit(userID uuid.UUID, event string, payload any) {
	r.mu.RLock()
	room := r.rooms[userID]
	clients := make([]*Client, 0, len(room))
	for c := range room {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	msg := Message{Event: event, Data: payload}
	for _, c := range clients {
		if !c.TrySend(msg) {
			r.logger.Warn("dropping realtime event, send buffer full",
				"event", event, "user_id", userID.String())
		}
	}
}

// RoomSize reports how many connections the user currently has.
func (r *Registry) RoomSize(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[userID])
}
