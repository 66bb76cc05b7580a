// Package live fans out "goal changed" notifications to the viewers of a goal.
//
// Events carry no goal state. Subscribers re-read the goal from the database
// when notified, so a viewer that misses intermediate events still converges
// on the current state.
package live

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Reasons for a change of a goal
const (
	ReasonDonation   = "donation"
	ReasonGoal       = "goal_updated"
	ReasonMilestones = "milestones_replaced"
)

// Event notifies subscribers that a goal changed.
type Event struct {
	GoalID   uuid.UUID `json:"goalId"`
	Sequence uint64    `json:"sequence"` // Increases by one with every event for the goal
	Reason   string    `json:"reason"`
	Time     time.Time `json:"time"`
}

// Gauge is the part of a metric gauge the hub reports subscriptions to.
type Gauge interface {
	Inc()
	Dec()
}

type room struct {
	sequence    uint64
	subscribers map[*Subscription]struct{}
}

// Hub manages the subscriptions per goal.
type Hub struct {
	mu     sync.Mutex
	rooms  map[uuid.UUID]*room
	gauge  Gauge
	closed bool
}

// Subscription receives the events of one goal on C.
//
// C has a buffer of one. When an event is published while the previous one
// has not been received yet, the pending event is replaced by the newer one.
type Subscription struct {
	C      <-chan Event
	c      chan Event
	goalID uuid.UUID
	hub    *Hub
	once   sync.Once
}

// NewHub returns an empty Hub. gauge may be nil.
func NewHub(gauge Gauge) *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]*room),
		gauge: gauge,
	}
}

// Subscribe registers a new subscription for the goal.
func (h *Hub) Subscribe(goalID uuid.UUID) *Subscription {
	c := make(chan Event, 1)
	s := &Subscription{
		C:      c,
		c:      c,
		goalID: goalID,
		hub:    h,
	}

	// Counted until the subscription is closed, even if the hub is closed
	if h.gauge != nil {
		h.gauge.Inc()
	}

	h.mu.Lock()
	if h.closed {
		close(c)
		h.mu.Unlock()
		return s
	}

	r, ok := h.rooms[goalID]
	if !ok {
		r = &room{subscribers: make(map[*Subscription]struct{})}
		h.rooms[goalID] = r
	}
	r.subscribers[s] = struct{}{}
	h.mu.Unlock()

	log.Debug().Str("goal", goalID.String()).Msg("live subscription opened")
	return s
}

// Close removes the subscription from the hub. It is safe to call Close
// multiple times.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
}

func (h *Hub) unsubscribe(s *Subscription) {
	h.mu.Lock()
	if r, ok := h.rooms[s.goalID]; ok {
		delete(r.subscribers, s)

		if len(r.subscribers) == 0 {
			delete(h.rooms, s.goalID)
		}
	}
	h.mu.Unlock()

	if h.gauge != nil {
		h.gauge.Dec()
	}

	log.Debug().Str("goal", s.goalID.String()).Msg("live subscription closed")
}

// Publish sends an event for the goal to all of its subscribers and
// returns it. It never blocks.
//
// The sequence is counted while the goal has subscribers. Events for goals
// without subscribers have sequence 0 and leave no state in the hub, a new
// subscriber starts from a snapshot anyway.
//
// Only call Publish after the change has been committed to the database.
func (h *Hub) Publish(goalID uuid.UUID, reason string) Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[goalID]
	if h.closed || !ok {
		return Event{GoalID: goalID, Reason: reason, Time: time.Now().UTC()}
	}

	r.sequence++
	e := Event{
		GoalID:   goalID,
		Sequence: r.sequence,
		Reason:   reason,
		Time:     time.Now().UTC(),
	}

	for s := range r.subscribers {
		s.offer(e)
	}

	return e
}

// Close closes the channels of all subscriptions. Subscriptions opened
// afterwards are closed right away and nothing is published anymore.
//
// Receivers see a closed channel and must end their stream.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for _, r := range h.rooms {
		for s := range r.subscribers {
			close(s.c)
		}
	}
	h.rooms = make(map[uuid.UUID]*room)
}

// Subscribers returns the number of open subscriptions for the goal.
func (h *Hub) Subscribers(goalID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[goalID]
	if !ok {
		return 0
	}

	return len(r.subscribers)
}

// offer delivers e, replacing a pending event if the buffer is full.
//
// It is only called with the hub lock held, so there is exactly one
// sender per subscription at any time.
func (s *Subscription) offer(e Event) {
	select {
	case s.c <- e:
		return
	default:
	}

	// Drop the pending event. The receiver may have taken it in the
	// meantime, in which case the buffer is already free.
	select {
	case <-s.c:
	default:
	}

	s.c <- e
}
