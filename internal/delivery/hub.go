package delivery

import (
	"context"
	"sync"

	"team-lifecycle-backend/internal/service"
)

// Subscriber abstracts a streaming client.
type Subscriber interface {
	Send([]byte) error
	Close()
}

// Hub fans notifications out to the live connections of each user.
// It implements service.NotificationSink: a notification counts as delivered
// when at least one connection of the addressee accepted it.
type Hub struct {
	clients   map[string]map[Subscriber]struct{}
	register  chan subscription
	unreg     chan subscription
	broadcast chan message
	count     chan countQuery
	done      chan struct{}
	closeOnce sync.Once
}

type message struct {
	userID  string
	payload []byte
	reply   chan int
}

type subscription struct {
	userID string
	client Subscriber
}

type countQuery struct {
	userID string
	reply  chan int
}

var _ service.NotificationSink = (*Hub)(nil)

// NewHub creates an initialized Hub.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[string]map[Subscriber]struct{}),
		register:  make(chan subscription),
		unreg:     make(chan subscription),
		broadcast: make(chan message),
		count:     make(chan countQuery),
		done:      make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			for _, clients := range h.clients {
				for c := range clients {
					c.Close()
				}
			}
			h.clients = nil
			return
		case sub := <-h.register:
			if _, ok := h.clients[sub.userID]; !ok {
				h.clients[sub.userID] = make(map[Subscriber]struct{})
			}
			h.clients[sub.userID][sub.client] = struct{}{}
		case sub := <-h.unreg:
			if clients, ok := h.clients[sub.userID]; ok {
				delete(clients, sub.client)
				if len(clients) == 0 {
					delete(h.clients, sub.userID)
				}
			}
		case q := <-h.count:
			q.reply <- len(h.clients[q.userID])
		case msg := <-h.broadcast:
			sent := 0
			if clients, ok := h.clients[msg.userID]; ok {
				for c := range clients {
					if err := c.Send(msg.payload); err != nil {
						c.Close()
						delete(clients, c)
						continue
					}
					sent++
				}
				if len(clients) == 0 {
					delete(h.clients, msg.userID)
				}
			}
			msg.reply <- sent
		}
	}
}

// Register adds a client to a user's stream.
func (h *Hub) Register(userID string, client Subscriber) {
	select {
	case h.register <- subscription{userID: userID, client: client}:
	case <-h.done:
		client.Close()
	}
}

// Unregister removes a client.
func (h *Hub) Unregister(userID string, client Subscriber) {
	select {
	case h.unreg <- subscription{userID: userID, client: client}:
	case <-h.done:
	}
}

// Connections reports how many live connections a user has.
func (h *Hub) Connections(userID string) int {
	q := countQuery{userID: userID, reply: make(chan int, 1)}
	select {
	case h.count <- q:
		return <-q.reply
	case <-h.done:
		return 0
	}
}

// Send pushes payload to every connection of userID and returns how many accepted it.
func (h *Hub) Send(ctx context.Context, userID string, payload []byte) (int, error) {
	msg := message{userID: userID, payload: payload, reply: make(chan int, 1)}
	select {
	case h.broadcast <- msg:
	case <-h.done:
		return 0, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	// reply is buffered, the run loop never blocks on an abandoned wait
	select {
	case n := <-msg.reply:
		return n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Notify implements service.NotificationSink.
func (h *Hub) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	ref, payload, err := encode(n)
	if err != nil {
		return service.Delivery{}, err
	}
	sent, err := h.Send(ctx, n.UserID, payload)
	if err != nil {
		return service.Delivery{}, err
	}
	if sent == 0 {
		return service.Delivery{}, nil
	}
	return service.Delivery{Delivered: true, Ref: ref}, nil
}

// Close stops the hub and closes every connection.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
