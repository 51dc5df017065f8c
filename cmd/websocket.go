package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	readLimit     = 1 << 10
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

// listingEvent tells subscribed clients that a collection mirror changed and
// a refetch is worthwhile.
type listingEvent struct {
	Kind  string `json:"kind"`
	Total int    `json:"total"`
}

// ListingHub fans mirror-change events out to every connected client. All
// access to clients happens on the Run goroutine.
type ListingHub struct {
	clients    map[*websocket.Conn]bool
	events     chan listingEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func newListingHub() *ListingHub {
	return &ListingHub{
		clients:    make(map[*websocket.Conn]bool),
		events:     make(chan listingEvent, 8),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Notify queues a change event. It never blocks the caller: when the buffer
// is full the event is dropped, since a newer one will follow the next
// emission anyway.
func (h *ListingHub) Notify(kind string, total int) {
	select {
	case h.events <- listingEvent{Kind: kind, Total: total}:
	default:
	}
}

func (h *ListingHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				_ = conn.Close()
				delete(h.clients, conn)
			}

		case event := <-h.events:
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("listing feed broadcast error: %v", err)
					_ = conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ListingFeedHandler upgrades the connection and keeps it registered until
// the client goes away. Clients only listen; inbound frames are discarded.
func (app *application) ListingFeedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	app.hub.register <- conn

	go app.pingLoop(conn)
	go app.drainFeedClient(conn)
}

func (app *application) pingLoop(conn *websocket.Conn) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			app.hub.unregister <- conn
			return
		}
	}
}

func (app *application) drainFeedClient(conn *websocket.Conn) {
	defer func() {
		app.hub.unregister <- conn
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
