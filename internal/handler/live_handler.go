package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	liveMu      sync.Mutex
	liveClients = make(map[string]*websocket.Conn)
)

// RefreshEvent is pushed to connected dashboard pages when the dataset
// changes, so open pages re-pull their table and charts.
type RefreshEvent struct {
	Event string `json:"event" example:"refresh"`
	Added int    `json:"added"`
	Runs  int    `json:"runs"`
}

// HandleLive godoc
// @Summary      Live refresh notifications (WebSocket)
// @Description  Upgrades to a WebSocket and pushes a refresh event whenever the dataset is rebuilt.
// @Description  <br> **Note: this is not a standard HTTP API.** Connect with the `ws://` or `wss://` scheme.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "WebSocket upgrade failed"
// @Router       /ws/live [get]
func HandleLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleLive(): Failed to upgrade to WebSocket: %v", err)
		return
	}

	clientID := uuid.New().String()
	liveMu.Lock()
	liveClients[clientID] = conn
	liveMu.Unlock()
	log.Printf("HandleLive(): client %s connected", clientID)

	// Drain the connection; the server only pushes. A read error means the
	// client went away.
	go func() {
		defer func() {
			liveMu.Lock()
			delete(liveClients, clientID)
			liveMu.Unlock()
			conn.Close()
			log.Printf("HandleLive(): client %s disconnected", clientID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// NotifyRefresh pushes a refresh event to every connected client.
func NotifyRefresh(added, total int) {
	event := RefreshEvent{Event: "refresh", Added: added, Runs: total}

	liveMu.Lock()
	defer liveMu.Unlock()
	for id, conn := range liveClients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("NotifyRefresh(): failed to write to client %s: %v", id, err)
			conn.Close()
			delete(liveClients, id)
		}
	}
}
