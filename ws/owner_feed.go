package ws

import (
	"log"
	"net/http"
	"sync"

	"plateful/repository"
	"plateful/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OwnerFeedHub กระจาย update ของ reservation ไปหา dashboard ของร้าน
// ที่เปิด websocket ค้างไว้ (ร้านเดียวเปิดได้หลาย connection)
type OwnerFeedHub struct {
	clients    map[string]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan FeedUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID string
}

// FeedUpdate = หนึ่ง event ที่จะยิงให้ทุก connection ของร้านนั้น
type FeedUpdate struct {
	RestaurantID string `json:"restaurantId"`
	Event        string `json:"event"`
	Payload      any    `json:"payload"`
}

func NewOwnerFeedHub() *OwnerFeedHub {
	return &OwnerFeedHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan FeedUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run คอยฟัง register/unregister/broadcast ตลอดเวลา (เปิดเป็น goroutine เดียว)
func (h *OwnerFeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case update := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[update.RestaurantID] {
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[update.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push ให้ service ฝั่ง reservation เรียก (ไม่ block ฝั่งเขียน DB)
func (h *OwnerFeedHub) Push(restaurantID, event string, payload any) {
	go func() {
		h.broadcast <- FeedUpdate{RestaurantID: restaurantID, Event: event, Payload: payload}
	}()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // dev เท่านั้น
}

// ServeOwnerFeed คือ handler ของ GET /partner/feed ต้องผ่าน WSAuthMiddleware มาก่อน
// หา restaurant ของ uid แล้วผูก connection เข้า hub
func ServeOwnerFeed(hub *OwnerFeedHub, restRepo *repository.RestaurantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := utils.CurrentUID(c)
		rest, err := restRepo.FindByOwner(uid)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no restaurant"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade failed: %v", err)
			return
		}

		sub := subscription{Conn: conn, RestaurantID: rest.RestaurantID}
		hub.register <- sub

		// อ่านทิ้งไปเรื่อย ๆ จนกว่าฝั่งโน้นจะปิด (feed เป็นขาเดียว)
		go func() {
			defer func() { hub.unregister <- sub }()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
