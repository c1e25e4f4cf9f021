package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// StockAlert is pushed to connected clients when a product's stock falls to
// or below its alert quantity.
type StockAlert struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	Stock         int    `json:"stock"`
	AlertQuantity int    `json:"alert_quantity"`
}

// AlertHub fans stock alerts out to every connected websocket client.
type AlertHub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

func NewAlertHub() *AlertHub {
	h := &AlertHub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // buffered to prevent blocking
	}
	go h.run()
	return h
}

func (h *AlertHub) run() {
	for message := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

// Notify queues an alert; a full queue drops it rather than blocking the
// request that triggered it.
func (h *AlertHub) Notify(alert StockAlert) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		log.Println("alert queue full, dropping stock alert")
	}
}

func (r *Router) alertsHandler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		r.Alerts.mu.Lock()
		r.Alerts.clients[conn] = true
		r.Alerts.mu.Unlock()
		log.Println("Alert client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				r.Alerts.mu.Lock()
				delete(r.Alerts.clients, conn)
				r.Alerts.mu.Unlock()
				log.Println("Alert client disconnected:", conn.RemoteAddr())
				return
			}
		}
	})
}

// maybeAlert checks a product after a stock mutation and pushes an alert when
// it is at or below its threshold.
func (r *Router) maybeAlert(productID uint) {
	if r.Alerts == nil {
		return
	}
	product, err := r.Catalog.GetProduct(productID)
	if err != nil {
		return
	}
	if product.Stock <= product.AlertQuantity {
		r.Alerts.Notify(StockAlert{
			ProductID:     product.ID,
			Name:          product.Name,
			Stock:         product.Stock,
			AlertQuantity: product.AlertQuantity,
		})
	}
}
