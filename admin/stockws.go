package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"vitrin/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var (
	stockMu      sync.Mutex
	stockClients = make(map[*websocket.Conn]bool)
)

type stockUpdate struct {
	ProductID string                `json:"productId"`
	Stock     int                   `json:"stock"`
	Tiers     []models.PrimaryValue `json:"tiers,omitempty"`
}

// WatchStock streams stock and price-tier changes to open admin consoles
// so concurrent editors see each other's saves.
func WatchStock(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WatchStock upgrade error:", err)
		return
	}

	stockMu.Lock()
	stockClients[conn] = true
	stockMu.Unlock()

	// reads only serve to detect the close
	go func() {
		defer func() {
			stockMu.Lock()
			delete(stockClients, conn)
			stockMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastStockUpdate pushes the product's current stock picture to every
// watching console.
func BroadcastStockUpdate(p *models.Product) {
	update := stockUpdate{ProductID: p.ProductID, Stock: p.Stock}
	for _, v := range p.Variants {
		update.Tiers = append(update.Tiers, v.PrimaryValues...)
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Println("BroadcastStockUpdate marshal error:", err)
		return
	}

	stockMu.Lock()
	defer stockMu.Unlock()
	for conn := range stockClients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(stockClients, conn)
			conn.Close()
		}
	}
}
