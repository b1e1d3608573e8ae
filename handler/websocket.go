package handler

import (
	"capsule_store/database"
	"capsule_store/model"
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

const orderFeedChannel = "orders:new"

var (
	feedClients = make(map[*websocket.Conn]bool)
	feedMu      sync.Mutex
)

// OrderFeed streams newly accepted orders to connected admin dashboards
func OrderFeed(c *websocket.Conn) {
	defer func() {
		feedMu.Lock()
		delete(feedClients, c)
		feedMu.Unlock()
		c.Close()
	}()

	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()

	if database.Redis == nil {
		// no pub/sub backbone; hold the connection for direct broadcasts
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	pubsub := database.Redis.Subscribe(context.Background(), orderFeedChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// PublishNewOrder pushes an order summary onto the live feed. Failures are
// logged only; the checkout flow never depends on the feed.
func PublishNewOrder(order model.Order) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":         "order:new",
		"id":            order.ID,
		"orderCode":     order.OrderCode,
		"fullName":      order.FullName,
		"quantity":      order.Quantity,
		"total":         order.Total,
		"paymentMethod": order.PaymentMethod,
		"status":        order.Status,
		"createdAt":     order.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to marshal order feed payload: %v", err)
		return
	}

	if database.Redis != nil {
		if err := database.Redis.Publish(context.Background(), orderFeedChannel, payload).Err(); err == nil {
			return
		} else {
			log.Printf("Order feed publish failed, broadcasting directly: %v", err)
		}
	}

	feedMu.Lock()
	for conn := range feedClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(feedClients, conn)
		}
	}
	feedMu.Unlock()
}
