package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a WebSocket client
type Client struct {
	ID   uint
	Conn *websocket.Conn
	Send chan []byte
	Hub  *Hub
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %d connected", client.ID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Client %d disconnected", client.ID)

		case message := <-h.broadcast:
			// Write lock: slow clients are evicted from the map here
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastToAll sends a message to every connected client
func (h *Hub) BroadcastToAll(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Println("Broadcast channel full, dropping message")
	}
}

// GetConnectedClients returns the number of connected clients
func (h *Hub) GetConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// WebSocket message types
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// RideAccepted notifies clients that a driver took a ride
type RideAccepted struct {
	RideID     uint   `json:"rideId"`
	DriverID   uint   `json:"driverId"`
	DriverName string `json:"driverName"`
}

// RideCompleted notifies clients that a ride finished
type RideCompleted struct {
	RideID   uint `json:"rideId"`
	DriverID uint `json:"driverId"`
}

// HotelBooked notifies clients that a room was taken
type HotelBooked struct {
	HotelID        uint `json:"hotelId"`
	AvailableRooms int  `json:"availableRooms"`
}

// SendRideAccepted broadcasts a ride acceptance event
func (hub *Hub) SendRideAccepted(accepted RideAccepted) {
	hub.sendEvent("ride_accepted", accepted)
}

// SendRideCompleted broadcasts a ride completion event
func (hub *Hub) SendRideCompleted(completed RideCompleted) {
	hub.sendEvent("ride_completed", completed)
}

// SendHotelBooked broadcasts a hotel booking event
func (hub *Hub) SendHotelBooked(booked HotelBooked) {
	hub.sendEvent("hotel_booked", booked)
}

func (hub *Hub) sendEvent(eventType string, data interface{}) {
	message := WebSocketMessage{Type: eventType, Data: data}
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	hub.BroadcastToAll(payload)
}

// HandleWebSocket handles WebSocket connections
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID uint) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		ID:   userID,
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  hub,
	}

	client.Hub.register <- client

	// Start goroutines for reading and writing
	go client.writePump()
	go client.readPump()
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		// Clients only listen for events; inbound messages are ignored.
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
