package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/Eduardo-pena2000/parmesana-web-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order status snapshots to subscribed storefront clients.
// One subscription per connection, keyed by order id.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan statusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	repo       *repository.OrderRepository
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

type statusUpdate struct {
	OrderID uint
	Payload orderStatusMsg
}

// orderStatusMsg is the wire format: enough for the tracking screen, nothing
// more.
type orderStatusMsg struct {
	OrderID           uint   `json:"orderId"`
	OrderNumber       string `json:"orderNumber"`
	Status            string `json:"status"`
	EstimatedDelivery int    `json:"estimatedDelivery"`
}

func NewOrderHub(repo *repository.OrderRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan statusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		repo:       repo,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[sub.OrderID]; ok {
				if _, ok := conns[sub.Conn]; ok {
					delete(conns, sub.Conn)
					sub.Conn.Close()
				}
				if len(conns) == 0 {
					delete(h.clients, sub.OrderID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			conns := h.clients[msg.OrderID]
			for conn := range conns {
				if err := conn.WriteJSON(msg.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(conns, conn)
				}
			}
			if len(conns) == 0 {
				delete(h.clients, msg.OrderID)
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *OrderHub) OrderStatusChanged(order *entity.Order) {
	h.broadcast <- statusUpdate{
		OrderID: order.ID,
		Payload: orderStatusMsg{
			OrderID:           order.ID,
			OrderNumber:       order.OrderNumber,
			Status:            order.Status,
			EstimatedDelivery: order.EstimatedDelivery,
		},
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades GET /ws/orders/:id. The auth middleware ran already; the
// order must belong to the requesting user.
func (h *OrderHub) Handler(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.repo.GetOrderForUser(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Pedido no encontrado"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// current state right away, then updates as they happen. Written before
	// registering: once registered, the hub loop is the only writer.
	if err := conn.WriteJSON(orderStatusMsg{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            order.Status,
		EstimatedDelivery: order.EstimatedDelivery,
	}); err != nil {
		conn.Close()
		return
	}

	sub := Subscription{Conn: conn, OrderID: order.ID, UserID: uid}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
