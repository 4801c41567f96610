package ws

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func hubTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (h *OrderHub) subscriberCount(orderID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[orderID])
}

func (h *OrderHub) trackedOrders() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func TestOrderHubSnapshotThenUpdates(t *testing.T) {
	db := hubTestDB(t)
	order := &entity.Order{
		OrderNumber:       "LP2506010042",
		UserID:            1,
		Status:            entity.OrderPending,
		Items:             []entity.OrderLine{},
		EstimatedDelivery: 20,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	hub := NewOrderHub(repository.NewOrderRepository(db))
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id", func(c *gin.Context) { c.Set("userId", uint(1)) }, hub.Handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/orders/%d", order.ID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg orderStatusMsg
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if msg.OrderID != order.ID || msg.Status != entity.OrderPending {
		t.Fatalf("snapshot = %+v, want current order state", msg)
	}

	// subscription is live once the hub has it; broadcasts reach us after
	waitFor(t, "subscription", func() bool { return hub.subscriberCount(order.ID) == 1 })

	hub.OrderStatusChanged(&entity.Order{
		Model:             gorm.Model{ID: order.ID},
		OrderNumber:       order.OrderNumber,
		Status:            entity.OrderConfirmed,
		EstimatedDelivery: 20,
	})
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if msg.Status != entity.OrderConfirmed {
		t.Fatalf("update status = %q, want confirmed", msg.Status)
	}
}

func TestOrderHubPrunesClosedSubscriptions(t *testing.T) {
	db := hubTestDB(t)
	order := &entity.Order{
		OrderNumber: "LP2506010043",
		UserID:      1,
		Status:      entity.OrderPending,
		Items:       []entity.OrderLine{},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	hub := NewOrderHub(repository.NewOrderRepository(db))
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id", func(c *gin.Context) { c.Set("userId", uint(1)) }, hub.Handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/orders/%d", order.ID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg orderStatusMsg
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	waitFor(t, "subscription", func() bool { return hub.subscriberCount(order.ID) == 1 })

	// hanging up must drop the conn and the per-order entry with it
	conn.Close()
	waitFor(t, "prune", func() bool { return hub.trackedOrders() == 0 })
}

func TestOrderHubRejectsForeignOrder(t *testing.T) {
	db := hubTestDB(t)
	order := &entity.Order{
		OrderNumber: "LP2506010044",
		UserID:      1,
		Status:      entity.OrderPending,
		Items:       []entity.OrderLine{},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	hub := NewOrderHub(repository.NewOrderRepository(db))
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id", func(c *gin.Context) { c.Set("userId", uint(2)) }, hub.Handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/orders/%d", order.ID)
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatal("upgrade succeeded for somebody else's order")
	}
}
