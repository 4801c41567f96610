package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderNumberAttempts bounds the regenerate-and-retry loop on a duplicate
// order number. The 4-digit suffix gives 10k numbers per day, so a second
// collision in a row is already suspicious.
const orderNumberAttempts = 3

// OrderNotifier receives status snapshots; the websocket hub implements it.
type OrderNotifier interface {
	OrderStatusChanged(order *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Catalog  CatalogLookup
	AddrRepo *repository.AddressRepository
	UserRepo *repository.UserRepository

	Pricing  Pricing
	Notifier OrderNotifier // optional

	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalog CatalogLookup,
	addrRepo *repository.AddressRepository,
	userRepo *repository.UserRepository,
	pricing Pricing,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		Catalog:  catalog,
		AddrRepo: addrRepo,
		UserRepo: userRepo,
		Pricing:  pricing,
		now:      time.Now,
	}
}

// ----- DTOs from Controller -----

type AddressIn struct {
	Label          string `json:"label"`
	Street         string `json:"street" binding:"required"`
	ExteriorNumber string `json:"exteriorNumber"`
	InteriorNumber string `json:"interiorNumber"`
	Neighborhood   string `json:"neighborhood" binding:"required"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	References     string `json:"references"`
}

func (a *AddressIn) snapshot() *entity.AddressSnapshot {
	return &entity.AddressSnapshot{
		Label:          a.Label,
		Street:         a.Street,
		ExteriorNumber: a.ExteriorNumber,
		InteriorNumber: a.InteriorNumber,
		Neighborhood:   a.Neighborhood,
		City:           a.City,
		State:          a.State,
		PostalCode:     a.PostalCode,
		References:     a.References,
	}
}

type CreateOrderReq struct {
	Items         []CartLine `json:"items" binding:"required"`
	Type          string     `json:"type" binding:"omitempty,oneof=delivery pickup dine-in"`
	PaymentMethod string     `json:"paymentMethod" binding:"omitempty,oneof=card cash transfer"`
	AddressID     *uint      `json:"addressId"`
	Address       *AddressIn `json:"shippingAddress"`
	Notes         string     `json:"notes"`
	DeliveryTime  *time.Time `json:"deliveryTime"`
	TransactionID string     `json:"transactionId"`
}

// Create assembles and persists one order: authoritative prices from the
// catalog, totals per the pricing config, LP order number, loyalty accrual.
// Every failure path returns before the transaction starts.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	orderType := req.Type
	if orderType == "" {
		orderType = entity.TypeDelivery
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	// Resolve the delivery address up front: stored address by id for
	// registered checkout, raw payload for guest checkout.
	var deliveryAddress *entity.AddressSnapshot
	var addressID *uint
	if orderType == entity.TypeDelivery {
		switch {
		case req.AddressID != nil:
			addr, err := s.AddrRepo.FindForUser(*req.AddressID, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: dirección no encontrada", ErrMissingAddress)
				}
				return nil, err
			}
			deliveryAddress = addr.Snapshot()
			addressID = req.AddressID
		case req.Address != nil:
			deliveryAddress = req.Address.snapshot()
		default:
			return nil, ErrMissingAddress
		}
	}

	quote, err := BuildQuote(req.Items, orderType, s.Catalog, s.Pricing)
	if err != nil {
		return nil, err
	}

	estimated := 20
	if orderType == entity.TypeDelivery {
		estimated = 45
	}

	order := &entity.Order{
		UserID:            userID,
		AddressID:         addressID,
		Source:            "web",
		Type:              orderType,
		Status:            entity.OrderPending,
		Items:             quote.Lines,
		Subtotal:          quote.Subtotal,
		Tax:               quote.Tax,
		DeliveryFee:       quote.DeliveryFee,
		Discount:          decimal.Zero,
		Total:             quote.Total,
		PaymentMethod:     paymentMethod,
		PaymentStatus:     entity.PaymentPending,
		TransactionID:     req.TransactionID,
		DeliveryAddress:   deliveryAddress,
		DeliveryTime:      req.DeliveryTime,
		EstimatedDelivery: estimated,
		Notes:             req.Notes,
		PointsEarned:      quote.PointsEarned,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for attempt := 0; ; attempt++ {
			order.OrderNumber = NewOrderNumber(s.now())
			err := s.Repo.CreateOrder(tx, order)
			if err == nil {
				break
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt+1 < orderNumberAttempts {
				continue
			}
			return err
		}
		return s.UserRepo.AccrueLoyalty(tx, userID, order.PointsEarned, order.Total)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ----- List & Detail -----

type OrderListOut struct {
	Orders []entity.Order `json:"orders"`
	Count  int64          `json:"count"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func (s *OrderService) ListForUser(userID uint, status string, page, limit int) (*OrderListOut, error) {
	orders, total, err := s.Repo.ListOrdersForUser(userID, status, page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return &OrderListOut{Orders: orders, Count: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

func (s *OrderService) DetailByNumber(userID uint, number string) (*entity.Order, error) {
	return s.Repo.GetOrderByNumber(userID, number)
}

// ----- Stats -----

type OrderStats struct {
	TotalOrders      int64  `json:"totalOrders"`
	PendingOrders    int64  `json:"pendingOrders"`
	ConfirmedOrders  int64  `json:"confirmedOrders"`
	PreparingOrders  int64  `json:"preparingOrders"`
	OnDeliveryOrders int64  `json:"onDeliveryOrders"`
	DeliveredOrders  int64  `json:"deliveredOrders"`
	CancelledOrders  int64  `json:"cancelledOrders"`
	TotalSpent       string `json:"totalSpent"`
}

func (s *OrderService) StatsForUser(userID uint) (*OrderStats, error) {
	out := &OrderStats{}
	counts := []struct {
		status string
		dst    *int64
	}{
		{"", &out.TotalOrders},
		{entity.OrderPending, &out.PendingOrders},
		{entity.OrderConfirmed, &out.ConfirmedOrders},
		{entity.OrderPreparing, &out.PreparingOrders},
		{entity.OrderOnDelivery, &out.OnDeliveryOrders},
		{entity.OrderDelivered, &out.DeliveredOrders},
		{entity.OrderCancelled, &out.CancelledOrders},
	}
	for _, c := range counts {
		n, err := s.Repo.CountByStatus(userID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	spent, err := s.Repo.TotalsForUser(userID)
	if err != nil {
		return nil, err
	}
	out.TotalSpent = spent
	return out, nil
}

func (s *OrderService) notify(order *entity.Order) {
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(order)
	}
}
