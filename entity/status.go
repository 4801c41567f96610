package entity

// Order workflow states. The assembler only ever creates orders as
// OrderPending; everything after that is a guarded status-field update.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderPreparing  = "preparing"
	OrderReady      = "ready"
	OrderOnDelivery = "on-delivery"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// Payment states
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
	PaymentRefunded = "refunded"
)

// Order types
const (
	TypeDelivery = "delivery"
	TypePickup   = "pickup"
	TypeDineIn   = "dine-in"
)

// Reservation states
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationArrived   = "arrived"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
	ReservationNoShow    = "no-show"
)

// orderTransitions is the allowed status graph for staff updates.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderPreparing, OrderCancelled},
	OrderPreparing:  {OrderReady, OrderCancelled},
	OrderReady:      {OrderOnDelivery, OrderDelivered},
	OrderOnDelivery: {OrderDelivered},
	OrderDelivered:  {OrderRefunded},
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCancelOrder: customers may back out only before the kitchen starts.
func CanCancelOrder(status string) bool {
	return status == OrderPending || status == OrderConfirmed
}

func CanRateOrder(status string) bool {
	return status == OrderDelivered
}
