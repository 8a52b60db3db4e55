package valueobjects

// OrderStatus is the lifecycle state of an order.
//
//	pending -> paid -> shipped
//	pending -> cancelled
//	pending -> expired
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusExpired   OrderStatus = "expired"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled, OrderStatusExpired:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsPending() bool {
	return s == OrderStatusPending
}

func (s OrderStatus) IsPaid() bool {
	return s == OrderStatusPaid
}

// IsFinal reports whether no further transitions are allowed.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusShipped || s == OrderStatusCancelled || s == OrderStatusExpired
}

func (s OrderStatus) String() string {
	return string(s)
}

// ParseOrderStatus validates a raw status string.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	return status, status.IsValid()
}
