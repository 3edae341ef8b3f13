package entity

// OrderStatus is deliberately binary. Either state may transition to the
// other; nothing is terminal.
type OrderStatus int

const (
	StatusUnprocessed OrderStatus = 0
	StatusDelivered   OrderStatus = 1
)

func (s OrderStatus) Valid() bool {
	return s == StatusUnprocessed || s == StatusDelivered
}

func (s OrderStatus) String() string {
	switch s {
	case StatusUnprocessed:
		return "unprocessed"
	case StatusDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}
