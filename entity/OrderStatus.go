package entity

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusArriving       OrderStatus = "arriving"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// happy-path progression; cancelled sits outside of it
var statusSequence = []OrderStatus{
	StatusPlaced,
	StatusPreparing,
	StatusOutForDelivery,
	StatusArriving,
	StatusDelivered,
}

var statusMessages = map[OrderStatus]string{
	StatusPlaced:         "Order placed! The restaurant has received it.",
	StatusPreparing:      "Your food is being prepared.",
	StatusOutForDelivery: "Your order is out for delivery.",
	StatusArriving:       "Your delivery partner is arriving.",
	StatusDelivered:      "Delivered. Enjoy your meal!",
	StatusCancelled:      "Your order has been cancelled.",
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the following status in the progression. ok is false when s is
// terminal or unknown; the machine never skips and never goes backward.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusSequence {
		if st == s && i+1 < len(statusSequence) {
			return statusSequence[i+1], true
		}
	}
	return s, false
}

// Progress is the display fraction: index of current status over the number
// of non-terminal statuses. placed=0, arriving=0.75, delivered=1.
func (s OrderStatus) Progress() float64 {
	if s == StatusCancelled {
		return 0
	}
	for i, st := range statusSequence {
		if st == s {
			return float64(i) / float64(len(statusSequence)-1)
		}
	}
	return 0
}

// Message is the user-facing line shown on each transition.
func (s OrderStatus) Message() string {
	return statusMessages[s]
}
