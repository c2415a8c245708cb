package model

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:        {OrderStatusAccepted: true, OrderStatusRejected: true, OrderStatusCancelled: true},
	OrderStatusAccepted:       {OrderStatusPreparing: true, OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusPreparing:      {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:          {OrderStatusOutForDelivery: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusOutForDelivery: {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusRejected:       {},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}
