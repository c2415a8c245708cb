package usecase

import (
	"fmt"

	"github.com/zepcart/marketplace/internal/domain/model"
)

const notificationTypeOrderUpdate = "order_update"

// StatusNotification returns the customer facing title and body for the order's current status.
func StatusNotification(order *model.Order) (title, body string) {
	switch order.Status {
	case model.OrderStatusPending:
		return "Order Placed 🧾", "Your order has been placed and is waiting for the vendor."
	case model.OrderStatusAccepted:
		return "Order Accepted ✅", "Your order has been accepted and is being processed."
	case model.OrderStatusCancelled:
		reason := "Unavailable"
		if order.CancellationReason != nil && *order.CancellationReason != "" {
			reason = *order.CancellationReason
		}
		return "Order Cancelled ❌", "Your order was cancelled. Reason: " + reason
	case model.OrderStatusRejected:
		return "Order Rejected ❌", "Your order was rejected by the vendor."
	case model.OrderStatusReady:
		return "Order Ready 🥡", "Your order is ready for pickup/delivery!"
	case model.OrderStatusOutForDelivery:
		return "Out for Delivery 🛵", "Your order is on the way!"
	case model.OrderStatusDelivered:
		return "Order Delivered 🏁", "Enjoy your purchase!"
	case model.OrderStatusPreparing:
		return "Preparing Order 🍳", "The vendor is preparing your order."
	}
	return "Order Update", fmt.Sprintf("Your order #%s is now %s", shortOrderID(order.ID), order.Status)
}

// NewStatusPush builds the push message announcing order's status to token.
func NewStatusPush(token string, order *model.Order) model.PushMessage {
	title, body := StatusNotification(order)
	return model.PushMessage{
		Token: token,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"orderId": order.ID,
			"type":    notificationTypeOrderUpdate,
			"status":  string(order.Status),
		},
	}
}

func shortOrderID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
