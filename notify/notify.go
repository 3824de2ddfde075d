// Package notify reports order lifecycle changes to customers. Delivery is
// a logged stub; the interface is the seam a push/SMS provider would plug
// into.
package notify

import (
	"log"

	"github.com/blockchainsamuel0/calabarEats/models"
)

type Notifier interface {
	OrderStatusChanged(customerID, orderID uint, status models.OrderStatus)
}

// LogNotifier writes notifications to the process log only.
type LogNotifier struct{}

func (LogNotifier) OrderStatusChanged(customerID, orderID uint, status models.OrderStatus) {
	log.Printf("notify: order %d for customer %d is now %s", orderID, customerID, status)
}

// Default is the notifier used by the handlers. Tests swap it for a fake.
var Default Notifier = LogNotifier{}
