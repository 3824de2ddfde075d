// Package checkout implements order placement: validate the cart, decrement
// per-dish stock, write the order, clear the cart — all inside one database
// transaction. Any under-stocked or missing dish aborts the whole attempt
// with nothing mutated.
package checkout

import (
	"errors"
	"fmt"

	"github.com/blockchainsamuel0/calabarEats/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart is returned when the customer has nothing to order.
	ErrEmptyCart = errors.New("cannot create an order with no items")

	// ErrMixedVendorCart is returned when cart lines span more than one
	// chef. Mixed carts are rejected rather than split, so no item is ever
	// attributed to the wrong chef.
	ErrMixedVendorCart = errors.New("cart contains items from more than one chef")
)

// InsufficientStockError reports a line whose requested quantity exceeds
// the dish's remaining inventory.
type InsufficientStockError struct {
	DishName  string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, only %d left", e.DishName, e.Requested, e.Remaining)
}

// DishUnavailableError reports a cart line whose dish no longer exists.
type DishUnavailableError struct {
	DishID uint
}

func (e *DishUnavailableError) Error() string {
	return fmt.Sprintf("dish %d is no longer available", e.DishID)
}

// Input carries the customer-supplied delivery details. PaymentMethod
// defaults to cash on delivery; no charge is attempted either way.
type Input struct {
	DeliveryAddress string
	Phone           string
	PaymentMethod   string
}

// PlaceOrder creates an order from the customer's cart.
//
// Prices and names are re-read from the dishes table inside the
// transaction; the prices stored on cart lines are treated as untrusted
// display values. Inventory is decremented per line and availability is
// rederived from the new count. The order, its initial status-history row,
// and the cart deletion all commit together or not at all.
func PlaceOrder(db *gorm.DB, customerID uint, in Input) (*models.Order, error) {
	var cart []models.CartItem
	if err := db.Where("user_id = ?", customerID).Order("created_at asc").Find(&cart).Error; err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "cash_on_delivery"
	}

	chefID := cart[0].VendorID
	for _, line := range cart[1:] {
		if line.VendorID != chefID {
			return nil, ErrMixedVendorCart
		}
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		items := make([]models.OrderItem, 0, len(cart))

		for _, line := range cart {
			var dish models.Dish
			if err := tx.First(&dish, line.DishID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &DishUnavailableError{DishID: line.DishID}
				}
				return fmt.Errorf("read dish %d: %w", line.DishID, err)
			}

			if line.Quantity > dish.InventoryCount {
				return &InsufficientStockError{
					DishName:  dish.Name,
					Requested: line.Quantity,
					Remaining: dish.InventoryCount,
				}
			}

			remaining := dish.InventoryCount - line.Quantity
			update := map[string]interface{}{
				"inventory_count": remaining,
				"is_available":    remaining > 0,
			}
			if err := tx.Model(&dish).Updates(update).Error; err != nil {
				return fmt.Errorf("decrement stock for dish %d: %w", dish.ID, err)
			}

			unit := dish.Price + addonSurcharge(&dish, line)
			subtotal += unit * float64(line.Quantity)
			items = append(items, models.OrderItem{
				DishID:         dish.ID,
				Name:           dish.Name,
				Price:          unit,
				Quantity:       line.Quantity,
				SelectedAddons: line.SelectedAddons,
			})
		}

		order = &models.Order{
			CustomerID:       customerID,
			ChefID:           chefID,
			Status:           models.StatusPending,
			Subtotal:         subtotal,
			DeliveryAddress:  in.DeliveryAddress,
			Phone:            in.Phone,
			PaymentMethod:    in.PaymentMethod,
			PaymentStatus:    "pending",
			PaymentReference: uuid.NewString(),
			Items:            items,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: customerID,
			Note:      "Order placed by customer",
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("record status history: %w", err)
		}

		if err := tx.Where("user_id = ?", customerID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// addonSurcharge reprices the line's selected addons against the dish's
// current catalog. Addons that no longer exist on the dish contribute
// nothing.
func addonSurcharge(dish *models.Dish, line models.CartItem) float64 {
	var sum float64
	for _, selected := range line.SelectedAddonList() {
		if current, ok := dish.AddonByID(selected.ID); ok {
			sum += current.Price
		}
	}
	return sum
}
