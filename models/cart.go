package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CartItem is one line of a customer's in-progress selection. The unique
// index over (user, dish, addon key) makes repeated adds increment the
// quantity instead of duplicating the line. UnitPrice is the price at add
// time including the addon surcharge; checkout reprices from the store
// and never trusts it.
type CartItem struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_line"`
	DishID         uint           `json:"dish_id" gorm:"not null;uniqueIndex:idx_cart_line"`
	AddonKey       string         `json:"-" gorm:"uniqueIndex:idx_cart_line"`
	VendorID       uint           `json:"vendor_id" gorm:"not null"`
	DishName       string         `json:"dish_name"`
	UnitPrice      float64        `json:"unit_price"`
	Quantity       int            `json:"quantity" gorm:"not null"`
	ImageID        string         `json:"image_id"`
	SelectedAddons datatypes.JSON `json:"selected_addons,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SelectedAddonList decodes the addons chosen for this line.
func (c *CartItem) SelectedAddonList() []Addon {
	if len(c.SelectedAddons) == 0 {
		return nil
	}
	var out []Addon
	if err := json.Unmarshal(c.SelectedAddons, &out); err != nil {
		return nil
	}
	return out
}
