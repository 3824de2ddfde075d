package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Addon is an optional extra a customer can attach to a dish, priced on
// top of the dish price.
type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Dish is a menu item owned by a chef. ChefID is the owning chef's user
// ID. Availability is never set directly: it is derived from the
// inventory count on every inventory-mutating path.
type Dish struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ChefID         uint           `json:"chef_id" gorm:"not null;index"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	Price          float64        `json:"price" gorm:"not null"`
	Category       string         `json:"category"`
	ImageID        string         `json:"image_id"`
	IsAvailable    bool           `json:"is_available" gorm:"default:false"`
	InventoryCount int            `json:"inventory_count" gorm:"default:0"`
	Ingredients    datatypes.JSON `json:"ingredients,omitempty"`
	Addons         datatypes.JSON `json:"addons,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AddonList decodes the dish's addon catalog.
func (d *Dish) AddonList() []Addon {
	if len(d.Addons) == 0 {
		return nil
	}
	var out []Addon
	if err := json.Unmarshal(d.Addons, &out); err != nil {
		return nil
	}
	return out
}

// AddonByID looks an addon up in the dish's catalog.
func (d *Dish) AddonByID(id string) (Addon, bool) {
	for _, a := range d.AddonList() {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

// AddonKey produces the canonical key for a set of addon IDs. A dish plus
// its selected addon set is the composite identity of a cart line.
func AddonKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
