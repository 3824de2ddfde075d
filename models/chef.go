package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChefStatus says whether a chef is currently accepting orders.
type ChefStatus string

const (
	ChefOpen   ChefStatus = "open"
	ChefClosed ChefStatus = "closed"
)

// ChefProfile holds a chef's business details. One per chef user; created
// incomplete at signup and filled in during profile setup.
type ChefProfile struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	OwnerUserID       uint           `json:"owner_user_id" gorm:"uniqueIndex;not null"`
	Owner             User           `json:"owner,omitempty" gorm:"foreignKey:OwnerUserID"`
	Name              string         `json:"name"`
	AddressText       string         `json:"address_text"`
	WorkingHoursStart string         `json:"working_hours_start"`
	WorkingHoursEnd   string         `json:"working_hours_end"`
	VettingPhotoURLs  datatypes.JSON `json:"vetting_photo_urls,omitempty"`
	ProfileComplete   bool           `json:"profile_complete" gorm:"default:false"`
	Status            ChefStatus     `json:"status" gorm:"not null;default:'closed'"`
	Rating            float64        `json:"rating" gorm:"default:0"`
	Dishes            []Dish         `json:"dishes,omitempty" gorm:"foreignKey:ChefID;references:OwnerUserID"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// PayoutDetails is the bank information a chef is paid out to.
type PayoutDetails struct {
	AccountName       string `json:"account_name"`
	AccountNumber     string `json:"account_number"`
	BankName          string `json:"bank_name"`
	MobileMoneyNumber string `json:"mobile_money_number,omitempty"`
}

// Wallet tracks a chef's earnings. Keyed by the chef's user ID; balances
// are mutated by the settlement side, not by this API.
type Wallet struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ChefUserID     uint           `json:"chef_user_id" gorm:"uniqueIndex;not null"`
	Balance        float64        `json:"balance" gorm:"default:0"`
	PendingBalance float64        `json:"pending_balance" gorm:"default:0"`
	PayoutDetails  datatypes.JSON `json:"payout_details,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
