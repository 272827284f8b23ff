package models

import "time"

// Setting keys the customer app's calculators read.
const (
	SettingCBMPrice        = "cbm_price"
	SettingRMBExchangeRate = "rmb_exchange_rate"
)

// Setting is a key/value pair shared with the customer app. Values are
// stored as strings and validated per key on write.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedBy *string   `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
