// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderItems is a denormalized snapshot of the purchased items. Entries
// keep whatever shape the client submitted ({name, quantity, price});
// there is deliberately no FK back to Product so historical orders stay
// stable when the catalog changes.
type OrderItems []map[string]interface{}

func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return nil, nil
	}
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, items)
}

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerName    string      `json:"customer_name" gorm:"size:100;not null"`
	CustomerEmail   string      `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"size:50;not null"`
	CustomerAddress string      `json:"customer_address" gorm:"type:text;not null"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	OrderItems      OrderItems  `json:"order_items" gorm:"type:jsonb;not null"`
	Status          OrderStatus `json:"status" gorm:"size:50;default:'pending'"`
	CreatedAt       time.Time   `json:"created_at"`
}
