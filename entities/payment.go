package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type Payment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index" json:"customer_id"`
	InvoiceID       *uuid.UUID      `gorm:"type:uuid;index" json:"invoice_id,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2)" json:"amount"`
	Currency        string          `json:"currency"`
	Method          string          `json:"method"`              // bank_transfer, cash, card, midtrans
	Status          string          `gorm:"index" json:"status"` // pending, completed, failed, refunded
	Reference       string          `json:"reference,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	MidtransOrderID *string         `gorm:"uniqueIndex" json:"midtrans_order_id,omitempty"`
	RedirectURL     string          `json:"redirect_url,omitempty"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Invoice  *Invoice  `gorm:"foreignKey:InvoiceID"`
	Timestamp
}
