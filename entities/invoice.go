package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type Invoice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Number     string          `gorm:"uniqueIndex" json:"number"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index" json:"customer_id"`
	IssueDate  time.Time       `json:"issue_date"`
	DueDate    time.Time       `json:"due_date"`
	Currency   string          `json:"currency"`
	VATPercent decimal.Decimal `gorm:"type:decimal(5,2)" json:"vat_percent"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(14,2)" json:"subtotal"`
	VATAmount  decimal.Decimal `gorm:"type:decimal(14,2)" json:"vat_amount"`
	Total      decimal.Decimal `gorm:"type:decimal(14,2)" json:"total"`
	Status     string          `gorm:"index" json:"status"` // draft, sent, paid, cancelled
	PDFURL     string          `json:"pdf_url,omitempty"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`

	Customer *Customer      `gorm:"foreignKey:CustomerID"`
	Items    []*InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Payments []*Payment     `gorm:"foreignKey:InvoiceID"`
	Timestamp
}

type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;index" json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2)" json:"unit_price"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2)" json:"amount"`
	Position    int             `json:"position"`
}
