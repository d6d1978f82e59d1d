package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Payment methods.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCard     = "card"
)

// Payment is one cobro: a charge recorded against a session.
type Payment struct {
	ID             string     `bson:"id" json:"id"`
	SessionID      string     `bson:"sessionId" json:"sessionId"`
	PatientID      string     `bson:"patientId,omitempty" json:"patientId,omitempty"`
	Amount         float64    `bson:"amount" json:"amount"`
	Currency       string     `bson:"currency" json:"currency"` // e.g., "eur"
	Method         string     `bson:"method" json:"method"`     // cash, transfer, card
	Status         string     `bson:"status" json:"status"`     // pending or paid
	StripeIntentID string     `bson:"stripeIntentId,omitempty" json:"stripeIntentId,omitempty"` // card cobros only
	PaidAt         *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}
