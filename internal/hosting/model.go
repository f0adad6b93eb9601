package hosting

import "time"

// Order statuses. Payment processing is out of scope: purchases are created
// pending and marked completed in the same transaction.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// AccountStatusActive marks a provisioned hosting account.
const AccountStatusActive = "active"

// accountTerm is how long a purchased plan runs before renewal.
const accountTerm = 30 * 24 * time.Hour

// Order records a hosting plan purchase.
type Order struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	PlanType    string     `json:"planType"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Account is a provisioned hosting account tied to a completed order.
type Account struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	OrderID   int64     `json:"orderId"`
	PlanType  string    `json:"planType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
