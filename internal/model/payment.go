package model

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Payment struct {
	ID            int64   `db:"id" json:"id"`
	UserID        int64   `db:"userId" json:"userId"`
	Amount        float64 `db:"amount" json:"amount"`
	Description   string  `db:"description" json:"description"`
	Status        string  `db:"status" json:"status"`
	PaymentMethod string  `db:"paymentMethod" json:"paymentMethod"`
	DueDate       string  `db:"dueDate" json:"dueDate,omitempty"`
	Date          string  `db:"date" json:"date,omitempty"`
	CreatedAt     string  `db:"createdAt" json:"-"`
}

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"required"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	DueDate       string  `json:"dueDate"`
}
