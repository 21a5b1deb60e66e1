package models

type Enrollment struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	BatchID            string `json:"batch_id"`
	EnrolledAt         string `json:"enrolled_at"`
	Status             string `json:"status"` // active, completed, cancelled
	ProgressPercentage int    `json:"progress_percentage"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type Order struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BatchID   string `json:"batch_id"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"` // pending, confirmed, cancelled
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Payment struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"` // card, upi, netbanking, wallet
	Status        string `json:"status"` // pending, completed, failed, refunded
	TransactionID string `json:"transaction_id,omitempty"`
	PaidAt        string `json:"paid_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}
