package event

// SupplierInput carries one supplier row of the questionnaire. Numeric fields
// arrive as the display strings the producer typed and are parsed on save.
type SupplierInput struct {
	ID           int64  `json:"id"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Hours        string `json:"hours"`
	TotalPayment string `json:"total_payment"`
	Deposit      string `json:"deposit"`
	Balance      string `json:"balance"`
}

type SaveEventRequest struct {
	CoupleName  string          `json:"couple_name" binding:"required"`
	WeddingDate string          `json:"wedding_date" binding:"required"`
	Hall        string          `json:"hall"`
	Address     string          `json:"address"`
	GuestCount  string          `json:"guest_count"`
	Budget      string          `json:"budget"`
	Notes       string          `json:"notes"`
	Suppliers   []SupplierInput `json:"suppliers"`
}

// SignOffRequest is the supplier's signature payload. Hours and amount are
// optional confirmations entered at signing time.
type SignOffRequest struct {
	Date      string `json:"date" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Hours     string `json:"hours"`
	Amount    string `json:"amount"`
}
