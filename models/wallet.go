package models

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"` // "topup" or "payment"
	Title  string  `json:"title"`
	Amount float64 `json:"amount"` // positive for topup, negative for payment
	Date   string  `json:"date"`
}

// Wallet is the session-scoped balance plus its ledger.
type Wallet struct {
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}
