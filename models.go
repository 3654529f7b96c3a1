package main

import "time"

// Member represents a trip member who can pay for and share expenses
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expense represents a shared trip expense
type Expense struct {
	ID          string    `json:"id"`
	ExpenseDate *string   `json:"expense_date"`
	CategoryID  *string   `json:"category_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PayerID     string    `json:"payer_id"`
	Location    string    `json:"location"`
	SplitWith   []string  `json:"split_with"`
	ArchiveID   *string   `json:"archive_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category represents an expense category
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TripSettings represents per-trip configuration (exchange rate)
type TripSettings struct {
	ExchangeRate string    `json:"exchange_rate"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BalanceReport is the engine output for GET /api/balances
type BalanceReport struct {
	Balances   map[string]float64 `json:"balances"`
	PaidTotals map[string]float64 `json:"paid_totals"`
}

// SettlementPayment is a single suggested transfer in the settlement plan
type SettlementPayment struct {
	FromMemberID   string  `json:"from_member_id"`
	FromMemberName string  `json:"from_member_name"`
	ToMemberID     string  `json:"to_member_id"`
	ToMemberName   string  `json:"to_member_name"`
	Amount         float64 `json:"amount"`
	DisplayAmount  int64   `json:"display_amount"`
	Currency       string  `json:"currency"`
}

// TripTotals aggregates spend across currencies
type TripTotals struct {
	TotalJpy         float64 `json:"total_jpy"`
	TotalTwd         float64 `json:"total_twd"`
	TotalCombinedTwd float64 `json:"total_combined_twd"`
	TotalCombinedJpy float64 `json:"total_combined_jpy"`
	AveragePerMember float64 `json:"average_per_member"`
}

// MemberBalanceSnapshot is a member's position frozen at archive time
type MemberBalanceSnapshot struct {
	MemberID   string  `json:"member_id"`
	MemberName string  `json:"member_name"`
	PaidTotal  float64 `json:"paid_total"`
	Balance    float64 `json:"balance"`
}

// Archive represents a closed-out trip and its frozen balances
type Archive struct {
	ID             string                  `json:"id"`
	Description    *string                 `json:"description"`
	ArchivedAt     time.Time               `json:"archived_at"`
	ExpenseCount   int                     `json:"expense_count"`
	TotalJpy       float64                 `json:"total_jpy"`
	TotalTwd       float64                 `json:"total_twd"`
	MemberBalances []MemberBalanceSnapshot `json:"member_balances,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// ArchiveRequest represents the request structure for creating an archive
type ArchiveRequest struct {
	Description string `json:"description"`
}

// ExpenseRequest represents the request structure for creating/updating an expense
type ExpenseRequest struct {
	ExpenseDate *string  `json:"expense_date"`
	CategoryID  *string  `json:"category_id"`
	Amount      float64  `json:"amount"`
	Currency    string   `json:"currency"`
	PayerID     string   `json:"payer_id"`
	Location    string   `json:"location"`
	SplitWith   []string `json:"split_with"`
}

// SettingsRequest represents the request structure for updating trip settings
type SettingsRequest struct {
	ExchangeRate string `json:"exchange_rate"`
}
