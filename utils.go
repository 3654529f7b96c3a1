package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"

	"tripsplit/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CategoryMapping maps imported CSV categories to our predefined categories
type CategoryMapping struct {
	categoriesByName map[string]generated.Category
}

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateHexColor validates that a color is in hex format (#RRGGBB)
func validateHexColor(color string) error {
	if color == "" {
		return nil // Empty color is allowed
	}

	hexColorRegex := regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("color must be in hex format (#RRGGBB)")
	}
	return nil
}

// validateCurrency validates that a currency code is one the ledger supports
func validateCurrency(currency string) error {
	if currency != currencyJPY && currency != currencyTWD {
		return fmt.Errorf("currency must be %s or %s", currencyJPY, currencyTWD)
	}
	return nil
}

// validateExpenseRequest validates the fields required before an expense
// can reach the ledger. The engine itself tolerates malformed rows; the
// entry form contract is enforced here.
func validateExpenseRequest(req ExpenseRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if strings.TrimSpace(req.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if strings.TrimSpace(req.PayerID) == "" {
		return fmt.Errorf("payer_id is required")
	}
	if err := validateCurrency(req.Currency); err != nil {
		return err
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	errorStr := err.Error()

	// Check for unique constraint violations
	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		if strings.Contains(errorStr, "members_name_key") {
			return http.StatusConflict, "Member with this name already exists"
		}
		if strings.Contains(errorStr, "categories_name_key") {
			return http.StatusConflict, "Category with this name already exists"
		}
		return http.StatusConflict, "Resource already exists"
	}

	// Check for not found errors
	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}

// Category mapping functions

// mapExpenseCategory determines the best category for an imported expense
func (cm *CategoryMapping) mapExpenseCategory(csvCategory string) *generated.Category {
	// First try direct mapping from CSV category
	if category, exists := cm.categoriesByName[csvCategory]; exists {
		return &category
	}

	// Map common export categories to our categories
	csvCategoryMap := map[string]string{
		"Dining":        "Food",
		"Restaurants":   "Food",
		"Rail":          "Transport",
		"Taxi":          "Transport",
		"Hotel":         "Lodging",
		"Accommodation": "Lodging",
		"Attractions":   "Tickets",
		"Souvenirs":     "Shopping",
		"Merchandise":   "Shopping",
	}

	if mappedCategory, exists := csvCategoryMap[csvCategory]; exists {
		if category, exists := cm.categoriesByName[mappedCategory]; exists {
			return &category
		}
	}

	// Default to "Other" if no match found
	if category, exists := cm.categoriesByName["Other"]; exists {
		return &category
	}

	return nil
}

// initializeCategoryMapping loads categories and creates keyword mappings
func initializeCategoryMapping() (*CategoryMapping, error) {
	categories, err := queries.GetCategories(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categoriesByName := make(map[string]generated.Category)
	for _, category := range categories {
		categoriesByName[category.Name] = category
	}

	return &CategoryMapping{
		categoriesByName: categoriesByName,
	}, nil
}

// UUID and conversion utility functions

// convertUUIDStringsToArray converts string UUIDs to pgtype.UUID array
func convertUUIDStringsToArray(uuidStrings []string) ([]pgtype.UUID, error) {
	if len(uuidStrings) == 0 {
		return []pgtype.UUID{}, nil
	}

	var uuids []pgtype.UUID
	for _, uuidStr := range uuidStrings {
		parsedUUID, err := uuid.Parse(uuidStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID format: %s", uuidStr)
		}
		uuids = append(uuids, pgtype.UUID{Bytes: parsedUUID, Valid: true})
	}
	return uuids, nil
}

// convertUUIDArrayToStrings converts a pgtype.UUID array to string ids
func convertUUIDArrayToStrings(uuidArray []pgtype.UUID) []string {
	ids := make([]string, 0, len(uuidArray))
	for _, uuidPg := range uuidArray {
		if uuidPg.Valid {
			ids = append(ids, uuid.UUID(uuidPg.Bytes).String())
		}
	}
	return ids
}

// numericFromFloat converts a float64 amount to pgtype.Numeric
func numericFromFloat(amount float64) (pgtype.Numeric, error) {
	amountBig := big.NewFloat(amount)
	amountStr := amountBig.Text('f', 2) // Format to 2 decimal places
	var amountNumeric pgtype.Numeric
	if err := amountNumeric.Scan(amountStr); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("invalid amount %f: %w", amount, err)
	}
	return amountNumeric, nil
}

// floatFromNumeric converts a pgtype.Numeric to float64, zero when unset
func floatFromNumeric(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	value, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return value.Float64
}

// Row conversion utility functions

// convertMember converts a generated.Member to our Member struct
func convertMember(m generated.Member) Member {
	member := Member{
		ID:        uuid.UUID(m.ID.Bytes).String(),
		Name:      m.Name,
		CreatedAt: m.CreatedAt.Time,
		UpdatedAt: m.UpdatedAt.Time,
	}

	if m.Color.Valid {
		member.Color = &m.Color.String
	}
	if m.Note.Valid {
		member.Note = &m.Note.String
	}

	return member
}

// convertCategory converts a generated.Category to our Category struct
func convertCategory(cat generated.Category) Category {
	category := Category{
		ID:        uuid.UUID(cat.ID.Bytes).String(),
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt.Time,
		UpdatedAt: cat.UpdatedAt.Time,
	}

	if cat.Description.Valid {
		category.Description = &cat.Description.String
	}
	if cat.Color.Valid {
		category.Color = &cat.Color.String
	}

	return category
}

// convertExpense converts a generated.Expense to our Expense struct
func convertExpense(e generated.Expense) Expense {
	expense := Expense{
		ID:        uuid.UUID(e.ID.Bytes).String(),
		Amount:    floatFromNumeric(e.Amount),
		Currency:  e.Currency,
		Location:  e.Location,
		SplitWith: convertUUIDArrayToStrings(e.SplitWith),
		CreatedAt: e.CreatedAt.Time,
		UpdatedAt: e.UpdatedAt.Time,
	}

	if e.PayerID.Valid {
		expense.PayerID = uuid.UUID(e.PayerID.Bytes).String()
	}
	if e.ExpenseDate.Valid {
		dateStr := e.ExpenseDate.Time.Format("2006-01-02")
		expense.ExpenseDate = &dateStr
	}
	if e.CategoryID.Valid {
		categoryStr := uuid.UUID(e.CategoryID.Bytes).String()
		expense.CategoryID = &categoryStr
	}
	if e.ArchiveID.Valid {
		archiveStr := uuid.UUID(e.ArchiveID.Bytes).String()
		expense.ArchiveID = &archiveStr
	}

	return expense
}
