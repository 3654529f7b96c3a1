package main

import (
	"context"
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tripsplit/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Expense handler functions

// @Summary Get all expenses
// @Description Retrieve all active (non-archived) expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} Expense "List of expenses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [get]
func getExpenses(c *gin.Context) {
	dbExpenses, err := queries.GetActiveExpenses(context.Background())
	if err != nil {
		log.Printf("Error fetching active expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching active expenses"})
		return
	}

	expenses := make([]Expense, 0)
	for _, e := range dbExpenses {
		expenses = append(expenses, convertExpense(e))
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary Create expense
// @Description Record a new trip expense. Amount, location, payer and currency are required; an empty split list means the cost is shared across the whole roster at computation time.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body ExpenseRequest true "Expense data"
// @Success 201 {object} Expense "Created expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [post]
func createExpense(c *gin.Context) {
	var request ExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateExpenseRequest(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := buildExpenseParams(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dbExpense, err := queries.CreateExpense(context.Background(), params)
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertExpense(dbExpense))
}

// @Summary Update expense
// @Description Update an existing expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body ExpenseRequest true "Updated expense data"
// @Success 200 {object} Expense "Updated expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id} [put]
func updateExpense(c *gin.Context) {
	id := c.Param("id")

	expenseUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	var request ExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateExpenseRequest(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createParams, err := buildExpenseParams(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generated.UpdateExpenseParams{
		ID:          pgtype.UUID{Bytes: expenseUUID, Valid: true},
		ExpenseDate: createParams.ExpenseDate,
		CategoryID:  createParams.CategoryID,
		Amount:      createParams.Amount,
		Currency:    createParams.Currency,
		PayerID:     createParams.PayerID,
		Location:    createParams.Location,
		SplitWith:   createParams.SplitWith,
	}

	dbExpense, err := queries.UpdateExpense(context.Background(), params)
	if err != nil {
		log.Printf("Error updating expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertExpense(dbExpense))
}

// @Summary Update expense split
// @Description Replace the set of members sharing a specific expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param split body object{split_with=[]string} true "Member ids sharing this expense"
// @Success 200 {object} Expense "Updated expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id}/split [put]
func updateExpenseSplit(c *gin.Context) {
	id := c.Param("id")
	var request struct {
		SplitWith []string `json:"split_with"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	expenseUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	splitUUIDs, err := convertUUIDStringsToArray(request.SplitWith)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing member UUIDs"})
		return
	}

	params := generated.UpdateExpenseSplitParams{
		ID:        pgtype.UUID{Bytes: expenseUUID, Valid: true},
		SplitWith: splitUUIDs,
	}

	dbExpense, err := queries.UpdateExpenseSplit(context.Background(), params)
	if err != nil {
		log.Printf("Error updating expense split: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertExpense(dbExpense))
}

// @Summary Delete single expense
// @Description Delete a specific expense by ID
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]interface{} "Expense deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id} [delete]
func deleteExpense(c *gin.Context) {
	expenseID := c.Param("id")
	if expenseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expense ID is required"})
		return
	}

	expenseUUID, err := uuid.Parse(expenseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID format"})
		return
	}

	err = queries.DeleteExpense(context.Background(), pgtype.UUID{Bytes: expenseUUID, Valid: true})
	if err != nil {
		log.Printf("Error deleting expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// @Summary Delete all expenses
// @Description Clear all active expenses
// @Tags expenses
// @Produce json
// @Success 200 {object} map[string]interface{} "All expenses cleared successfully"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [delete]
func clearAllExpenses(c *gin.Context) {
	err := queries.DeleteAllActiveExpenses(context.Background())
	if err != nil {
		log.Printf("Error clearing all expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error clearing expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All expenses cleared successfully"})
}

// @Summary Import expenses from CSV
// @Description Upload a CSV file of expenses (date,category,location,amount,currency,payer,split_with). Payer and split members are resolved by name; bad rows are skipped and counted.
// @Tags expenses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to upload"
// @Success 200 {object} map[string]interface{} "Import successful - returns message, expenses array, and skipped_rows count"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/import-csv [post]
func importCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading CSV file"})
		return
	}

	expenses := make([]Expense, 0)
	skippedRows := 0

	// Skip header row if present
	start := 0
	if len(records) > 0 && (records[0][0] == "Date" || records[0][0] == "date") {
		start = 1
	}

	for i := start; i < len(records); i++ {
		record := records[i]
		if len(record) < 6 { // Need at least: date,category,location,amount,currency,payer
			skippedRows++
			continue
		}

		expenseDate := record[0]
		csvCategory := record[1]
		location := record[2]
		currency := strings.ToUpper(strings.TrimSpace(record[4]))
		payerName := record[5]

		amount, err := strconv.ParseFloat(record[3], 64)
		if err != nil || amount <= 0 {
			skippedRows++
			continue
		}

		if err := validateCurrency(currency); err != nil {
			skippedRows++
			continue
		}

		if strings.TrimSpace(location) == "" || strings.TrimSpace(payerName) == "" {
			skippedRows++
			continue
		}

		payer, err := queries.GetMemberByName(context.Background(), strings.TrimSpace(payerName))
		if err != nil {
			log.Printf("Skipping row %d: unknown payer %q", i+1, payerName)
			skippedRows++
			continue
		}

		amountNumeric, err := numericFromFloat(amount)
		if err != nil {
			log.Printf("Error converting amount to numeric: %v", err)
			skippedRows++
			continue
		}

		params := generated.CreateExpenseParams{
			Amount:    amountNumeric,
			Currency:  currency,
			PayerID:   pgtype.UUID{Bytes: payer.ID.Bytes, Valid: true},
			Location:  location,
			SplitWith: []pgtype.UUID{},
		}

		if expenseDate != "" {
			if parsedDate, err := time.Parse("2006-01-02", expenseDate); err == nil {
				params.ExpenseDate = pgtype.Date{Time: parsedDate, Valid: true}
			}
		}

		// Map category if category mapping is available
		if categoryMapping != nil {
			if mappedCategory := categoryMapping.mapExpenseCategory(csvCategory); mappedCategory != nil {
				params.CategoryID = pgtype.UUID{Bytes: mappedCategory.ID.Bytes, Valid: mappedCategory.ID.Valid}
			}
		}

		// Optional 7th column: semicolon-separated member names sharing the
		// cost. Unknown names are skipped; an empty result leaves the
		// roster-wide fallback in effect.
		if len(record) >= 7 && strings.TrimSpace(record[6]) != "" {
			for _, name := range strings.Split(record[6], ";") {
				member, err := queries.GetMemberByName(context.Background(), strings.TrimSpace(name))
				if err != nil {
					log.Printf("Row %d: unknown split member %q", i+1, name)
					continue
				}
				params.SplitWith = append(params.SplitWith, pgtype.UUID{Bytes: member.ID.Bytes, Valid: true})
			}
		}

		// Check for duplicate expense before inserting
		duplicateParams := generated.FindDuplicateExpenseParams{
			Location:    location,
			Amount:      amountNumeric,
			Currency:    currency,
			ExpenseDate: params.ExpenseDate,
			PayerID:     params.PayerID,
		}

		count, err := queries.FindDuplicateExpense(context.Background(), duplicateParams)
		if err != nil {
			log.Printf("Error checking for duplicate expense: %v", err)
			skippedRows++
			continue
		}

		if count > 0 {
			log.Printf("Skipping duplicate expense: %s, amount: %f", location, amount)
			skippedRows++
			continue
		}

		dbExpense, err := queries.CreateExpense(context.Background(), params)
		if err != nil {
			log.Printf("Error inserting expense: %v", err)
			skippedRows++
			continue
		}

		expenses = append(expenses, convertExpense(dbExpense))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "CSV imported successfully",
		"expenses":     expenses,
		"skipped_rows": skippedRows,
	})
}

// buildExpenseParams converts a validated ExpenseRequest into insert params
func buildExpenseParams(request ExpenseRequest) (generated.CreateExpenseParams, error) {
	amountNumeric, err := numericFromFloat(request.Amount)
	if err != nil {
		return generated.CreateExpenseParams{}, err
	}

	payerUUID, err := uuid.Parse(request.PayerID)
	if err != nil {
		return generated.CreateExpenseParams{}, err
	}

	splitUUIDs, err := convertUUIDStringsToArray(request.SplitWith)
	if err != nil {
		return generated.CreateExpenseParams{}, err
	}

	params := generated.CreateExpenseParams{
		Amount:    amountNumeric,
		Currency:  request.Currency,
		PayerID:   pgtype.UUID{Bytes: payerUUID, Valid: true},
		Location:  request.Location,
		SplitWith: splitUUIDs,
	}

	if request.ExpenseDate != nil && *request.ExpenseDate != "" {
		if parsedDate, err := time.Parse("2006-01-02", *request.ExpenseDate); err == nil {
			params.ExpenseDate = pgtype.Date{Time: parsedDate, Valid: true}
		}
	}

	if request.CategoryID != nil && *request.CategoryID != "" {
		categoryUUID, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return generated.CreateExpenseParams{}, err
		}
		params.CategoryID = pgtype.UUID{Bytes: categoryUUID, Valid: true}
	}

	return params, nil
}
