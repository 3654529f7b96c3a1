package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"tripsplit/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

var (
	testDB      *pgxpool.Pool
	testQueries *generated.Queries
	testRouter  *gin.Engine
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)

	// Setup test database
	if err := setupTestDB(); err != nil {
		log.Fatalf("Failed to setup test database: %v", err)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if err := teardownTestDB(); err != nil {
		log.Printf("Failed to cleanup test database: %v", err)
	}

	os.Exit(code)
}

// setupTestDB creates a test database and runs migrations
func setupTestDB() error {
	// Use test database configuration
	dbHost := getEnvOrDefault("TEST_DB_HOST", "localhost")
	dbPort := getEnvOrDefault("TEST_DB_PORT", "5433")
	dbUser := getEnvOrDefault("TEST_DB_USER", "postgres")
	dbPassword := getEnvOrDefault("TEST_DB_PASSWORD", "password")
	dbName := getEnvOrDefault("TEST_DB_NAME", "tripsplit_test")

	// Create test database if it doesn't exist
	adminConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword)

	adminDB, err := sql.Open("postgres", adminConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to admin database: %w", err)
	}
	defer adminDB.Close()

	// Drop and recreate test database for clean state
	_, err = adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName))
	if err != nil {
		return fmt.Errorf("failed to drop test database: %w", err)
	}

	_, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName))
	if err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}

	// Connect to test database
	testConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	testDB, err = pgxpool.New(context.Background(), testConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to test database: %w", err)
	}

	// Run migrations
	testSQLDB, err := sql.Open("postgres", testConnStr)
	if err != nil {
		return fmt.Errorf("failed to create SQL connection for migrations: %w", err)
	}
	defer testSQLDB.Close()

	if err := runMigrations(testSQLDB, "db/migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize test queries
	testQueries = generated.New(testDB)

	// Setup test router
	setupTestRouter()

	return nil
}

// teardownTestDB cleans up the test database
func teardownTestDB() error {
	if testDB != nil {
		testDB.Close()
	}
	return nil
}

// setupTestRouter configures the test router with all routes
func setupTestRouter() {
	// Set global variables for testing
	dbPool = testDB
	queries = testQueries

	// CSV import needs the mapping from the seeded categories
	mapping, err := initializeCategoryMapping()
	if err != nil {
		log.Printf("Failed to initialize category mapping: %v", err)
	}
	categoryMapping = mapping

	testRouter = gin.New()

	// Add routes (same as main function)
	testRouter.GET("/api/members", getMembers)
	testRouter.POST("/api/members", createMember)
	testRouter.PUT("/api/members/:id", updateMember)
	testRouter.DELETE("/api/members/:id", deleteMember)
	testRouter.GET("/api/categories", getCategories)
	testRouter.POST("/api/categories", createCategory)
	testRouter.PUT("/api/categories/:id", updateCategory)
	testRouter.DELETE("/api/categories/:id", deleteCategory)
	testRouter.GET("/api/expenses", getExpenses)
	testRouter.POST("/api/expenses", createExpense)
	testRouter.PUT("/api/expenses/:id", updateExpense)
	testRouter.PUT("/api/expenses/:id/split", updateExpenseSplit)
	testRouter.DELETE("/api/expenses/:id", deleteExpense)
	testRouter.DELETE("/api/expenses", clearAllExpenses)
	testRouter.POST("/api/import-csv", importCSV)
	testRouter.GET("/api/settings", getSettings)
	testRouter.PUT("/api/settings", updateSettings)
	testRouter.GET("/api/balances", getBalances)
	testRouter.GET("/api/settlement", getSettlement)
	testRouter.GET("/api/totals", getTotals)
	testRouter.POST("/api/archives", createArchive)
	testRouter.GET("/api/archives", getArchives)
	testRouter.GET("/api/archives/:id/expenses", getArchiveExpenses)
}

// cleanupTestData removes all data from test tables and resets the rate
func cleanupTestData() error {
	ctx := context.Background()

	// Clean in reverse dependency order
	if _, err := testDB.Exec(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("failed to clean expenses: %w", err)
	}

	if _, err := testDB.Exec(ctx, "DELETE FROM archive_member_balances"); err != nil {
		return fmt.Errorf("failed to clean archive member balances: %w", err)
	}

	if _, err := testDB.Exec(ctx, "DELETE FROM archives"); err != nil {
		return fmt.Errorf("failed to clean archives: %w", err)
	}

	if _, err := testDB.Exec(ctx, "DELETE FROM members"); err != nil {
		return fmt.Errorf("failed to clean members: %w", err)
	}

	if _, err := testDB.Exec(ctx, "UPDATE trip_settings SET exchange_rate = '0.23' WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset trip settings: %w", err)
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// createTestMember creates a test member and returns the ID
func createTestMember(name, color string) (string, error) {
	var colorText pgtype.Text
	if color != "" {
		colorText = pgtype.Text{String: color, Valid: true}
	}

	member, err := testQueries.CreateMember(context.Background(), generated.CreateMemberParams{
		Name:  name,
		Color: colorText,
	})
	if err != nil {
		return "", err
	}

	return uuid.UUID(member.ID.Bytes).String(), nil
}

// createTestExpense creates a test expense and returns the ID
func createTestExpense(amount float64, currency, location, payerID string, splitWith []string) (string, error) {
	amountNumeric, err := numericFromFloat(amount)
	if err != nil {
		return "", err
	}

	payerUUID, err := uuid.Parse(payerID)
	if err != nil {
		return "", err
	}

	splitUUIDs, err := convertUUIDStringsToArray(splitWith)
	if err != nil {
		return "", err
	}

	expense, err := testQueries.CreateExpense(context.Background(), generated.CreateExpenseParams{
		Amount:    amountNumeric,
		Currency:  currency,
		PayerID:   pgtype.UUID{Bytes: payerUUID, Valid: true},
		Location:  location,
		SplitWith: splitUUIDs,
	})
	if err != nil {
		return "", err
	}

	return uuid.UUID(expense.ID.Bytes).String(), nil
}

// setTestExchangeRate stores the given rate string directly
func setTestExchangeRate(rate string) error {
	_, err := testQueries.UpdateExchangeRate(context.Background(), rate)
	return err
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeMultipartRequest helper function for making multipart requests (file uploads)
func makeMultipartRequest(url string, fieldName, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		panic(err)
	}

	part.Write(fileContent)
	writer.Close()

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// assertError helper function to assert an error occurred
func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected an error, but got nil")
	}
}
