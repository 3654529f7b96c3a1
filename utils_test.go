package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Run("valid name passes", func(t *testing.T) {
		assert.NoError(t, validateName("Alice"))
	})

	t.Run("empty name fails", func(t *testing.T) {
		assert.Error(t, validateName(""))
	})

	t.Run("whitespace-only name fails", func(t *testing.T) {
		assert.Error(t, validateName("   "))
	})

	t.Run("name with surrounding whitespace passes", func(t *testing.T) {
		assert.NoError(t, validateName("  Alice  "))
	})
}

func TestValidateHexColor(t *testing.T) {
	t.Run("valid hex color passes", func(t *testing.T) {
		assert.NoError(t, validateHexColor("#FF5733"))
	})

	t.Run("lowercase hex color passes", func(t *testing.T) {
		assert.NoError(t, validateHexColor("#ff5733"))
	})

	t.Run("empty color is allowed", func(t *testing.T) {
		assert.NoError(t, validateHexColor(""))
	})

	t.Run("missing hash fails", func(t *testing.T) {
		assert.Error(t, validateHexColor("FF5733"))
	})

	t.Run("short hex fails", func(t *testing.T) {
		assert.Error(t, validateHexColor("#FFF"))
	})

	t.Run("non-hex characters fail", func(t *testing.T) {
		assert.Error(t, validateHexColor("#GGGGGG"))
	})
}

func TestValidateCurrency(t *testing.T) {
	t.Run("JPY is supported", func(t *testing.T) {
		assert.NoError(t, validateCurrency("JPY"))
	})

	t.Run("TWD is supported", func(t *testing.T) {
		assert.NoError(t, validateCurrency("TWD"))
	})

	t.Run("other currencies are rejected", func(t *testing.T) {
		assert.Error(t, validateCurrency("USD"))
		assert.Error(t, validateCurrency("EUR"))
	})

	t.Run("lowercase codes are rejected", func(t *testing.T) {
		assert.Error(t, validateCurrency("jpy"))
	})

	t.Run("empty currency is rejected", func(t *testing.T) {
		assert.Error(t, validateCurrency(""))
	})
}

func TestValidateExpenseRequest(t *testing.T) {
	validRequest := func() ExpenseRequest {
		return ExpenseRequest{
			Amount:   1200,
			Currency: "JPY",
			PayerID:  uuid.New().String(),
			Location: "Ramen shop",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateExpenseRequest(validRequest()))
	})

	t.Run("zero amount fails", func(t *testing.T) {
		req := validRequest()
		req.Amount = 0
		assert.Error(t, validateExpenseRequest(req))
	})

	t.Run("negative amount fails", func(t *testing.T) {
		req := validRequest()
		req.Amount = -500
		assert.Error(t, validateExpenseRequest(req))
	})

	t.Run("empty location fails", func(t *testing.T) {
		req := validRequest()
		req.Location = "  "
		assert.Error(t, validateExpenseRequest(req))
	})

	t.Run("missing payer fails", func(t *testing.T) {
		req := validRequest()
		req.PayerID = ""
		assert.Error(t, validateExpenseRequest(req))
	})

	t.Run("unsupported currency fails", func(t *testing.T) {
		req := validRequest()
		req.Currency = "USD"
		assert.Error(t, validateExpenseRequest(req))
	})
}

func TestHandleDatabaseError(t *testing.T) {
	t.Run("member unique violation maps to conflict", func(t *testing.T) {
		err := errString(`ERROR: duplicate key value violates unique constraint "members_name_key" (SQLSTATE 23505)`)

		status, message := handleDatabaseError(err)

		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, message, "Member")
	})

	t.Run("category unique violation maps to conflict", func(t *testing.T) {
		err := errString(`ERROR: duplicate key value violates unique constraint "categories_name_key" (SQLSTATE 23505)`)

		status, message := handleDatabaseError(err)

		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, message, "Category")
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := errString("no rows in result set")

		status, _ := handleDatabaseError(err)

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown errors map to internal server error", func(t *testing.T) {
		err := errString("connection refused")

		status, _ := handleDatabaseError(err)

		assert.Equal(t, http.StatusInternalServerError, status)
	})
}

type errString string

func (e errString) Error() string { return string(e) }

func TestConvertUUIDStringsToArray(t *testing.T) {
	t.Run("empty array returns empty slice", func(t *testing.T) {
		result, err := convertUUIDStringsToArray([]string{})

		require.NoError(t, err)
		assert.Equal(t, []pgtype.UUID{}, result)
		assert.Len(t, result, 0)
	})

	t.Run("nil array returns empty slice", func(t *testing.T) {
		result, err := convertUUIDStringsToArray(nil)

		require.NoError(t, err)
		assert.Equal(t, []pgtype.UUID{}, result)
		assert.Len(t, result, 0)
	})

	t.Run("single valid UUID string returns pgtype.UUID", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := convertUUIDStringsToArray([]string{testUUID.String()})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, testUUID, uuid.UUID(result[0].Bytes))
		assert.True(t, result[0].Valid)
	})

	t.Run("multiple valid UUID strings return pgtype.UUIDs", func(t *testing.T) {
		uuid1 := uuid.New()
		uuid2 := uuid.New()

		result, err := convertUUIDStringsToArray([]string{uuid1.String(), uuid2.String()})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, uuid1, uuid.UUID(result[0].Bytes))
		assert.Equal(t, uuid2, uuid.UUID(result[1].Bytes))
	})

	t.Run("invalid UUID string returns error", func(t *testing.T) {
		result, err := convertUUIDStringsToArray([]string{"not-a-valid-uuid"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid UUID format")
		assert.Contains(t, err.Error(), "not-a-valid-uuid")
	})

	t.Run("first invalid UUID returns error without processing remaining", func(t *testing.T) {
		result, err := convertUUIDStringsToArray([]string{"invalid-uuid", uuid.New().String()})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("empty string UUID returns error", func(t *testing.T) {
		result, err := convertUUIDStringsToArray([]string{""})

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("uppercase UUID strings are handled correctly", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := convertUUIDStringsToArray([]string{strings.ToUpper(testUUID.String())})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, testUUID, uuid.UUID(result[0].Bytes))
	})
}

func TestConvertUUIDArrayToStrings(t *testing.T) {
	t.Run("empty array returns empty slice", func(t *testing.T) {
		result := convertUUIDArrayToStrings([]pgtype.UUID{})

		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})

	t.Run("valid UUIDs round-trip to strings", func(t *testing.T) {
		uuid1 := uuid.New()
		uuid2 := uuid.New()
		input := []pgtype.UUID{
			{Bytes: uuid1, Valid: true},
			{Bytes: uuid2, Valid: true},
		}

		result := convertUUIDArrayToStrings(input)

		assert.Equal(t, []string{uuid1.String(), uuid2.String()}, result)
	})

	t.Run("invalid entries are skipped", func(t *testing.T) {
		valid := uuid.New()
		input := []pgtype.UUID{
			{Bytes: valid, Valid: true},
			{Valid: false},
		}

		result := convertUUIDArrayToStrings(input)

		assert.Equal(t, []string{valid.String()}, result)
	})
}

func TestNumericConversions(t *testing.T) {
	t.Run("float round-trips through numeric", func(t *testing.T) {
		numeric, err := numericFromFloat(1234.56)

		require.NoError(t, err)
		assert.True(t, numeric.Valid)
		assert.InDelta(t, 1234.56, floatFromNumeric(numeric), 1e-9)
	})

	t.Run("amount is formatted to two decimal places", func(t *testing.T) {
		numeric, err := numericFromFloat(10.239)

		require.NoError(t, err)
		assert.InDelta(t, 10.24, floatFromNumeric(numeric), 1e-9)
	})

	t.Run("invalid numeric converts to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, floatFromNumeric(pgtype.Numeric{}))
	})
}
