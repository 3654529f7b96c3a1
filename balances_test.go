package main

import (
	"math"
	"net/http"
	"testing"
)

// End-to-end tests for the balance, settlement and totals endpoints. The
// engine math is covered in settlement_test.go; these verify the wiring
// from stored expenses and the stored rate through to the API.

// TestGetBalances tests the GET /api/balances endpoint
func TestGetBalances(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should return empty maps when no members exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/balances", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var report BalanceReport
		assertNoError(t, parseJSONResponse(resp, &report))

		if len(report.Balances) != 0 {
			t.Errorf("Expected no balances, got %v", report.Balances)
		}
	})

	t.Run("should compute balances from stored expenses", func(t *testing.T) {
		aliceID, err := createTestMember("Alice", "")
		assertNoError(t, err)
		bobID, err := createTestMember("Bob", "")
		assertNoError(t, err)

		_, err = createTestExpense(3000, "JPY", "Dinner", aliceID, nil)
		assertNoError(t, err)
		_, err = createTestExpense(1000, "JPY", "Drinks", bobID, nil)
		assertNoError(t, err)

		resp := makeRequest("GET", "/api/balances", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var report BalanceReport
		assertNoError(t, parseJSONResponse(resp, &report))

		if math.Abs(report.Balances[aliceID]-1000) > 0.01 {
			t.Errorf("Expected Alice's balance 1000, got %f", report.Balances[aliceID])
		}
		if math.Abs(report.Balances[bobID]+1000) > 0.01 {
			t.Errorf("Expected Bob's balance -1000, got %f", report.Balances[bobID])
		}
		if math.Abs(report.PaidTotals[aliceID]-3000) > 0.01 {
			t.Errorf("Expected Alice's paid total 3000, got %f", report.PaidTotals[aliceID])
		}
	})

	t.Run("should use the stored rate for TWD expenses", func(t *testing.T) {
		if err := cleanupTestData(); err != nil {
			t.Fatalf("Failed to cleanup test data: %v", err)
		}
		assertNoError(t, setTestExchangeRate("0.2"))

		aliceID, err := createTestMember("Alice", "")
		assertNoError(t, err)
		bobID, err := createTestMember("Bob", "")
		assertNoError(t, err)

		// 500 TWD at rate 0.2 = 2500 JPY, split two ways
		_, err = createTestExpense(500, "TWD", "Night market", aliceID, nil)
		assertNoError(t, err)

		resp := makeRequest("GET", "/api/balances", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var report BalanceReport
		assertNoError(t, parseJSONResponse(resp, &report))

		if math.Abs(report.Balances[aliceID]-1250) > 0.01 {
			t.Errorf("Expected Alice's balance 1250, got %f", report.Balances[aliceID])
		}
		if math.Abs(report.Balances[bobID]+1250) > 0.01 {
			t.Errorf("Expected Bob's balance -1250, got %f", report.Balances[bobID])
		}
	})
}

// TestGetSettlement tests the GET /api/settlement endpoint
func TestGetSettlement(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	aliceID, err := createTestMember("Alice", "")
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}
	bobID, err := createTestMember("Bob", "")
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	if _, err := createTestExpense(3000, "JPY", "Hotel", aliceID, nil); err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}
	if _, err := createTestExpense(1000, "JPY", "Breakfast", bobID, nil); err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	t.Run("should suggest a single payment from Bob to Alice", func(t *testing.T) {
		resp := makeRequest("GET", "/api/settlement", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var paths []SettlementPayment
		assertNoError(t, parseJSONResponse(resp, &paths))

		if len(paths) != 1 {
			t.Fatalf("Expected 1 payment, got %d", len(paths))
		}
		if paths[0].FromMemberName != "Bob" || paths[0].ToMemberName != "Alice" {
			t.Errorf("Expected Bob pays Alice, got %s pays %s", paths[0].FromMemberName, paths[0].ToMemberName)
		}
		if math.Abs(paths[0].Amount-1000) > 0.01 {
			t.Errorf("Expected payment of 1000, got %f", paths[0].Amount)
		}
		if paths[0].Currency != "JPY" {
			t.Errorf("Expected JPY display, got %s", paths[0].Currency)
		}
	})

	t.Run("should display amounts in TWD when requested", func(t *testing.T) {
		assertNoError(t, setTestExchangeRate("0.2"))

		resp := makeRequest("GET", "/api/settlement?currency=TWD", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var paths []SettlementPayment
		assertNoError(t, parseJSONResponse(resp, &paths))

		if len(paths) != 1 {
			t.Fatalf("Expected 1 payment, got %d", len(paths))
		}
		if paths[0].Currency != "TWD" {
			t.Errorf("Expected TWD display, got %s", paths[0].Currency)
		}
		if math.Abs(paths[0].Amount-200) > 0.01 {
			t.Errorf("Expected payment of 200 TWD, got %f", paths[0].Amount)
		}
		if paths[0].DisplayAmount != 200 {
			t.Errorf("Expected display amount 200, got %d", paths[0].DisplayAmount)
		}
	})

	t.Run("should accept lowercase currency parameter", func(t *testing.T) {
		resp := makeRequest("GET", "/api/settlement?currency=twd", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var paths []SettlementPayment
		assertNoError(t, parseJSONResponse(resp, &paths))

		if len(paths) != 1 || paths[0].Currency != "TWD" {
			t.Errorf("Expected TWD display for lowercase parameter, got %v", paths)
		}
	})

	t.Run("should return empty plan when everyone is settled", func(t *testing.T) {
		if err := cleanupTestData(); err != nil {
			t.Fatalf("Failed to cleanup test data: %v", err)
		}

		_, err := createTestMember("Alone", "")
		assertNoError(t, err)

		resp := makeRequest("GET", "/api/settlement", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var paths []SettlementPayment
		assertNoError(t, parseJSONResponse(resp, &paths))

		if len(paths) != 0 {
			t.Errorf("Expected empty plan, got %d payments", len(paths))
		}
	})
}

// TestGetTotals tests the GET /api/totals endpoint
func TestGetTotals(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should return zero totals when no expenses exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/totals", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var totals TripTotals
		assertNoError(t, parseJSONResponse(resp, &totals))

		if totals.TotalJpy != 0 || totals.TotalTwd != 0 {
			t.Errorf("Expected zero totals, got %+v", totals)
		}
	})

	t.Run("should aggregate per currency and combine through the rate", func(t *testing.T) {
		assertNoError(t, setTestExchangeRate("0.2"))

		aliceID, err := createTestMember("Alice", "")
		assertNoError(t, err)
		_, err = createTestMember("Bob", "")
		assertNoError(t, err)

		_, err = createTestExpense(5000, "JPY", "Hotel", aliceID, nil)
		assertNoError(t, err)
		_, err = createTestExpense(400, "TWD", "Taxi", aliceID, nil)
		assertNoError(t, err)

		resp := makeRequest("GET", "/api/totals", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var totals TripTotals
		assertNoError(t, parseJSONResponse(resp, &totals))

		if math.Abs(totals.TotalJpy-5000) > 0.01 {
			t.Errorf("Expected JPY total 5000, got %f", totals.TotalJpy)
		}
		if math.Abs(totals.TotalTwd-400) > 0.01 {
			t.Errorf("Expected TWD total 400, got %f", totals.TotalTwd)
		}
		if math.Abs(totals.TotalCombinedTwd-1400) > 0.01 {
			t.Errorf("Expected combined TWD 1400, got %f", totals.TotalCombinedTwd)
		}
		if math.Abs(totals.TotalCombinedJpy-7000) > 0.01 {
			t.Errorf("Expected combined JPY 7000, got %f", totals.TotalCombinedJpy)
		}
		if math.Abs(totals.AveragePerMember-3500) > 0.01 {
			t.Errorf("Expected average 3500, got %f", totals.AveragePerMember)
		}
	})
}
