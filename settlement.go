package main

import (
	"math"
	"sort"
	"strconv"
)

// Settlement engine: pure functions over in-memory members/expenses.
// Balances are always recomputed from scratch so they cannot drift from
// the expense list. All amounts are accounted internally in JPY-equivalent
// units; rounding happens only for display.

const (
	currencyJPY = "JPY"
	currencyTWD = "TWD"

	// defaultExchangeRate is the JPY->TWD fallback used when the stored
	// rate cannot be parsed or is not a positive number.
	defaultExchangeRate = 0.23

	// settlementEpsilon is the JPY threshold below which a balance is
	// considered settled. Kept as a constant so other denominations can
	// tune it.
	settlementEpsilon = 0.1
)

// parseExchangeRate parses a stored rate string, falling back to the
// default so downstream math never sees NaN or a non-positive rate.
func parseExchangeRate(raw string) float64 {
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultExchangeRate
	}
	return sanitizeRate(rate)
}

// sanitizeRate guards numeric rate inputs the same way
func sanitizeRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return defaultExchangeRate
	}
	return rate
}

// sanitizeAmount treats non-finite amounts as zero contribution
func sanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// toJpyEquivalent converts an expense amount to JPY-equivalent units.
// JPY amounts pass through; TWD amounts are divided by the JPY->TWD rate.
func toJpyEquivalent(amount float64, currency string, rate float64) float64 {
	amount = sanitizeAmount(amount)
	if currency == currencyTWD {
		return amount / sanitizeRate(rate)
	}
	return amount
}

// computeBalances returns each member's net balance and paid total in
// JPY-equivalent units. Positive balance means the member is owed money.
//
// For every expense the payer is credited with the full converted amount
// and each split participant is debited an equal per-head share. An
// expense with an empty split list falls back to splitting across all
// current members; this is a per-computation default, not stored state,
// so roster edits change historical splits for such expenses. Unknown
// payer or participant ids are dropped from the maps. Malformed expenses
// contribute nothing; this function never fails.
func computeBalances(members []Member, expenses []Expense, rate float64) (map[string]float64, map[string]float64) {
	rate = sanitizeRate(rate)

	balances := make(map[string]float64, len(members))
	paidTotals := make(map[string]float64, len(members))
	allIDs := make([]string, 0, len(members))
	for _, m := range members {
		balances[m.ID] = 0
		paidTotals[m.ID] = 0
		allIDs = append(allIDs, m.ID)
	}

	for _, e := range expenses {
		jpy := toJpyEquivalent(e.Amount, e.Currency, rate)

		if _, known := balances[e.PayerID]; known {
			balances[e.PayerID] += jpy
			paidTotals[e.PayerID] += jpy
		}

		participants := e.SplitWith
		if len(participants) == 0 {
			participants = allIDs
		}
		if len(participants) == 0 {
			continue
		}

		share := jpy / float64(len(participants))
		for _, id := range participants {
			if _, known := balances[id]; known {
				balances[id] -= share
			}
		}
	}

	return balances, paidTotals
}

type settlementEntry struct {
	id      string
	name    string
	balance float64
}

// computeSettlementPaths turns balances into an ordered list of payments
// that zeroes every balance (within epsilon). Greedy largest-first
// matching: at most creditors+debtors-1 transfers, not necessarily the
// theoretical minimum. Inputs are never mutated; the cursor loop works on
// local copies.
func computeSettlementPaths(members []Member, balances map[string]float64, displayCurrency string, rate float64) []SettlementPayment {
	rate = sanitizeRate(rate)
	if displayCurrency != currencyTWD {
		displayCurrency = currencyJPY
	}

	var creditors, debtors []settlementEntry
	for _, m := range members {
		b := sanitizeAmount(balances[m.ID])
		switch {
		case b > settlementEpsilon:
			creditors = append(creditors, settlementEntry{id: m.ID, name: m.Name, balance: b})
		case b < -settlementEpsilon:
			debtors = append(debtors, settlementEntry{id: m.ID, name: m.Name, balance: b})
		}
	}

	// Largest creditor first, most negative debtor first. Name breaks
	// ties so the plan is deterministic.
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].name < creditors[j].name
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].name < debtors[j].name
	})

	paths := make([]SettlementPayment, 0)
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := math.Min(creditors[i].balance, -debtors[j].balance)

		if amount > settlementEpsilon {
			display := amount
			if displayCurrency == currencyTWD {
				display = amount * rate
			}
			paths = append(paths, SettlementPayment{
				FromMemberID:   debtors[j].id,
				FromMemberName: debtors[j].name,
				ToMemberID:     creditors[i].id,
				ToMemberName:   creditors[i].name,
				Amount:         display,
				DisplayAmount:  int64(math.Round(display)),
				Currency:       displayCurrency,
			})
		}

		creditors[i].balance -= amount
		debtors[j].balance += amount

		if creditors[i].balance <= settlementEpsilon {
			i++
		}
		if debtors[j].balance >= -settlementEpsilon {
			j++
		}
	}

	return paths
}

// computeTotals aggregates raw spend. JPY and TWD totals are kept
// separate; the combined figures convert through the rate. The average
// divides the combined JPY-equivalent by the member count and is 0 for an
// empty roster rather than a division error.
func computeTotals(expenses []Expense, rate float64, memberCount int) TripTotals {
	rate = sanitizeRate(rate)

	var totals TripTotals
	for _, e := range expenses {
		amount := sanitizeAmount(e.Amount)
		if e.Currency == currencyTWD {
			totals.TotalTwd += amount
		} else {
			totals.TotalJpy += amount
		}
	}

	totals.TotalCombinedTwd = totals.TotalJpy*rate + totals.TotalTwd
	totals.TotalCombinedJpy = totals.TotalJpy + totals.TotalTwd/rate
	if memberCount > 0 {
		totals.AveragePerMember = totals.TotalCombinedJpy / float64(memberCount)
	}

	return totals
}
