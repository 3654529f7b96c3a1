package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Balance, settlement and totals handlers. These are thin wrappers: they
// load the current roster, active expenses and rate, and hand everything
// to the settlement engine. Nothing is cached between requests.

// loadEngineInputs fetches the members and active expenses in API form
func loadEngineInputs() ([]Member, []Expense, error) {
	dbMembers, err := queries.GetMembers(context.Background())
	if err != nil {
		return nil, nil, err
	}
	members := make([]Member, 0, len(dbMembers))
	for _, m := range dbMembers {
		members = append(members, convertMember(m))
	}

	dbExpenses, err := queries.GetActiveExpenses(context.Background())
	if err != nil {
		return nil, nil, err
	}
	expenses := make([]Expense, 0, len(dbExpenses))
	for _, e := range dbExpenses {
		expenses = append(expenses, convertExpense(e))
	}

	return members, expenses, nil
}

// @Summary Get member balances
// @Description Compute each member's net balance and paid total in JPY-equivalent units from the active expenses. Positive balance means the member is owed money.
// @Tags balances
// @Produce json
// @Success 200 {object} BalanceReport "Balances and paid totals keyed by member id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balances [get]
func getBalances(c *gin.Context) {
	members, expenses, err := loadEngineInputs()
	if err != nil {
		log.Printf("Error loading balance inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing balances"})
		return
	}

	balances, paidTotals := computeBalances(members, expenses, currentExchangeRate())

	c.JSON(http.StatusOK, BalanceReport{
		Balances:   balances,
		PaidTotals: paidTotals,
	})
}

// @Summary Get settlement plan
// @Description Compute an ordered list of payments that settles all debts. Amounts are JPY by default; pass ?currency=TWD for TWD display.
// @Tags balances
// @Produce json
// @Param currency query string false "Display currency (JPY or TWD)" default(JPY)
// @Success 200 {array} SettlementPayment "Suggested payments, largest debts first"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settlement [get]
func getSettlement(c *gin.Context) {
	members, expenses, err := loadEngineInputs()
	if err != nil {
		log.Printf("Error loading settlement inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing settlement"})
		return
	}

	displayCurrency := strings.ToUpper(c.DefaultQuery("currency", currencyJPY))
	rate := currentExchangeRate()

	balances, _ := computeBalances(members, expenses, rate)
	paths := computeSettlementPaths(members, balances, displayCurrency, rate)

	c.JSON(http.StatusOK, paths)
}

// @Summary Get trip totals
// @Description Aggregate spend per currency plus combined totals and the average per member
// @Tags balances
// @Produce json
// @Success 200 {object} TripTotals "Totals for the active expenses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/totals [get]
func getTotals(c *gin.Context) {
	members, expenses, err := loadEngineInputs()
	if err != nil {
		log.Printf("Error loading totals inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating totals"})
		return
	}

	totals := computeTotals(expenses, currentExchangeRate(), len(members))

	c.JSON(http.StatusOK, totals)
}
