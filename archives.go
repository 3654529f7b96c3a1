package main

import (
	"context"
	"log"
	"net/http"

	"tripsplit/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Archive handler functions

// @Summary Create archive
// @Description Close out the current trip: move all active expenses under a new archive and snapshot each member's paid total and net balance. Snapshots survive later roster edits.
// @Tags archives
// @Accept json
// @Produce json
// @Param archive body ArchiveRequest true "Archive data with description"
// @Success 201 {object} Archive "Created archive with frozen member balances"
// @Failure 400 {object} map[string]interface{} "Bad request (no expenses to archive or invalid data)"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/archives [post]
func createArchive(c *gin.Context) {
	var request ArchiveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	members, expenses, err := loadEngineInputs()
	if err != nil {
		log.Printf("Error loading archive inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching active expenses"})
		return
	}

	if len(expenses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no active expenses"})
		return
	}

	// Freeze the engine outputs at archive time
	rate := currentExchangeRate()
	balances, paidTotals := computeBalances(members, expenses, rate)
	totals := computeTotals(expenses, rate, len(members))

	var descText pgtype.Text
	if request.Description != "" {
		descText = pgtype.Text{String: request.Description, Valid: true}
	}

	totalJpyNumeric, err := numericFromFloat(totals.TotalJpy)
	if err != nil {
		log.Printf("Error converting total: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing totals"})
		return
	}
	totalTwdNumeric, err := numericFromFloat(totals.TotalTwd)
	if err != nil {
		log.Printf("Error converting total: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing totals"})
		return
	}

	archive, err := queries.CreateArchive(context.Background(), generated.CreateArchiveParams{
		Description:  descText,
		ExpenseCount: int32(len(expenses)),
		TotalJpy:     totalJpyNumeric,
		TotalTwd:     totalTwdNumeric,
	})
	if err != nil {
		log.Printf("Error creating archive: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	archiveID := pgtype.UUID{Bytes: archive.ID.Bytes, Valid: true}
	err = queries.ArchiveExpenses(context.Background(), archiveID)
	if err != nil {
		log.Printf("Error archiving expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error archiving expenses"})
		return
	}

	// Store each member's frozen position for this archive
	var memberBalances []MemberBalanceSnapshot
	for _, member := range members {
		memberUUID, err := uuid.Parse(member.ID)
		if err != nil {
			log.Printf("Error parsing member id %s: %v", member.ID, err)
			continue
		}

		paidNumeric, err := numericFromFloat(paidTotals[member.ID])
		if err != nil {
			log.Printf("Error converting paid total for %s: %v", member.Name, err)
			continue
		}
		balanceNumeric, err := numericFromFloat(balances[member.ID])
		if err != nil {
			log.Printf("Error converting balance for %s: %v", member.Name, err)
			continue
		}

		_, err = queries.CreateArchiveMemberBalance(context.Background(), generated.CreateArchiveMemberBalanceParams{
			ArchiveID:  archiveID,
			MemberID:   pgtype.UUID{Bytes: memberUUID, Valid: true},
			MemberName: member.Name,
			PaidTotal:  paidNumeric,
			Balance:    balanceNumeric,
		})
		if err != nil {
			log.Printf("Error creating member balance for %s: %v", member.Name, err)
			continue
		}

		memberBalances = append(memberBalances, MemberBalanceSnapshot{
			MemberID:   member.ID,
			MemberName: member.Name,
			PaidTotal:  paidTotals[member.ID],
			Balance:    balances[member.ID],
		})
	}

	archiveResponse := Archive{
		ID:             uuid.UUID(archive.ID.Bytes).String(),
		ArchivedAt:     archive.ArchivedAt.Time,
		ExpenseCount:   int(archive.ExpenseCount),
		TotalJpy:       floatFromNumeric(archive.TotalJpy),
		TotalTwd:       floatFromNumeric(archive.TotalTwd),
		MemberBalances: memberBalances,
		CreatedAt:      archive.CreatedAt.Time,
		UpdatedAt:      archive.UpdatedAt.Time,
	}

	if archive.Description.Valid {
		archiveResponse.Description = &archive.Description.String
	}

	c.JSON(http.StatusCreated, archiveResponse)
}

// @Summary Get all archives
// @Description Retrieve all archives with their frozen member balances
// @Tags archives
// @Produce json
// @Success 200 {array} Archive "List of archives with expense counts and member balances"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/archives [get]
func getArchives(c *gin.Context) {
	dbArchives, err := queries.GetArchives(context.Background())
	if err != nil {
		log.Printf("Error fetching archives: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching archives"})
		return
	}

	var archives []Archive
	for _, dbArchive := range dbArchives {
		dbBalances, err := queries.GetArchiveMemberBalances(context.Background(), dbArchive.ID)
		if err != nil {
			log.Printf("Error fetching member balances for archive %s: %v", uuid.UUID(dbArchive.ID.Bytes).String(), err)
			// Continue without member balances rather than failing
		}

		var memberBalances []MemberBalanceSnapshot
		for _, dbBalance := range dbBalances {
			memberBalances = append(memberBalances, MemberBalanceSnapshot{
				MemberID:   uuid.UUID(dbBalance.MemberID.Bytes).String(),
				MemberName: dbBalance.MemberName,
				PaidTotal:  floatFromNumeric(dbBalance.PaidTotal),
				Balance:    floatFromNumeric(dbBalance.Balance),
			})
		}

		archive := Archive{
			ID:             uuid.UUID(dbArchive.ID.Bytes).String(),
			ArchivedAt:     dbArchive.ArchivedAt.Time,
			ExpenseCount:   int(dbArchive.ExpenseCount),
			TotalJpy:       floatFromNumeric(dbArchive.TotalJpy),
			TotalTwd:       floatFromNumeric(dbArchive.TotalTwd),
			MemberBalances: memberBalances,
			CreatedAt:      dbArchive.CreatedAt.Time,
			UpdatedAt:      dbArchive.UpdatedAt.Time,
		}

		if dbArchive.Description.Valid {
			archive.Description = &dbArchive.Description.String
		}

		archives = append(archives, archive)
	}

	c.JSON(http.StatusOK, archives)
}

// @Summary Get archive expenses
// @Description Get all expenses for a specific archive by archive ID
// @Tags archives
// @Produce json
// @Param id path string true "Archive ID"
// @Success 200 {array} Expense "List of archived expenses"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Archive not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/archives/{id}/expenses [get]
func getArchiveExpenses(c *gin.Context) {
	id := c.Param("id")

	archiveUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid archive ID"})
		return
	}

	// Check if archive exists
	_, err = queries.GetArchiveByID(context.Background(), pgtype.UUID{Bytes: archiveUUID, Valid: true})
	if err != nil {
		log.Printf("Error fetching archive: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
		return
	}

	dbExpenses, err := queries.GetArchivedExpenses(context.Background(), pgtype.UUID{Bytes: archiveUUID, Valid: true})
	if err != nil {
		log.Printf("Error fetching archived expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching archived expenses"})
		return
	}

	expenses := make([]Expense, 0)
	for _, e := range dbExpenses {
		expenses = append(expenses, convertExpense(e))
	}

	c.JSON(http.StatusOK, expenses)
}
