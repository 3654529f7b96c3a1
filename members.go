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

// Member handler functions

// @Summary Get all members
// @Description Retrieve the trip member roster
// @Tags members
// @Produce json
// @Success 200 {array} Member "List of members"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/members [get]
func getMembers(c *gin.Context) {
	dbMembers, err := queries.GetMembers(context.Background())
	if err != nil {
		log.Printf("Error fetching members: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching members"})
		return
	}

	var members []Member
	for _, dbMember := range dbMembers {
		members = append(members, convertMember(dbMember))
	}

	c.JSON(http.StatusOK, members)
}

// @Summary Create member
// @Description Add a new member to the trip roster
// @Tags members
// @Accept json
// @Produce json
// @Param member body Member true "Member data (name required, color/note optional)"
// @Success 201 {object} Member "Created member"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Member already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/members [post]
func createMember(c *gin.Context) {
	var memberRequest Member
	if err := c.ShouldBindJSON(&memberRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Validate required fields
	if err := validateName(memberRequest.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if memberRequest.Color != nil {
		if err := validateHexColor(*memberRequest.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	params := generated.CreateMemberParams{
		Name: memberRequest.Name,
	}

	if memberRequest.Color != nil && *memberRequest.Color != "" {
		params.Color = pgtype.Text{String: *memberRequest.Color, Valid: true}
	}
	if memberRequest.Note != nil && *memberRequest.Note != "" {
		params.Note = pgtype.Text{String: *memberRequest.Note, Valid: true}
	}

	dbMember, err := queries.CreateMember(context.Background(), params)
	if err != nil {
		log.Printf("Error creating member: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertMember(dbMember))
}

// @Summary Update member
// @Description Update a member's name, color tag or note
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body Member true "Updated member data"
// @Success 200 {object} Member "Updated member"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/members/{id} [put]
func updateMember(c *gin.Context) {
	id := c.Param("id")

	memberUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var memberRequest Member
	if err := c.ShouldBindJSON(&memberRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(memberRequest.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if memberRequest.Color != nil {
		if err := validateHexColor(*memberRequest.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	params := generated.UpdateMemberParams{
		ID:   pgtype.UUID{Bytes: memberUUID, Valid: true},
		Name: memberRequest.Name,
	}

	if memberRequest.Color != nil && *memberRequest.Color != "" {
		params.Color = pgtype.Text{String: *memberRequest.Color, Valid: true}
	}
	if memberRequest.Note != nil && *memberRequest.Note != "" {
		params.Note = pgtype.Text{String: *memberRequest.Note, Valid: true}
	}

	dbMember, err := queries.UpdateMember(context.Background(), params)
	if err != nil {
		log.Printf("Error updating member: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertMember(dbMember))
}

// @Summary Delete member
// @Description Delete a member from the roster. The member's expenses are kept; balance computations simply stop attributing shares to the removed id.
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{} "Member deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/members/{id} [delete]
func deleteMember(c *gin.Context) {
	id := c.Param("id")

	memberUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	memberUUIDpg := pgtype.UUID{Bytes: memberUUID, Valid: true}

	// First, get the member to ensure they exist
	_, err = queries.GetMemberByID(context.Background(), memberUUIDpg)
	if err != nil {
		log.Printf("Error finding member: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	// Expenses referencing this member are intentionally left untouched:
	// the settlement engine ignores ids that are no longer on the roster.
	err = queries.DeleteMember(context.Background(), memberUUIDpg)
	if err != nil {
		log.Printf("Error deleting member: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
