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

// Category handler functions

// @Summary Get all categories
// @Description Retrieve all expense categories
// @Tags categories
// @Produce json
// @Success 200 {array} Category "List of categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	dbCategories, err := queries.GetCategories(context.Background())
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	var categories []Category
	for _, dbCategory := range dbCategories {
		categories = append(categories, convertCategory(dbCategory))
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Description Create a new expense category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body Category true "Category data (name required, description/color optional)"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	var categoryRequest Category
	if err := c.ShouldBindJSON(&categoryRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(categoryRequest.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if categoryRequest.Color != nil {
		if err := validateHexColor(*categoryRequest.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	params := generated.CreateCategoryParams{
		Name: categoryRequest.Name,
	}

	if categoryRequest.Description != nil && *categoryRequest.Description != "" {
		params.Description = pgtype.Text{String: *categoryRequest.Description, Valid: true}
	}
	if categoryRequest.Color != nil && *categoryRequest.Color != "" {
		params.Color = pgtype.Text{String: *categoryRequest.Color, Valid: true}
	}

	dbCategory, err := queries.CreateCategory(context.Background(), params)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	// Refresh the import mapping so new categories are picked up
	if mapping, err := initializeCategoryMapping(); err == nil {
		categoryMapping = mapping
	}

	c.JSON(http.StatusCreated, convertCategory(dbCategory))
}

// @Summary Update category
// @Description Update an existing expense category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body Category true "Updated category data"
// @Success 200 {object} Category "Updated category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [put]
func updateCategory(c *gin.Context) {
	id := c.Param("id")

	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var categoryRequest Category
	if err := c.ShouldBindJSON(&categoryRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(categoryRequest.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if categoryRequest.Color != nil {
		if err := validateHexColor(*categoryRequest.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	params := generated.UpdateCategoryParams{
		ID:   pgtype.UUID{Bytes: categoryUUID, Valid: true},
		Name: categoryRequest.Name,
	}

	if categoryRequest.Description != nil && *categoryRequest.Description != "" {
		params.Description = pgtype.Text{String: *categoryRequest.Description, Valid: true}
	}
	if categoryRequest.Color != nil && *categoryRequest.Color != "" {
		params.Color = pgtype.Text{String: *categoryRequest.Color, Valid: true}
	}

	dbCategory, err := queries.UpdateCategory(context.Background(), params)
	if err != nil {
		log.Printf("Error updating category: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	if mapping, err := initializeCategoryMapping(); err == nil {
		categoryMapping = mapping
	}

	c.JSON(http.StatusOK, convertCategory(dbCategory))
}

// @Summary Delete category
// @Description Delete a specific category by ID. Expenses in this category keep their rows with the category cleared.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [delete]
func deleteCategory(c *gin.Context) {
	id := c.Param("id")

	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	categoryUUIDpg := pgtype.UUID{Bytes: categoryUUID, Valid: true}

	_, err = queries.GetCategoryByID(context.Background(), categoryUUIDpg)
	if err != nil {
		log.Printf("Error finding category: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	err = queries.DeleteCategory(context.Background(), categoryUUIDpg)
	if err != nil {
		log.Printf("Error deleting category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting category"})
		return
	}

	if mapping, err := initializeCategoryMapping(); err == nil {
		categoryMapping = mapping
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
