package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tripsplit/db/generated"
	_ "tripsplit/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	dbPool          *pgxpool.Pool
	queries         *generated.Queries
	categoryMapping *CategoryMapping
)

// @title tripsplit API
// @version 1.0
// @description Group-trip expense ledger with balance and settlement computation
// @BasePath /
func main() {
	// Database connection with defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "postgres"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "tripsplit"
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2

	var err error
	for i := 0; i < maxRetries; i++ {
		dbPool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = dbPool.Ping(context.Background()); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			dbPool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer dbPool.Close()

	// Run database migrations
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")

		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}

		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		// Display current migration version
		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Println("Database migrations completed successfully")
	}

	queries = generated.New(dbPool)

	// Load category mapping for CSV imports
	categoryMapping, err = initializeCategoryMapping()
	if err != nil {
		log.Printf("Warning: could not initialize category mapping: %v", err)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/api/members", getMembers)
	r.POST("/api/members", createMember)
	r.PUT("/api/members/:id", updateMember)
	r.DELETE("/api/members/:id", deleteMember)

	r.GET("/api/categories", getCategories)
	r.POST("/api/categories", createCategory)
	r.PUT("/api/categories/:id", updateCategory)
	r.DELETE("/api/categories/:id", deleteCategory)

	r.GET("/api/expenses", getExpenses)
	r.POST("/api/expenses", createExpense)
	r.PUT("/api/expenses/:id", updateExpense)
	r.PUT("/api/expenses/:id/split", updateExpenseSplit)
	r.DELETE("/api/expenses/:id", deleteExpense)
	r.DELETE("/api/expenses", clearAllExpenses)
	r.POST("/api/import-csv", importCSV)

	r.GET("/api/settings", getSettings)
	r.PUT("/api/settings", updateSettings)

	r.GET("/api/balances", getBalances)
	r.GET("/api/settlement", getSettlement)
	r.GET("/api/totals", getTotals)

	r.POST("/api/archives", createArchive)
	r.GET("/api/archives", getArchives)
	r.GET("/api/archives/:id/expenses", getArchiveExpenses)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}
