package app

import (
	"log"
	"os"

	"employee-api/internal/employee"
	"employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	// schema + the partial unique email index live in the entity tags
	if err := db.AutoMigrate(&employee.Employee{}); err != nil {
		return err
	}

	// 2. Register Modules & Routes
	return registerModules(router, db)
}
