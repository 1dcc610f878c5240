package main

import (
	"log"
	"net/http"
	"os"

	_ "postboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/db"
	"postboard/internal/handler"
	"postboard/internal/model"
	"postboard/internal/repository"
	"postboard/internal/router"
	"postboard/internal/service"
)

// @title Postboard API
// @version 1.0
// @description REST API for posts and users with bcrypt-backed login.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	// Block until the database answers, then hold the pooled handle for the
	// process lifetime. The request path never retries.
	gormDB, err := db.WaitForMySQL(cfg.MySQLDSN, cfg.DBConnectAttempts, cfg.DBConnectBackoff)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Post{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Post{},
		&model.User{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	postRepo := repository.NewPostRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	hasher := auth.NewPasswordHasher()
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, hasher)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(e, postHandler, userHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
