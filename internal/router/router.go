package router

import (
	"log"

	"github.com/DevangDixit02/thoughtMemo/internal/auth"
	"github.com/DevangDixit02/thoughtMemo/internal/handlers"
	appMiddleware "github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/DevangDixit02/thoughtMemo/internal/storage"
	"github.com/DevangDixit02/thoughtMemo/pkg/config"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, cfg *config.Config) {
	db := mgClient.Database(cfg.DBName)

	// --- Initialize dependencies ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	tokenCodec := auth.NewTokenCodec(cfg.SessionSecret)
	uploads := storage.NewDiskStore(cfg.UploadDir)

	e.Static("/public", cfg.PublicDir)
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes ---
	e.GET("/", handlers.Index)
	e.GET("/login", handlers.LoginForm)
	e.GET("/profile/upload", handlers.UploadForm)

	authHandler := handlers.NewAuthHandler(userRepo, tokenCodec)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a valid session cookie) ---
	protected := e.Group("", appMiddleware.SessionAuth(tokenCodec))
	log.Println("Session authentication middleware applied to protected routes.")

	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	protected.GET("/profile", userHandler.Profile)

	postHandler := handlers.NewPostHandler(postRepo, userRepo, cfg.SharedPostEditing)
	protected.POST("/post", postHandler.Create)
	protected.GET("/like/:id", postHandler.ToggleLike)
	protected.GET("/edit/:id", postHandler.EditForm)
	protected.POST("/update/:id", postHandler.Update)

	uploadHandler := handlers.NewUploadHandler(userRepo, uploads)
	protected.POST("/upload", uploadHandler.Upload)

	log.Println("All routes configured.")
}
