package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Rohininagaraju/BlogApp/internal/auth"
	"github.com/Rohininagaraju/BlogApp/internal/blogs"
	"github.com/Rohininagaraju/BlogApp/internal/config"
	"github.com/Rohininagaraju/BlogApp/internal/database"
	"github.com/Rohininagaraju/BlogApp/internal/middleware"
	"github.com/Rohininagaraju/BlogApp/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(db, &users.User{}, &blogs.Blog{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	userStore := users.NewStore(db)
	blogStore := blogs.NewStore(db)

	authHandler := auth.NewHandler(userStore, cfg.JWTSecret, cfg.TokenTTL)
	blogHandler := blogs.NewHandler(blogStore)
	requireAuth := auth.RequireAuth(userStore, cfg.JWTSecret)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/me", requireAuth, authHandler.Me)

	// Blog routes; reads are public, mutations require a valid token
	r.GET("/blogs", blogHandler.List)
	r.GET("/blogs/:id", blogHandler.Get)
	r.POST("/blogs", requireAuth, blogHandler.Create)
	r.PUT("/blogs/:id", requireAuth, blogHandler.Update)
	r.DELETE("/blogs/:id", requireAuth, blogHandler.Delete)

	r.Run(":" + cfg.Port)
}
