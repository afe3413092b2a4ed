package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/middleware"
	"microblog/internal/modules/auth"
	"microblog/internal/modules/comments"
	"microblog/internal/modules/posts"
	"microblog/internal/pkg/token"
	"microblog/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, db, err := database.Connect(cfg.DBConnection, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("disconnect: %v", err)
		}
	}()

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	accessCodec, err := token.New(cfg.AccessTokenSecret)
	if err != nil {
		log.Fatal(err)
	}
	refreshCodec, err := token.New(cfg.RefreshTokenSecret)
	if err != nil {
		log.Fatal(err)
	}

	authService := auth.NewService(accountRepo, accessCodec, refreshCodec, cfg.AccessTokenTTL)
	authHandler := auth.NewHandler(authService)

	postService := posts.NewService(postRepo, commentRepo)
	postHandler := posts.NewHandler(postService)

	commentService := comments.NewService(commentRepo)
	commentHandler := comments.NewHandler(commentService)

	r := gin.Default()

	r.GET("/about", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	gate := middleware.RequireAccessToken(accessCodec)
	authHandler.RegisterRoutes(&r.RouterGroup, gate)
	postHandler.RegisterRoutes(&r.RouterGroup, gate)
	commentHandler.RegisterRoutes(&r.RouterGroup, gate)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
