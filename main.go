package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/configs"
	"github.com/vai-sys/DigitalDinner/middlewares"
	"github.com/vai-sys/DigitalDinner/repository"
	"github.com/vai-sys/DigitalDinner/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// Relational store (users, cart, orders)
	db, err := configs.OpenRelational(cfg)
	if err != nil {
		log.Fatalf("relational store connection failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("relational store handle: %v", err)
	}
	defer sqlDB.Close()

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// Document store (menu)
	ctx := context.Background()
	mongoClient, err := configs.OpenMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("document store connection failed: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	menuStore := repository.NewMenuRepository(mongoClient.Database(cfg.MongoDB))

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded menu images
	r.Static("/uploads", cfg.UploadsDir)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Digital Diner API is running")
	})

	routes.RegisterRoutes(r, db, menuStore, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
