package main

import (
	"log"
	"time"

	"plateful/configs"
	"plateful/middlewares"
	"plateful/pkg/events"
	"plateful/pkg/rolecache"
	"plateful/repository"
	"plateful/routes"
	"plateful/services"
	"plateful/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Printf("seed: %v", err)
		}
	}

	cache := rolecache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RoleCacheTTL)

	pub := events.NewPublisher(cfg.AMQPURL)
	defer pub.Close()

	hub := ws.NewOwnerFeedHub()
	go hub.Run()

	// งานกวาด pack หมดอายุ ทำเป็นรอบ ๆ ตาม SWEEP_INTERVAL
	packSvc := services.NewFoodPackService(
		repository.NewFoodPackRepository(configs.DB()),
		repository.NewRestaurantRepository(configs.DB()),
	)
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			packSvc.ExpireSweep()
		}
	}()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, cache, pub, hub)

	log.Printf("plateful listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
