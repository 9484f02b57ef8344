package main

import (
	"context"
	"log"
	"os"
	"time"

	"deliciae/internal/cart"
	"deliciae/internal/catalog"
	"deliciae/internal/checkout"
	"deliciae/internal/db"
	"deliciae/internal/geo"
	"deliciae/internal/logging"
	"deliciae/internal/middleware"
	"deliciae/internal/order"
	"deliciae/internal/reels"
	"deliciae/internal/rest"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{"BACKEND_BASE_URL"}
	switch os.Getenv("CART_BACKEND") {
	case "postgres":
		required = append(required, "DATABASE_URL")
	case "redis":
		required = append(required, "REDIS_ADDR")
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGING ─────────────────────────
	logger := logging.Init("deliciae", envOr("LOG_FILE", "./logs/deliciae.log"))

	ctx := context.Background()

	// ───────────────────────── CART BACKEND ─────────────────────────
	var repo cart.Repository
	switch backend := os.Getenv("CART_BACKEND"); backend {
	case "postgres":
		pool, err := db.ConnectPostgres(ctx)
		if err != nil {
			log.Fatal("❌ Postgres init failed:", err)
		}
		defer pool.Close()
		repo = cart.NewPostgresRepository(pool)

	case "redis":
		rdb, err := db.ConnectRedis(ctx)
		if err != nil {
			log.Fatal("❌ Redis init failed:", err)
		}
		defer rdb.Close()
		repo = cart.NewRedisRepository(rdb)

	case "", "memory":
		repo = cart.NewInMemoryRepository()

	default:
		log.Fatalf("❌ Unknown CART_BACKEND: %s", backend)
	}

	store := cart.NewStore(repo)

	// ───────────────────────── COLLABORATOR CLIENTS ─────────────────────────
	api := rest.NewClient(os.Getenv("BACKEND_BASE_URL"), os.Getenv("API_TOKEN"))

	catalogClient := catalog.NewClient(api)
	orderClient := order.NewClient(api)
	reelClient := reels.NewClient(api)
	geoClient := geo.NewClient()

	// ───────────────────────── SERVICES ─────────────────────────
	checkoutService := checkout.NewService(store, catalogClient, orderClient)

	tracker := order.NewTracker(orderClient, 0)
	trackerCtx, stopTracker := context.WithCancel(ctx)
	defer stopTracker()
	go tracker.Run(trackerCtx)

	// ───────────────────────── HANDLERS ─────────────────────────
	cartHandler := cart.NewHandler(store)
	checkoutHandler := checkout.NewHandler(checkoutService)
	orderHandler := order.NewHandler(orderClient)
	discoveryHandler := catalog.NewHandler(catalogClient, geoClient)
	reelHandler := reels.NewHandler(reelClient)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging(logger), middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCount)
		cartGroup.GET("/events", cartHandler.Events)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", cartHandler.ChangeQuantity)
		cartGroup.DELETE("", cartHandler.Clear)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	r.POST("/checkout", checkoutHandler.PlaceOrder)
	r.GET("/orders", orderHandler.List)

	// ───────────────────────── DISCOVERY ROUTES ─────────────────────────
	r.GET("/restaurants", discoveryHandler.Search)
	r.GET("/restaurants/nearby", discoveryHandler.Nearby)
	r.GET("/food-items/:id", discoveryHandler.GetFoodItem)

	// ───────────────────────── SOCIAL ROUTES ─────────────────────────
	r.GET("/reels", reelHandler.List)
	r.POST("/reels/:id/like", reelHandler.Like)
	r.POST("/follow/toggle", reelHandler.ToggleFollow)

	// ───────────────────────── HEALTH + METRICS ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── START ─────────────────────────
	addr := envOr("LISTEN_ADDR", ":8000")
	log.Println("🚀 Deliciae session API running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
