package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/database"
	"github.com/davidkiptoo/safarigo-backend/internal/handlers"
	"github.com/davidkiptoo/safarigo-backend/internal/middleware"
	"github.com/davidkiptoo/safarigo-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis is optional: without it listings are always served from Postgres
	if os.Getenv("REDIS_URL") != "" {
		if err := services.InitRedis(); err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, caching disabled")
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Fan ride updates published by any instance out to local WebSocket clients
	go func() {
		if err := services.SubscribeRideUpdates(context.Background(), hub.BroadcastToAll); err != nil {
			log.Printf("Ride update subscriber stopped: %v", err)
		}
	}()

	// Booking engine holds the injected DB handle
	engine := booking.NewEngine(db)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		rides := api.Group("/rides")
		{
			rides.GET("", handlers.GetRides(engine))
			rides.POST("", handlers.CreateRide(engine))
			rides.GET("/:id", handlers.GetRide(engine))
			rides.POST("/:id/accept", handlers.AcceptRide(engine, hub))
			rides.POST("/:id/complete", handlers.CompleteRide(engine, hub))
		}

		drivers := api.Group("/drivers")
		{
			drivers.GET("", handlers.GetDrivers(engine))
			drivers.POST("", handlers.RegisterDriver(engine))
			drivers.PATCH("/:id/status", handlers.UpdateDriverStatus(engine))
			drivers.GET("/:id/availability", handlers.GetDriverAvailability(engine))
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", handlers.GetHotels(engine))
			hotels.POST("", handlers.CreateHotel(engine))
			hotels.DELETE("/:id", handlers.DeleteHotel(engine))
			hotels.POST("/:id/book", handlers.BookHotel(engine, hub))
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", handlers.GetRestaurants(engine))
			restaurants.POST("", handlers.CreateRestaurant(engine))
			restaurants.DELETE("/:id", handlers.DeleteRestaurant(engine))
			restaurants.POST("/:id/order", handlers.PlaceOrder(engine))
		}

		items := api.Group("/items")
		{
			items.GET("", handlers.GetItems(db))
			items.POST("", handlers.CreateItem(db))
			items.DELETE("/:id", handlers.DeleteItem(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))
		api.GET("/ws/stats", handlers.WebSocketStats(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
