package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/controllers"
	"github.com/zagross-express/zagross-admin-api/middleware"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/services"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("Starting Zagross Express admin API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Order{},
		&models.StatusOverride{},
		&models.SpecialRequest{},
		&models.ProductCategory{},
		&models.Shop{},
		&models.WholesaleProduct{},
		&models.ProductImage{},
		&models.AccessCode{},
		&models.ExternalLink{},
		&models.Setting{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed successfully")

	if _, err := services.InitStorage(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize S3 storage")
	}

	var email services.EmailInterface
	if svc := services.NewSendGridService(cfg); svc != nil {
		email = svc
	}
	services.InitNotifier(cfg, email)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://admin.zagross.express"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		admin := v1.Group("")
		admin.Use(middleware.EnsureValidToken(cfg))
		admin.Use(middleware.RequireAdmin())
		{
			// Orders
			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/events", controllers.StreamOrderEvents)
			admin.GET("/orders/stats", controllers.GetOrderStats)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.POST("/orders/:id/quote", controllers.SubmitQuote)
			admin.POST("/orders/:id/payment", controllers.RecordPayment)
			admin.POST("/orders/:id/received-china", controllers.MarkReceivedInChina)
			admin.POST("/orders/:id/on-the-way", controllers.MarkOnTheWay)
			admin.POST("/orders/:id/ready-pickup", controllers.MarkReadyPickup)
			admin.POST("/orders/:id/complete", controllers.CompleteOrder)
			admin.POST("/orders/:id/cancel", controllers.CancelOrder)
			admin.POST("/orders/:id/override-status", controllers.OverrideStatus)
			admin.POST("/orders/:id/photos", controllers.UploadOrderPhotos)
			admin.DELETE("/orders/:id/photos", controllers.RemoveOrderPhoto)

			// Customers
			admin.GET("/customers", controllers.ListCustomers)
			admin.GET("/customers/:id/orders", controllers.GetCustomerOrders)

			// Special requests
			admin.GET("/special-requests", controllers.ListSpecialRequests)
			admin.POST("/special-requests/:id/respond", controllers.RespondSpecialRequest)

			// Wholesale catalog
			admin.GET("/wholesale/categories", controllers.ListCategories)
			admin.POST("/wholesale/categories", controllers.CreateCategory)
			admin.PUT("/wholesale/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/wholesale/categories/:id", controllers.DeleteCategory)
			admin.GET("/wholesale/shops", controllers.ListShops)
			admin.POST("/wholesale/shops", controllers.CreateShop)
			admin.PUT("/wholesale/shops/:id", controllers.UpdateShop)
			admin.DELETE("/wholesale/shops/:id", controllers.DeleteShop)
			admin.GET("/wholesale/products", controllers.ListProducts)
			admin.POST("/wholesale/products", controllers.CreateProduct)
			admin.PUT("/wholesale/products/:id", controllers.UpdateProduct)
			admin.DELETE("/wholesale/products/:id", controllers.DeleteProduct)

			// Wholesale access codes
			admin.GET("/access-codes", controllers.ListAccessCodes)
			admin.POST("/access-codes", controllers.CreateAccessCode)
			admin.PATCH("/access-codes/:id", controllers.UpdateAccessCode)
			admin.DELETE("/access-codes/:id", controllers.DeleteAccessCode)

			// External storefront links
			admin.GET("/links", controllers.ListLinks)
			admin.POST("/links", controllers.CreateLink)
			admin.PUT("/links/:id", controllers.UpdateLink)
			admin.DELETE("/links/:id", controllers.DeleteLink)

			// Settings and broadcast
			admin.GET("/settings", controllers.GetSettings)
			admin.PUT("/settings/:key", controllers.UpdateSetting)
			admin.POST("/notifications/broadcast", controllers.BroadcastNotification)

			// Finance
			admin.GET("/finance/summary", controllers.GetFinancialSummary)
			admin.GET("/finance/export", controllers.ExportFinancialReport)
		}
	}

	port := ":" + cfg.Port
	log.Info().Str("port", cfg.Port).Msg("Server is running")
	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Zagross Express admin API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
