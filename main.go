package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	config "github.com/kamau-dev/butchery-backend/configs"
	"github.com/kamau-dev/butchery-backend/internal/auth"
	"github.com/kamau-dev/butchery-backend/internal/db"
	"github.com/kamau-dev/butchery-backend/internal/handlers"
)

func main() {

	dbCfg := config.LoadDatabaseConfig()
	srvCfg := config.LoadServerConfig()

	if err := db.Init(dbCfg); err != nil {
		log.Printf("Document store unavailable, starting in degraded mode: %v", err)
	} else {
		log.Println("Connected to document store")
	}

	if srvCfg.AdminPassword == config.DefaultAdminPassword {
		log.Println("ADMIN_PASSWORD not set, falling back to the insecure development default")
	}

	handlers.Init(auth.NewGate(srvCfg.AdminPassword))

	r := gin.Default()

	r.Use(cors.Default())
	r.Use(requestID())

	// ── public endpoints ──
	r.GET("/", handlers.Root)
	r.GET("/test", handlers.TestDatabase)
	r.GET("/schema", handlers.SchemaList)

	api := r.Group("/api")
	{
		api.GET("/butcher", handlers.ListButcherItems)
		api.GET("/butcher/raw", handlers.ListButcherItemsRaw)
		api.GET("/grocery", handlers.ListGroceryItems)
		api.GET("/grocery/raw", handlers.ListGroceryItemsRaw)
		api.POST("/orders", handlers.CreateOrder)

		// ── admin endpoints, gated per-request by the shared secret ──
		admin := api.Group("/admin")
		{
			admin.POST("/butcher", handlers.CreateButcherItem)
			admin.POST("/grocery", handlers.CreateGroceryItem)
			admin.GET("/orders", handlers.ListOrders)
			admin.POST("/orders/:id/status", handlers.UpdateOrderStatus)
		}
	}

	r.Run(":" + srvCfg.Port)
}

// requestID echoes the caller's X-Request-ID or assigns a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
