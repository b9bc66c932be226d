package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	config "github.com/kamau-dev/butchery-backend/configs"
	"github.com/kamau-dev/butchery-backend/internal/db"
	"github.com/kamau-dev/butchery-backend/internal/models"
)

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "E-commerce API running"})
}

// GET /test
// Connectivity diagnostic. Always answers 200; a broken or absent store
// shows up in the payload, never as a request failure.
func TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "set"
	}

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database_name"] = config.LoadDatabaseConfig().Name

	if err := store.Ping(c.Request.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "Connected"

	names, err := store.Collections(c.Request.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names

	c.JSON(http.StatusOK, response)
}

// GET /schema
func SchemaList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"collections": []string{
			models.ButcherCollection,
			models.GroceryCollection,
			models.OrderCollection,
		},
	})
}
