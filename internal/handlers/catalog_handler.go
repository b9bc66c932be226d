package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kamau-dev/butchery-backend/internal/db"
	"github.com/kamau-dev/butchery-backend/internal/models"
)

type CreateButcherItemRequest struct {
	Item     models.ButcherItem `json:"item" binding:"required"`
	Password string             `json:"password" binding:"required"`
}

type CreateGroceryItemRequest struct {
	Item     models.GroceryItem `json:"item" binding:"required"`
	Password string             `json:"password" binding:"required"`
}

// GET /api/butcher
// Public shape: decoding through the entity struct drops the store id and
// any unknown stored fields.
func ListButcherItems(c *gin.Context) {
	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docs, err := store.List(c.Request.Context(), models.ButcherCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.ButcherItem, 0, len(docs))
	for _, doc := range docs {
		var item models.ButcherItem
		if err := decodeDoc(doc, &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		item.ApplyDefaults()
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// GET /api/butcher/raw
func ListButcherItemsRaw(c *gin.Context) {
	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docs, err := store.List(c.Request.Context(), models.ButcherCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeDocs(docs))
}

// POST /api/admin/butcher
func CreateButcherItem(c *gin.Context) {
	var req CreateButcherItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := adminGate.Verify(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req.Item.ApplyDefaults()
	req.Item.CreatedAt = time.Now().UTC()

	id, err := store.Create(c.Request.Context(), models.ButcherCollection, req.Item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id})
}

// GET /api/grocery
func ListGroceryItems(c *gin.Context) {
	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docs, err := store.List(c.Request.Context(), models.GroceryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.GroceryItem, 0, len(docs))
	for _, doc := range docs {
		var item models.GroceryItem
		if err := decodeDoc(doc, &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		item.ApplyDefaults()
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// GET /api/grocery/raw
func ListGroceryItemsRaw(c *gin.Context) {
	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docs, err := store.List(c.Request.Context(), models.GroceryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeDocs(docs))
}

// POST /api/admin/grocery
func CreateGroceryItem(c *gin.Context) {
	var req CreateGroceryItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := adminGate.Verify(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req.Item.ApplyDefaults()
	req.Item.CreatedAt = time.Now().UTC()

	id, err := store.Create(c.Request.Context(), models.GroceryCollection, req.Item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id})
}

// decodeDoc round-trips a raw document through bson into a typed struct.
func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
