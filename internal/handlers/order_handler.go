package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kamau-dev/butchery-backend/internal/db"
	"github.com/kamau-dev/butchery-backend/internal/models"
)

type UpdateStatusRequest struct {
	Password string `json:"password" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// POST /api/orders
// Item references and totals are trusted from the caller; the status field
// is server-controlled and always starts at Pending.
func CreateOrder(c *gin.Context) {
	var order models.Order

	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if !models.ValidPaymentMethod(order.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrUnsupportedPayment.Error()})
		return
	}

	order.Status = models.StatusPending
	order.CreatedAt = time.Now().UTC()

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := store.Create(c.Request.Context(), models.OrderCollection, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id})
}

// GET /api/admin/orders?auth_password=...
func ListOrders(c *gin.Context) {
	if err := adminGate.Verify(c.Query("auth_password")); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docs, err := store.List(c.Request.Context(), models.OrderCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeDocs(docs))
}

// POST /api/admin/orders/:id/status
// Any of the four labels is a legal target from any current state.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return
	}

	if err := adminGate.Verify(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidStatus.Error()})
		return
	}

	store, err := db.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = store.UpdateByID(c.Request.Context(), models.OrderCollection, orderID, bson.M{
		"status":     req.Status,
		"updated_at": time.Now().UTC(),
	})

	switch {
	case errors.Is(err, db.ErrInvalidID):
		log.Printf("status update rejected: malformed order id %q", orderID)
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, db.ErrNotFound):
		log.Printf("status update rejected: no order with id %q", orderID)
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
