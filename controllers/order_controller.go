package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/pricing"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string           `json:"customer_phone"`
	AddressLine   string           `json:"address_line"`
	City          string           `json:"city"`
	Pincode       string           `json:"pincode"`
	PaymentMethod string           `json:"payment_method"`
	Items         []AddItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateOrderRequest represents the mutable header fields of an order.
// Line items are managed through the item endpoints, never here.
type UpdateOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	AddressLine   string `json:"address_line"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status" binding:"omitempty"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddItemRequest represents the request body for adding a line item.
// Tier is required when the chosen offering defines a price table.
type AddItemRequest struct {
	Code     string `json:"code" binding:"required"`
	Tier     string `json:"tier"`
	Quantity int    `json:"quantity" binding:"omitempty,gt=0"`
}

// ListOrders handles GET /api/orders - returns all orders, newest first
func ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.GetDB().Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"orders":  orders,
	})
}

// GetOrder handles GET /api/orders/:id - returns one order with its items,
// each item carrying its catalog-resolved category
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var catalog []models.Offering
	if err := db.Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load catalog",
		})
		return
	}
	pricing.ResolveCategories(order.Items, catalog)

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"order":   order,
	})
}

// CreateOrder handles POST /api/orders - books a new order, optionally with
// initial line items priced from the catalog
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Customer name is required",
		})
		return
	}

	db := config.GetDB()

	order := models.Order{
		OrderNumber:   models.NewOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		AddressLine:   req.AddressLine,
		City:          req.City,
		Pincode:       req.Pincode,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
	}
	// Order and initial items land together or not at all
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, itemReq := range req.Items {
			item, status, msg := buildOrderItem(tx, &order, itemReq)
			if item == nil {
				return &itemRejection{status: status, message: msg}
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var rejection *itemRejection
		if errors.As(err, &rejection) {
			c.JSON(rejection.status, gin.H{"message": rejection.message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create order",
		})
		return
	}

	if err := pricing.RecomputeOrder(db, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to compute order totals",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created",
		"order":   order,
	})
}

// UpdateOrder handles PUT /api/orders/:id - updates header fields only and
// returns the merged order
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Customer name is required",
		})
		return
	}
	if req.Status != "" && !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Unknown order status %q", req.Status),
		})
		return
	}

	order.CustomerName = req.CustomerName
	order.CustomerEmail = req.CustomerEmail
	order.CustomerPhone = req.CustomerPhone
	order.AddressLine = req.AddressLine
	order.City = req.City
	order.Pincode = req.Pincode
	order.PaymentMethod = req.PaymentMethod
	if req.Status != "" {
		order.Status = req.Status
	}

	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated",
		"order":   order,
	})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "A valid order status is required",
		})
		return
	}

	order.Status = req.Status
	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update order status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}

// ListOrderItems handles GET /api/orders/:id/items - returns the order's line
// items with catalog-resolved categories
func ListOrderItems(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load order items",
		})
		return
	}

	var catalog []models.Offering
	if err := db.Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load catalog",
		})
		return
	}
	pricing.ResolveCategories(items, catalog)

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"items":   items,
	})
}

// AddOrderItem handles POST /api/orders/:id/items - adds a line item priced
// from the catalog, then recomputes and persists the order's totals
func AddOrderItem(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "A service code is required",
		})
		return
	}

	item, status, msg := buildOrderItem(db, &order, req)
	if item == nil {
		c.JSON(status, gin.H{"message": msg})
		return
	}
	if err := db.Create(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add order item",
		})
		return
	}

	if err := pricing.RecomputeOrder(db, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to compute order totals",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added",
		"item":    item,
		"order":   order,
	})
}

// RemoveOrderItem handles DELETE /api/orders/:id/items/:itemId - removes one
// line item, then recomputes and persists the order's totals
func RemoveOrderItem(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	var item models.OrderItem
	if err := db.Where("order_id = ?", order.ID).First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order item not found",
		})
		return
	}

	if err := db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove order item",
		})
		return
	}

	if err := pricing.RecomputeOrder(db, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to compute order totals",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"order":   order,
	})
}

// itemRejection carries the HTTP status and message for a line item the
// catalog rejected, so a transaction callback can abort with it
type itemRejection struct {
	status  int
	message string
}

func (e *itemRejection) Error() string {
	return e.message
}

// buildOrderItem resolves an AddItemRequest against the catalog. On failure
// it returns a nil item with the HTTP status and message to send.
func buildOrderItem(db *gorm.DB, order *models.Order, req AddItemRequest) (*models.OrderItem, int, string) {
	var offering models.Offering
	if err := db.Where("code = ?", req.Code).First(&offering).Error; err != nil {
		return nil, http.StatusNotFound, fmt.Sprintf("No offering with code %q", req.Code)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	price := offering.BasePrice
	name := offering.Name
	productCode := offering.Code
	if offering.HasPriceTable() {
		if req.Tier == "" {
			return nil, http.StatusBadRequest, "This service is priced by tier; a tier selection is required"
		}
		tierPrice, ok := offering.TierPrice(req.Tier)
		if !ok {
			return nil, http.StatusBadRequest, fmt.Sprintf("Tier %q is not offered for this service", req.Tier)
		}
		price = tierPrice
		name = fmt.Sprintf("%s (%s)", offering.Name, req.Tier)
		productCode = offering.Code + "-" + tierSuffix(req.Tier)
	}

	return &models.OrderItem{
		OrderID:     order.ID,
		ProductCode: productCode,
		Name:        name,
		Quantity:    quantity,
		Price:       price,
	}, 0, ""
}

// tierSuffix turns a tier label into a code fragment, e.g. "2 BHK" -> "2BHK"
func tierSuffix(tier string) string {
	return strings.ToUpper(strings.ReplaceAll(tier, " ", ""))
}
