package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The order subsystem is a stub surface: the schema and numbering exist, but
// order processing itself is not implemented yet.

func ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Get all orders route - to be implemented"})
}

func CreateOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Create order route - to be implemented"})
}

func GetOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Get order by ID route - to be implemented"})
}

func UpdateOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Update order route - to be implemented"})
}

func CancelOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cancel order route - to be implemented"})
}
