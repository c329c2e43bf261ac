package handler

import (
	"github.com/gin-gonic/gin"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uint {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserLogin extracts the user login from the Gin context
func GetUserLogin(c *gin.Context) string {
	login, exists := c.Get("user_login")
	if !exists {
		return ""
	}
	return login.(string)
}
