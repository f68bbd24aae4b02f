package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// GetShopID returns the shop ID set by the auth middleware.
func GetShopID(c *gin.Context) uuid.UUID {
	shopIDVal, exists := c.Get("shop_id")
	if !exists {
		return uuid.Nil
	}
	shopID, ok := shopIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return shopID
}

// GetUserID returns the user ID set by the auth middleware.
func GetUserID(c *gin.Context) uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// RequireShop rejects requests whose token carries no shop.
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetShopID(c) == uuid.Nil {
			response.Forbidden(c, "No shop associated with this account")
			c.Abort()
			return
		}
		c.Next()
	}
}
