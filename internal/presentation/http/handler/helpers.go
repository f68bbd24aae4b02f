package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetShopID extracts the shop ID from the Gin context
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

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	list, ok := roles.([]string)
	if !ok {
		return nil
	}
	return list
}

// parsePagination reads the page-based pagination query parameters
func parsePagination(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// parseCursorParams reads the cursor-based pagination query parameters
func parseCursorParams(c *gin.Context) *pagination.CursorParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	return &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}
}

// wantsCursor reports whether the request asked for cursor pagination
func wantsCursor(c *gin.Context) bool {
	return c.Query("cursor") != "" || c.Query("limit") != ""
}
