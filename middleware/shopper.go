package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ShopperHeader = "X-Shopper-ID"
	shopperKey    = "shopperID"
)

// ShopperMiddleware reads the anonymous shopper identity the storefront sends with each request.
// Carts and wishlists are keyed by it; there is no authentication behind it.
func ShopperMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(ShopperHeader)); id != "" {
			c.Set(shopperKey, id)
		}
		c.Next()
	}
}

// ShopperID returns the shopper identity of the request, or "" when none was sent.
func ShopperID(c *gin.Context) string {
	return c.GetString(shopperKey)
}
