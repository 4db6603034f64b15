package handlers

import (
	"mahatta/middleware"
	"mahatta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request logger set by middleware.RequestLogger, tagged with the shopper
// when one is known. Outside that middleware it falls back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	l := utils.GetLogger()
	if v, exists := c.Get(middleware.LoggerKey); exists {
		if rl, ok := v.(*zap.Logger); ok {
			l = rl
		}
	}
	if shopper := middleware.ShopperID(c); shopper != "" {
		l = l.With(zap.String("shopper", shopper))
	}
	return l
}
