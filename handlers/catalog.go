package handlers

import (
	"context"
	"net/http"

	"mahatta/middleware"
	"mahatta/models"
	"mahatta/services/catalog"
	"mahatta/services/media"
	"mahatta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartReader lists what a shopper has in their cart.
type CartReader interface {
	Items(ctx context.Context, shopperID string) ([]models.CartLine, error)
}

type StorefrontHandler struct {
	Catalog catalog.Catalog
	Media   media.Resolver
	Cart    CartReader
}

func NewStorefrontHandler(cat catalog.Catalog, resolver media.Resolver, cart CartReader) *StorefrontHandler {
	if resolver == nil {
		resolver = media.Passthrough{}
	}
	return &StorefrontHandler{Catalog: cat, Media: resolver, Cart: cart}
}

// ListWallpapers serves the listing page, the target of navigate-listing directives.
func (h *StorefrontHandler) ListWallpapers(c *gin.Context) {
	var listing catalog.Listing
	if err := c.ShouldBindQuery(&listing); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	// Directives carry a filter type and value; accept them as they are.
	if ft, fv := c.Query("filterType"), c.Query("filterValue"); ft != "" {
		sort := listing.Sort
		listing = catalog.ListingFor(ft, fv)
		listing.Sort = sort
	}

	items := media.ResolveAll(h.Media, listing.Apply(h.Catalog.All()))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "wallpapers": items})
}

func (h *StorefrontHandler) GetWallpaper(c *gin.Context) {
	w, err := h.Catalog.ByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Wallpaper not found", err.Error())
		return
	}
	w.Image = h.Media.Resolve(w.Image)
	c.JSON(http.StatusOK, w)
}

// GetCart lists the cart of the shopper named by the X-Shopper-ID header.
func (h *StorefrontHandler) GetCart(c *gin.Context) {
	shopperID := middleware.ShopperID(c)
	if shopperID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing shopper", middleware.ShopperHeader+" header is required")
		return
	}
	if h.Cart == nil {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartLine{}})
		return
	}

	lines, err := h.Cart.Items(c.Request.Context(), shopperID)
	if err != nil {
		getLogger(c).Error("Failed to read cart", zap.String("shopper", shopperID), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Cart unavailable", err.Error())
		return
	}
	for i := range lines {
		lines[i].Wallpaper.Image = h.Media.Resolve(lines[i].Wallpaper.Image)
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

// Health reports the last dependency check. The assistant keeps working when a store is down,
// so the endpoint answers 200 and says "degraded".
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	state := "ok"
	if !status.Redis || (status.Mongo != nil && !*status.Mongo) {
		state = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": state, "message": "Hi, I'm NUR", "checks": status})
}
