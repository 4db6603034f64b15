package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	CreateSession   gin.HandlerFunc
	GetSession      gin.HandlerFunc
	CloseSession    gin.HandlerFunc
	RestartSession  gin.HandlerFunc
	ReopenSession   gin.HandlerFunc
	SelectRoom      gin.HandlerFunc
	TogglePattern   gin.HandlerFunc
	ConfirmPatterns gin.HandlerFunc
	ToggleColor     gin.HandlerFunc
	ConfirmColors   gin.HandlerFunc
	SelectMood      gin.HandlerFunc
	QuickAction     gin.HandlerFunc
	AddToCart       gin.HandlerFunc
	ToggleWishlist  gin.HandlerFunc
	NurOptions      gin.HandlerFunc

	// Storefront endpoints
	ListWallpapers gin.HandlerFunc
	GetWallpaper   gin.HandlerFunc
	GetCart        gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(nur *NurHandler, store *StorefrontHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateSession:   nur.CreateSession,
		GetSession:      nur.GetSession,
		CloseSession:    nur.CloseSession,
		RestartSession:  nur.Restart,
		ReopenSession:   nur.Reopen,
		SelectRoom:      nur.SelectRoom,
		TogglePattern:   nur.TogglePattern,
		ConfirmPatterns: nur.ConfirmPatterns,
		ToggleColor:     nur.ToggleColor,
		ConfirmColors:   nur.ConfirmColors,
		SelectMood:      nur.SelectMood,
		QuickAction:     nur.QuickAction,
		AddToCart:       nur.AddToCart,
		ToggleWishlist:  nur.ToggleWishlist,
		NurOptions:      nur.Options,

		ListWallpapers: store.ListWallpapers,
		GetWallpaper:   store.GetWallpaper,
		GetCart:        store.GetCart,

		Health: Health,
	}
}
