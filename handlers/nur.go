package handlers

import (
	"errors"
	"net/http"

	"mahatta/middleware"
	"mahatta/models"
	"mahatta/services/catalog"
	"mahatta/services/chat"
	"mahatta/services/media"
	"mahatta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NurHandler exposes assistant sessions over HTTP. Every action answers with the fresh session view.
type NurHandler struct {
	Manager *chat.Manager
	Catalog catalog.Catalog
	Media   media.Resolver
}

func NewNurHandler(manager *chat.Manager, cat catalog.Catalog, resolver media.Resolver) *NurHandler {
	if resolver == nil {
		resolver = media.Passthrough{}
	}
	return &NurHandler{Manager: manager, Catalog: cat, Media: resolver}
}

type createSessionRequest struct {
	ShopperID string `json:"shopperId"`
}

type roomRequest struct {
	Room string `json:"room" binding:"required"`
}

type labelRequest struct {
	Label string `json:"label" binding:"required"`
}

type moodRequest struct {
	Mood string `json:"mood" binding:"required"`
}

type quickActionRequest struct {
	Action string `json:"action" binding:"required"`
}

type wallpaperRequest struct {
	WallpaperID string `json:"wallpaperId" binding:"required"`
}

// CreateSession opens a session and starts the conversation.
func (h *NurHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
	}
	shopperID := middleware.ShopperID(c)
	if shopperID == "" {
		shopperID = req.ShopperID
	}

	s := h.Manager.Create(shopperID)
	getLogger(c).Info("Assistant session opened", zap.String("session", s.ID()))
	c.JSON(http.StatusCreated, h.render(c, s))
}

func (h *NurHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.render(c, s))
}

func (h *NurHandler) CloseSession(c *gin.Context) {
	if err := h.Manager.Close(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NurHandler) Restart(c *gin.Context) {
	h.act(c, func(s *chat.Session) { s.Start() })
}

func (h *NurHandler) Reopen(c *gin.Context) {
	h.act(c, func(s *chat.Session) { s.Reopen() })
}

func (h *NurHandler) SelectRoom(c *gin.Context) {
	var req roomRequest
	if !bind(c, &req) {
		return
	}
	h.act(c, func(s *chat.Session) { s.SelectRoom(req.Room) })
}

func (h *NurHandler) TogglePattern(c *gin.Context) {
	var req labelRequest
	if !bind(c, &req) {
		return
	}
	h.act(c, func(s *chat.Session) { s.TogglePattern(req.Label) })
}

func (h *NurHandler) ConfirmPatterns(c *gin.Context) {
	h.act(c, func(s *chat.Session) { s.ConfirmPatterns() })
}

func (h *NurHandler) ToggleColor(c *gin.Context) {
	var req labelRequest
	if !bind(c, &req) {
		return
	}
	h.act(c, func(s *chat.Session) { s.ToggleColor(req.Label) })
}

func (h *NurHandler) ConfirmColors(c *gin.Context) {
	h.act(c, func(s *chat.Session) { s.ConfirmColors() })
}

func (h *NurHandler) SelectMood(c *gin.Context) {
	var req moodRequest
	if !bind(c, &req) {
		return
	}
	h.act(c, func(s *chat.Session) { s.SelectMood(req.Mood) })
}

func (h *NurHandler) QuickAction(c *gin.Context) {
	var req quickActionRequest
	if !bind(c, &req) {
		return
	}
	action, err := chat.ParseQuickAction(req.Action)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unknown quick action", err.Error())
		return
	}
	h.act(c, func(s *chat.Session) { s.HandleQuickAction(action) })
}

func (h *NurHandler) AddToCart(c *gin.Context) {
	var req wallpaperRequest
	if !bind(c, &req) {
		return
	}
	if _, err := h.Catalog.ByID(req.WallpaperID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Wallpaper not found", err.Error())
		return
	}
	h.act(c, func(s *chat.Session) { s.AddToCart(req.WallpaperID) })
}

func (h *NurHandler) ToggleWishlist(c *gin.Context) {
	var req wallpaperRequest
	if !bind(c, &req) {
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	on, err := s.ToggleWishlist(c.Request.Context(), req.WallpaperID)
	switch {
	case errors.Is(err, catalog.ErrWallpaperNotFound):
		utils.JSONError(c, http.StatusNotFound, "Wallpaper not found", err.Error())
		return
	case errors.Is(err, chat.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
		return
	case err != nil:
		getLogger(c).Error("Failed to toggle wishlist", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Wishlist unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlisted": on, "session": h.render(c, s)})
}

// Options lists the answers offered at each question.
func (h *NurHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rooms":    catalog.RoomOptions,
		"patterns": catalog.PatternOptions,
		"colors":   catalog.ColorOptions,
		"moods":    catalog.MoodOptions,
	})
}

func (h *NurHandler) act(c *gin.Context, f func(*chat.Session)) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	f(s)
	c.JSON(http.StatusOK, h.render(c, s))
}

func (h *NurHandler) session(c *gin.Context) (*chat.Session, bool) {
	s, err := h.Manager.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
		return nil, false
	}
	return s, true
}

// render snapshots s for the client, handing over pending navigations exactly once.
func (h *NurHandler) render(c *gin.Context, s *chat.Session) models.SessionView {
	v := s.View(c.Request.Context())
	v.Directives = s.DrainDirectives()
	for i, m := range v.Messages {
		if len(m.Suggestions) > 0 {
			v.Messages[i].Suggestions = media.ResolveAll(h.Media, m.Suggestions)
		}
	}
	return v
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return false
	}
	return true
}
