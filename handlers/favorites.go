package handlers

import (
	"net/http"

	"alcahub/services/user"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler manages the user's saved professionals.
type FavoritesHandler struct {
	Service user.UserService
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(service user.UserService) *FavoritesHandler {
	return &FavoritesHandler{Service: service}
}

// ListFavoritesHandler returns the user's favorited professional ids.
func (h *FavoritesHandler) ListFavoritesHandler(c *gin.Context) {
	favs, err := h.Service.ListFavorites(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list favorites", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// AddFavoriteHandler adds a professional to favorites. Idempotent.
func (h *FavoritesHandler) AddFavoriteHandler(c *gin.Context) {
	if err := h.Service.AddFavorite(c.GetString("userID"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add favorite", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite added"})
}

// RemoveFavoriteHandler removes a professional from favorites.
func (h *FavoritesHandler) RemoveFavoriteHandler(c *gin.Context) {
	if err := h.Service.RemoveFavorite(c.GetString("userID"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove favorite", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
