package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlaceholderHandler serves the subsystems that are not built out yet. Each
// endpoint responds with a stable stub payload so clients can integrate
// against the routes ahead of the implementations.
type PlaceholderHandler struct{}

// NewPlaceholderHandler creates a new PlaceholderHandler.
func NewPlaceholderHandler() *PlaceholderHandler {
	return &PlaceholderHandler{}
}

// ListGames is a stub for the game scheduling subsystem.
func (h *PlaceholderHandler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Games endpoint - to be implemented",
		"games":   []any{},
	})
}

// GetGame is a stub for single-game details.
func (h *PlaceholderHandler) GetGame(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Game details endpoint - to be implemented",
		"game_id": c.Param("id"),
	})
}

// ListArenas is a stub for the arena directory subsystem.
func (h *PlaceholderHandler) ListArenas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Arenas endpoint - to be implemented",
		"arenas":  []any{},
	})
}

// GetStreamStatus is a stub for the live streaming subsystem.
func (h *PlaceholderHandler) GetStreamStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Streaming status endpoint - to be implemented",
		"status":  "offline",
	})
}

// ListVideos is a stub for the recorded video library.
func (h *PlaceholderHandler) ListVideos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Videos endpoint - to be implemented",
		"videos":  []any{},
	})
}
