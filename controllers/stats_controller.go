package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// StatsController provides portal statistics such as counts and daily views.
type StatsController struct {
	st *store.Store
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(st *store.Store) *StatsController {
	return &StatsController{st: st}
}

// GetStats returns aggregate statistics for the portal. Totals come from the
// database; without one the board is unavailable rather than zeroed.
func (s *StatsController) GetStats(ctx *gin.Context) {
	stats, err := s.st.Stats()
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"stats": stats})
}

// Health reports liveness and which backend serves each dataset right now.
func (s *StatsController) Health(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"status":   "ok",
		"backends": s.st.Backends(),
	})
}
