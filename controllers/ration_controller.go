package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/models"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// RationController serves the live ration board backed by the database. The
// curated fallback card lives with the static content.
type RationController struct {
	st *store.Store
}

// NewRationController creates a new RationController instance.
func NewRationController(st *store.Store) *RationController {
	return &RationController{st: st}
}

// UpsertRate records a price point. Rows are never overwritten; the newest
// row for a commodity wins on display.
func (r *RationController) UpsertRate(ctx *gin.Context) {
	var req struct {
		State     string  `json:"state" binding:"required"`
		District  string  `json:"district" binding:"required"`
		MonthYear string  `json:"month_year" binding:"required"`
		Commodity string  `json:"commodity" binding:"required"`
		Rate      float64 `json:"rate"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	rate := models.RationRate{
		State:     utils.Sanitize(req.State),
		District:  utils.Sanitize(req.District),
		MonthYear: utils.Sanitize(req.MonthYear),
		Commodity: utils.Sanitize(req.Commodity),
		Rate:      req.Rate,
	}
	if err := r.st.UpsertRationRate(&rate); err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"rate": rate})
}

// ListRates filters the ration board, newest rows first.
func (r *RationController) ListRates(ctx *gin.Context) {
	rates, err := r.st.QueryRationRates(store.RationQuery{
		State:     ctx.Query("state"),
		District:  ctx.Query("district"),
		MonthYear: ctx.Query("month_year"),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": rates})
}
