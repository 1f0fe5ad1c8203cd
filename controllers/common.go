package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// respondStoreError translates a storage error into the response envelope.
// Validation and constraint errors carry their own text; everything else
// gets a generic message so storage internals stay out of responses.
func respondStoreError(ctx *gin.Context, err error) {
	var verr *store.ValidationError
	var cerr *store.ConstraintViolation
	switch {
	case errors.As(err, &verr):
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, verr.Error())
	case errors.As(err, &cerr):
		utils.Error(ctx, http.StatusConflict, utils.CodeConflict, cerr.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "not found")
	case errors.Is(err, store.ErrStorageUnavailable):
		utils.Error(ctx, http.StatusServiceUnavailable, utils.CodeStorageDown, "database not available")
	default:
		utils.Sugar.Errorf("storage error on %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
		utils.Error(ctx, http.StatusInternalServerError, utils.CodeInternal, "internal error")
	}
}

// parsePagination reads page and page_size query values, clamped to sane
// bounds. Page counts from 1.
func parsePagination(pageStr, sizeStr string, defaultSize int) (int, int) {
	page := 1
	pageSize := defaultSize
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		pageSize = s
	}
	return page, pageSize
}

// parseID reads a positive integer path parameter.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
