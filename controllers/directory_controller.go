package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/models"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// DirectoryController serves the services directory: providers, vendors and
// government bodies.
type DirectoryController struct {
	st *store.Store
}

// NewDirectoryController creates a new DirectoryController instance.
func NewDirectoryController(st *store.Store) *DirectoryController {
	return &DirectoryController{st: st}
}

// directoryQuery reads the shared filter parameters: field for the exact
// category match, q for the substring search, limit for the cap.
func directoryQuery(ctx *gin.Context) (store.DirectoryQuery, bool) {
	d := store.DirectoryQuery{
		Field: ctx.Query("field"),
		Query: utils.Sanitize(ctx.Query("q")),
		Limit: config.Get().DirectorySearchLimit,
	}
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid limit")
			return d, false
		}
		d.Limit = n
	}
	return d, true
}

// CreateProvider adds a service provider listing.
func (d *DirectoryController) CreateProvider(ctx *gin.Context) {
	var req struct {
		Category    string `json:"category"`
		Name        string `json:"name" binding:"required"`
		Contact     string `json:"contact"`
		Area        string `json:"area"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	err := d.st.CreateServiceProvider(store.ProviderDocument{
		Category:    utils.Sanitize(req.Category),
		Name:        utils.Sanitize(req.Name),
		Contact:     utils.Sanitize(req.Contact),
		Area:        utils.Sanitize(req.Area),
		Description: utils.Sanitize(req.Description),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "provider added"})
}

// ListProviders filters service provider listings.
func (d *DirectoryController) ListProviders(ctx *gin.Context) {
	q, ok := directoryQuery(ctx)
	if !ok {
		return
	}
	providers, err := d.st.GetServiceProviders(q)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": providers, "backend": d.st.Resolve(store.DatasetListings)})
}

// CreateVendor adds a vendor listing.
func (d *DirectoryController) CreateVendor(ctx *gin.Context) {
	var req struct {
		Type    string `json:"type"`
		Name    string `json:"name" binding:"required"`
		Contact string `json:"contact"`
		Area    string `json:"area"`
		Notes   string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	err := d.st.CreateVendor(store.VendorDocument{
		Type:    utils.Sanitize(req.Type),
		Name:    utils.Sanitize(req.Name),
		Contact: utils.Sanitize(req.Contact),
		Area:    utils.Sanitize(req.Area),
		Notes:   utils.Sanitize(req.Notes),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "vendor added"})
}

// ListVendors filters vendor listings.
func (d *DirectoryController) ListVendors(ctx *gin.Context) {
	q, ok := directoryQuery(ctx)
	if !ok {
		return
	}
	vendors, err := d.st.GetVendors(q)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": vendors, "backend": d.st.Resolve(store.DatasetListings)})
}

// CreateGovernmentBody adds a civic office entry. The curated set needs the
// database; without one the shipped entries are read only.
func (d *DirectoryController) CreateGovernmentBody(ctx *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Department string `json:"department"`
		Contact    string `json:"contact"`
		Hours      string `json:"hours"`
		Location   string `json:"location"`
		Website    string `json:"website"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	err := d.st.CreateGovernmentBody(&models.GovernmentBody{
		Name:       utils.Sanitize(req.Name),
		Department: utils.Sanitize(req.Department),
		Contact:    utils.Sanitize(req.Contact),
		Hours:      utils.Sanitize(req.Hours),
		Location:   utils.Sanitize(req.Location),
		Website:    utils.Sanitize(req.Website),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "government body added"})
}

// ListGovernmentBodies filters civic office entries.
func (d *DirectoryController) ListGovernmentBodies(ctx *gin.Context) {
	q, ok := directoryQuery(ctx)
	if !ok {
		return
	}
	bodies, err := d.st.GetGovernmentBodies(q)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": bodies})
}
