package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// complaintCategories are the intake form's choices. Anything else lands in
// Other.
var complaintCategories = []string{"Sanitation", "Water", "Roads", "Electricity", "Safety", "Other"}

// ComplaintController handles the complaint box.
type ComplaintController struct {
	st *store.Store
}

// NewComplaintController creates a new ComplaintController instance.
func NewComplaintController(st *store.Store) *ComplaintController {
	return &ComplaintController{st: st}
}

// CreateComplaint records an intake submission. Unknown categories fold
// into Other rather than failing; residents should not fight the form.
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	var req struct {
		Category    string `json:"category"`
		Description string `json:"description" binding:"required"`
		Contact     string `json:"contact"`
		Location    string `json:"location"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	category := req.Category
	if !utils.ContainsString(complaintCategories, category) {
		category = "Other"
	}

	complaint, err := c.st.CreateComplaint(store.ComplaintInput{
		Category:    category,
		Description: utils.Sanitize(req.Description),
		Contact:     utils.Sanitize(req.Contact),
		Location:    utils.Sanitize(req.Location),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"complaint": complaint})
}

// ListComplaints pages the intake log, newest first.
func (c *ComplaintController) ListComplaints(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"), 20)

	complaints, err := c.st.GetComplaints(pageSize, (page-1)*pageSize)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{
		"items":      complaints,
		"categories": complaintCategories,
		"backend":    c.st.Resolve(store.DatasetComplaints),
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
		},
	})
}
