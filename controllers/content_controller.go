package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/content"
	"github.com/naborly/naborly/utils"
)

// ContentController serves the curated static content: the home page
// bulletin board, the printed ration card and the reaction palette.
type ContentController struct{}

func NewContentController() *ContentController { return &ContentController{} }

// GetHome returns the landing page bundle: region, notices, map pins, news,
// quick contacts and utility schedules.
func (c *ContentController) GetHome(ctx *gin.Context) {
	utils.Success(ctx, content.Home())
}

// GetRations returns the curated ration card with announcements, shop
// timings and the helpline.
func (c *ContentController) GetRations(ctx *gin.Context) {
	utils.Success(ctx, content.Rations())
}

// GetReactions returns the emoji palette in picker order, plus the sample
// identities selectable when the portal runs without a database.
func (c *ContentController) GetReactions(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"reactions": content.Reactions(),
		"members":   content.SampleMembers(),
	})
}
