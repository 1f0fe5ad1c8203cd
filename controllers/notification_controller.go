package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// NotificationController manages per-user notifications. The payload is
// opaque JSON; the portal only tracks who it targets and whether it was read.
type NotificationController struct {
	st *store.Store
}

// NewNotificationController creates a new NotificationController instance.
func NewNotificationController(st *store.Store) *NotificationController {
	return &NotificationController{st: st}
}

// CreateNotification stores a payload for one user.
func (n *NotificationController) CreateNotification(ctx *gin.Context) {
	var req struct {
		UserID  string          `json:"user_id" binding:"required"`
		Payload json.RawMessage `json:"payload" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	notification, err := n.st.AddNotification(req.UserID, string(req.Payload))
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"notification": notification})
}

// ListNotifications returns a user's notifications, newest first. Pass
// unread=true for only the unread ones.
func (n *NotificationController) ListNotifications(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "user_id is required")
		return
	}

	unreadOnly := ctx.Query("unread") == "true"
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	notifications, err := n.st.GetNotifications(userID, unreadOnly, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": notifications})
}

// MarkRead flips one notification to read.
func (n *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid notification id")
		return
	}

	if err := n.st.MarkNotificationRead(id); err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "marked read"})
}
