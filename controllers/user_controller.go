package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// UserController manages portal members. Members only exist when the
// database backs the portal; file mode has no user registry.
type UserController struct {
	st *store.Store
}

// NewUserController creates a new UserController instance.
func NewUserController(st *store.Store) *UserController {
	return &UserController{st: st}
}

// CreateUser registers a member. The id is optional and generated when
// absent; usernames are unique.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		ID       string `json:"id"`
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Avatar   string `json:"avatar"`
		Bio      string `json:"bio"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := u.st.CreateUser(store.UserInput{
		ID:       req.ID,
		Username: utils.Sanitize(req.Username),
		Name:     utils.Sanitize(req.Name),
		Avatar:   req.Avatar,
		Bio:      utils.Sanitize(req.Bio),
		Password: req.Password,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// GetUser looks a member up by username.
func (u *UserController) GetUser(ctx *gin.Context) {
	username := ctx.Param("username")
	user, err := u.st.GetUserByUsername(username)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}
