package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// FeedController serves the community feed: posts, comments and reactions.
type FeedController struct {
	st *store.Store
}

// NewFeedController creates a new FeedController instance.
func NewFeedController(st *store.Store) *FeedController {
	return &FeedController{st: st}
}

// GetFeed returns one page of posts, newest first, with author info, comment
// counts and reaction tallies.
func (f *FeedController) GetFeed(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"), config.Get().FeedPageSize)

	posts, err := f.st.GetFeedPage(pageSize, (page-1)*pageSize)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{
		"items":   posts,
		"backend": f.st.Resolve(store.DatasetPosts),
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
		},
	})
}

// CreatePost publishes a new post. With the database live the author is a
// member id; in file mode the author is a display name and defaults to the
// guest identity.
func (f *FeedController) CreatePost(ctx *gin.Context) {
	var req struct {
		UserID  string       `json:"user_id"`
		Author  string       `json:"author"`
		Avatar  string       `json:"avatar"`
		Message string       `json:"message" binding:"required"`
		Media   *store.Media `json:"media"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	message := utils.Sanitize(req.Message)
	if message == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, "message cannot be empty")
		return
	}

	in := store.NewPost{Avatar: req.Avatar, Message: message, Media: req.Media}
	if f.st.Resolve(store.DatasetPosts) == store.BackendRelational {
		if strings.TrimSpace(req.UserID) == "" {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "user_id is required")
			return
		}
		in.Author = req.UserID
	} else {
		in.Author = strings.TrimSpace(utils.Sanitize(req.Author))
		if in.Author == "" {
			in.Author = "Guest User"
		}
	}

	post, err := f.st.CreatePost(in)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// CreateComment appends a comment to a post.
func (f *FeedController) CreateComment(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid post id")
		return
	}

	var req struct {
		UserID string `json:"user_id"`
		Author string `json:"author"`
		Avatar string `json:"avatar"`
		Text   string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	text := utils.Sanitize(req.Text)
	if text == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, "text cannot be empty")
		return
	}

	in := store.NewComment{PostID: postID, Avatar: req.Avatar, Text: text}
	if f.st.Resolve(store.DatasetPosts) == store.BackendRelational {
		if strings.TrimSpace(req.UserID) == "" {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "user_id is required")
			return
		}
		in.Author = req.UserID
	} else {
		in.Author = strings.TrimSpace(utils.Sanitize(req.Author))
		if in.Author == "" {
			in.Author = "Guest User"
		}
	}

	comment, err := f.st.AddComment(in)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"comment": comment})
}

// ListComments returns a post's comments. Threads read oldest first, which
// is the default; pass order=desc for latest-first previews.
func (f *FeedController) ListComments(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid post id")
		return
	}

	order := store.OldestFirst
	switch ctx.DefaultQuery("order", "asc") {
	case "asc":
	case "desc":
		order = store.NewestFirst
	default:
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "order must be asc or desc")
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	comments, err := f.st.GetComments(postID, order, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": comments, "order": order})
}

// ToggleReaction flips the caller's emoji on a post. The same request twice
// is a no-op pair: on, then off.
func (f *FeedController) ToggleReaction(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid post id")
		return
	}

	var req struct {
		UserID string `json:"user_id"`
		User   string `json:"user"`
		Emoji  string `json:"emoji" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "invalid request payload")
		return
	}

	user := req.UserID
	if f.st.Resolve(store.DatasetPosts) == store.BackendFile {
		user = strings.TrimSpace(utils.Sanitize(req.User))
		if user == "" {
			user = "Guest User"
		}
	}
	if strings.TrimSpace(user) == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeBadRequest, "user_id is required")
		return
	}

	added, err := f.st.ToggleReaction(postID, user, req.Emoji)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"added": added})
}
