package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// envelope mirrors utils.JSONResponse for decoding in assertions.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newFeedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.AppConfig{
		DataDir:        t.TempDir(),
		DatabaseFile:   "portal.db",
		PostsFile:      "community_posts.json",
		ComplaintsFile: "complaints.json",
		ListingsFile:   "services_listings.json",
	}
	st := store.New(cfg)
	t.Cleanup(func() { _ = st.Close() })

	feed := NewFeedController(st)
	r := gin.New()
	r.GET("/api/v1/feed", feed.GetFeed)
	r.POST("/api/v1/posts", feed.CreatePost)
	r.GET("/api/v1/posts/:id/comments", feed.ListComments)
	r.POST("/api/v1/posts/:id/comments", feed.CreateComment)
	r.POST("/api/v1/posts/:id/reactions", feed.ToggleReaction)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetFeed_ServesDefaultsWithBackendTag(t *testing.T) {
	r := newFeedRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/feed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, env.Code)

	var data struct {
		Items   []store.PostView `json:"items"`
		Backend string           `json:"backend"`
		Paging  struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "file", data.Backend)
	require.Len(t, data.Items, 2)
	assert.Equal(t, "Neha Singh", data.Items[0].Author.Username)
	assert.Equal(t, 1, data.Paging.Page)
	assert.Equal(t, 20, data.Paging.PageSize)
}

func TestGetFeed_Paging(t *testing.T) {
	r := newFeedRouter(t)

	_, env := doJSON(t, r, http.MethodGet, "/api/v1/feed?page=2&page_size=1", nil)
	require.Equal(t, 0, env.Code)

	var data struct {
		Items []store.PostView `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, int64(2), data.Items[0].ID)
}

func TestCreatePost_GuestAuthorAndSanitizedMessage(t *testing.T) {
	r := newFeedRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", gin.H{
		"message": "hello <b>ward</b>",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, env.Code)

	var data struct {
		Post store.PostView `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Guest User", data.Post.Author.Username)
	assert.Equal(t, "hello ward", data.Post.Message)
	assert.Equal(t, int64(3), data.Post.ID)
}

func TestCreatePost_RejectsMissingOrMarkupOnlyMessage(t *testing.T) {
	r := newFeedRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", gin.H{"author": "Someone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeBadRequest, env.Code)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/posts", gin.H{"message": "<script>alert(1)</script>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeValidation, env.Code)
}

func TestCreateComment_UnknownPostIs404(t *testing.T) {
	r := newFeedRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/posts/424242/comments", gin.H{"text": "anyone here?"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeNotFound, env.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts/not-a-number/comments", gin.H{"text": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListComments_OrderParam(t *testing.T) {
	r := newFeedRouter(t)

	_, env := doJSON(t, r, http.MethodGet, "/api/v1/posts/1/comments?order=desc", nil)
	require.Equal(t, 0, env.Code)
	var data struct {
		Items []store.CommentView `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 2)
	assert.Equal(t, "Raj Verma", data.Items[0].Author.Username)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/posts/1/comments?order=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleReaction_GuestToggleOnThenOff(t *testing.T) {
	r := newFeedRouter(t)

	var data struct {
		Added bool `json:"added"`
	}

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/posts/1/reactions", gin.H{"emoji": "😊"})
	require.Equal(t, 0, env.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Added)

	_, env = doJSON(t, r, http.MethodPost, "/api/v1/posts/1/reactions", gin.H{"emoji": "😊"})
	require.Equal(t, 0, env.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Added)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/posts/1/reactions", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
