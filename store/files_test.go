package store

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naborly/naborly/config"
)

func newTestFiles(t *testing.T) (*FileStore, config.AppConfig) {
	t.Helper()
	cfg := config.AppConfig{
		DataDir:        t.TempDir(),
		DatabaseFile:   "portal.db",
		PostsFile:      "community_posts.json",
		ComplaintsFile: "complaints.json",
		ListingsFile:   "services_listings.json",
	}
	return NewFileStore(cfg), cfg
}

func TestFilePosts_SeedsDefaultsOnFirstLoad(t *testing.T) {
	f, cfg := newTestFiles(t)

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Neha Singh", first.Author.Username)
	assert.Equal(t, "👩", first.Author.Avatar)
	assert.Equal(t, int64(2), first.CommentCount)
	assert.Equal(t, map[string]int{"👍": 2, "❤️": 1, "🙏": 1}, first.Reactions)

	// The seed is written out so later edits outlive the process.
	raw, err := os.ReadFile(cfg.PostsPath())
	require.NoError(t, err)
	var docs []PostDocument
	require.NoError(t, json.Unmarshal(raw, &docs))
	assert.Len(t, docs, 2)
}

func TestFilePosts_CorruptFileMovedAsideAndReset(t *testing.T) {
	f, cfg := newTestFiles(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(cfg.PostsPath(), []byte("{{{ not json"), 0644))

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	backup, err := os.ReadFile(cfg.PostsPath() + ".backup")
	require.NoError(t, err)
	assert.Equal(t, "{{{ not json", string(backup))
}

func TestFilePosts_EmptyFileResets(t *testing.T) {
	f, cfg := newTestFiles(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(cfg.PostsPath(), []byte("  \n"), 0644))

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestFileCreatePost_PrependsWithNextID(t *testing.T) {
	f, _ := newTestFiles(t)

	post, err := f.CreatePost(NewPost{Author: "Test User", Avatar: "🧪", Message: "fresh post"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "fresh post", posts[0].Message)
	assert.Equal(t, "Test User", posts[0].Author.Username)

	_, err = f.CreatePost(NewPost{Author: "", Message: "anonymous"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestFilePosts_Paging(t *testing.T) {
	f, _ := newTestFiles(t)

	onePerPage, err := f.GetPosts(1, 0)
	require.NoError(t, err)
	require.Len(t, onePerPage, 1)
	assert.Equal(t, int64(1), onePerPage[0].ID)

	secondPage, err := f.GetPosts(1, 1)
	require.NoError(t, err)
	require.Len(t, secondPage, 1)
	assert.Equal(t, int64(2), secondPage[0].ID)

	pastEnd, err := f.GetPosts(10, 5)
	require.NoError(t, err)
	assert.Empty(t, pastEnd)
}

func TestFileToggleReaction_FlipsHolderList(t *testing.T) {
	f, _ := newTestFiles(t)

	added, err := f.ToggleReaction(1, "Test User", "😊")
	require.NoError(t, err)
	assert.True(t, added)

	posts, err := f.GetPosts(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].Reactions["😊"])

	added, err = f.ToggleReaction(1, "Test User", "😊")
	require.NoError(t, err)
	assert.False(t, added)

	posts, err = f.GetPosts(1, 0)
	require.NoError(t, err)
	_, present := posts[0].Reactions["😊"]
	assert.False(t, present)
}

func TestFileToggleReaction_RemovesExistingHolder(t *testing.T) {
	f, _ := newTestFiles(t)

	// Amit Kumar already holds 👍 on the first default post.
	added, err := f.ToggleReaction(1, "Amit Kumar", "👍")
	require.NoError(t, err)
	assert.False(t, added)

	posts, err := f.GetPosts(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].Reactions["👍"])

	_, err = f.ToggleReaction(9999, "Test User", "👍")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileToggleReaction_ConcurrentSameUser(t *testing.T) {
	f, _ := newTestFiles(t)

	const toggles = 8
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ToggleReaction(2, "Race User", "🌟")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	var second PostView
	for _, p := range posts {
		if p.ID == 2 {
			second = p
		}
	}
	// Even toggle count nets out; Raj Verma's shipped 🌟 remains.
	assert.Equal(t, 1, second.Reactions["🌟"])
}

func TestFileAddComment_AppendsOrdinal(t *testing.T) {
	f, _ := newTestFiles(t)

	comment, err := f.AddComment(NewComment{PostID: 2, Author: "Test User", Text: "nice view"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), comment.ID)

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	for _, p := range posts {
		if p.ID == 2 {
			assert.Equal(t, int64(2), p.CommentCount)
		}
	}

	_, err = f.AddComment(NewComment{PostID: 777, Author: "Test User", Text: "lost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileGetComments_OrderAndLimit(t *testing.T) {
	f, _ := newTestFiles(t)

	asc, err := f.GetComments(1, OldestFirst, 0)
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, "Saira Khan", asc[0].Author.Username)

	desc, err := f.GetComments(1, NewestFirst, 0)
	require.NoError(t, err)
	require.Len(t, desc, 2)
	assert.Equal(t, "Raj Verma", desc[0].Author.Username)

	limited, err := f.GetComments(1, NewestFirst, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Raj Verma", limited[0].Author.Username)

	empty, err := f.GetComments(424242, OldestFirst, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFileSavePosts_ValidationKeepsFileIntact(t *testing.T) {
	f, _ := newTestFiles(t)

	// Seed the file, then try to save a document with no author.
	_, err := f.GetPosts(10, 0)
	require.NoError(t, err)

	bad := []PostDocument{{ID: 1, User: "", Time: "2025-10-31 14:20", Message: "broken"}}
	err = f.savePosts(bad)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	posts, err := f.GetPosts(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestFileComplaints_PrependAndSeedEmpty(t *testing.T) {
	f, cfg := newTestFiles(t)

	list, err := f.GetComplaints(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = os.Stat(cfg.ComplaintsPath())
	assert.NoError(t, err)

	_, err = f.CreateComplaint(ComplaintInput{Description: "water leak"})
	require.NoError(t, err)
	second, err := f.CreateComplaint(ComplaintInput{Category: "Roads", Description: "pothole"})
	require.NoError(t, err)
	assert.Equal(t, "Roads", second.Category)
	assert.Equal(t, "submitted", second.Status)

	list, err = f.GetComplaints(10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "pothole", list[0].Description)
	assert.Equal(t, "Other", list[1].Category)
}

func TestFileListings_DefaultsAndFilters(t *testing.T) {
	f, _ := newTestFiles(t)

	providers, err := f.GetServiceProviders(DirectoryQuery{})
	require.NoError(t, err)
	assert.Len(t, providers, 4)

	plumbers, err := f.GetServiceProviders(DirectoryQuery{Field: "Plumber"})
	require.NoError(t, err)
	require.Len(t, plumbers, 1)
	assert.Equal(t, "Shyam Plumbing", plumbers[0].Name)

	tutors, err := f.GetServiceProviders(DirectoryQuery{Query: "TUTOR"})
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "ABC Tutors", tutors[0].Name)

	vendors, err := f.GetVendors(DirectoryQuery{Query: "fresh daily"})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Green Grocers", vendors[0].Name)
}

func TestFileListings_CreatePrepends(t *testing.T) {
	f, _ := newTestFiles(t)

	require.NoError(t, f.CreateServiceProvider(ProviderDocument{Name: "New Provider", Area: "Ward 12"}))
	providers, err := f.GetServiceProviders(DirectoryQuery{})
	require.NoError(t, err)
	require.Len(t, providers, 5)
	assert.Equal(t, "New Provider", providers[0].Name)
	assert.Equal(t, "General", providers[0].Category)

	require.NoError(t, f.CreateVendor(VendorDocument{Name: "New Vendor"}))
	vendors, err := f.GetVendors(DirectoryQuery{})
	require.NoError(t, err)
	require.Len(t, vendors, 3)
	assert.Equal(t, "New Vendor", vendors[0].Name)
}

func TestFileGovernmentBodies_BuiltInSet(t *testing.T) {
	f, _ := newTestFiles(t)

	bodies, err := f.GetGovernmentBodies(DirectoryQuery{})
	require.NoError(t, err)
	assert.Len(t, bodies, 5)

	water, err := f.GetGovernmentBodies(DirectoryQuery{Field: "Water"})
	require.NoError(t, err)
	require.Len(t, water, 1)
	assert.Equal(t, "Water Billing Office", water[0].Name)

	byName, err := f.GetGovernmentBodies(DirectoryQuery{Query: "anganwadi"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
}
