package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/models"
)

func newTestStore(t *testing.T) (*Store, config.AppConfig) {
	t.Helper()
	cfg := config.AppConfig{
		DataDir:        t.TempDir(),
		DatabaseFile:   "portal.db",
		PostsFile:      "community_posts.json",
		ComplaintsFile: "complaints.json",
		ListingsFile:   "services_listings.json",
	}
	st := New(cfg)
	t.Cleanup(func() { _ = st.Close() })
	return st, cfg
}

// createDatabase builds a migrated, empty database at the configured path the
// way the migrate command would, then releases it.
func createDatabase(t *testing.T, cfg config.AppConfig) {
	t.Helper()
	sql, err := OpenSQL(cfg.DatabasePath())
	require.NoError(t, err)
	require.NoError(t, sql.Migrate())
	require.NoError(t, sql.Close())
}

func TestStore_FileModeWithoutDatabase(t *testing.T) {
	st, _ := newTestStore(t)

	assert.Equal(t, BackendFile, st.Resolve(DatasetPosts))
	for _, backend := range st.Backends() {
		assert.Equal(t, BackendFile, backend)
	}

	posts, err := st.GetFeedPage(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	bodies, err := st.GetGovernmentBodies(DirectoryQuery{})
	require.NoError(t, err)
	assert.Len(t, bodies, 5)

	_, err = st.CreateUser(UserInput{ID: "u1", Username: "neha", Name: "Neha"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	_, err = st.Stats()
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	_, err = st.AddNotification("u1", `{"kind":"test"}`)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	err = st.UpsertRationRate(&models.RationRate{})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	err = st.CreateGovernmentBody(&models.GovernmentBody{Name: "New Office"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	_, err = st.ImportComplaintsFromJSON("anywhere.json")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	// Traffic counting is best effort and never surfaces the missing database.
	assert.NoError(t, st.RecordPageView("/api/v1/feed"))
}

func TestStore_SwitchesWhenDatabaseAppears(t *testing.T) {
	st, cfg := newTestStore(t)

	posts, err := st.GetFeedPage(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	createDatabase(t, cfg)

	// No restart: the very next call sees the file and switches over.
	assert.Equal(t, BackendRelational, st.Resolve(DatasetPosts))
	for _, backend := range st.Backends() {
		assert.Equal(t, BackendRelational, backend)
	}

	posts, err = st.GetFeedPage(10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)

	user, err := st.CreateUser(UserInput{ID: "u1", Username: "neha", Name: "Neha Singh"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	found, err := st.GetUserByUsername("neha")
	require.NoError(t, err)
	assert.Equal(t, "Neha Singh", found.Name)

	complaint, err := st.CreateComplaint(ComplaintInput{Description: "street light out"})
	require.NoError(t, err)
	assert.NotZero(t, complaint.ID)
	assert.Equal(t, "Other", complaint.Category)

	require.NoError(t, st.RecordPageView("/api/v1/feed"))
	stats, err := st.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalViews)
	assert.Equal(t, int64(1), stats.TodayViews)
	assert.Equal(t, int64(1), stats.Users)
}

func TestStore_TouchedEmptyFileBecomesRelational(t *testing.T) {
	st, cfg := newTestStore(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(cfg.DatabasePath(), nil, 0644))

	// A zero-length file is a fresh database; the lazy open migrates it.
	assert.Equal(t, BackendRelational, st.Resolve(DatasetPosts))
	_, err := st.CreateUser(UserInput{ID: "u1", Username: "neha", Name: "Neha"})
	assert.NoError(t, err)
}

func TestStore_UnreadableDatabaseStaysOnFiles(t *testing.T) {
	st, cfg := newTestStore(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(cfg.DatabasePath(), []byte("not a database"), 0644))

	assert.Equal(t, BackendFile, st.Resolve(DatasetPosts))
	posts, err := st.GetFeedPage(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	_, err = st.CreateUser(UserInput{ID: "u1", Username: "neha", Name: "Neha"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestStore_DirectoryAcrossBackends(t *testing.T) {
	st, cfg := newTestStore(t)

	require.NoError(t, st.CreateServiceProvider(ProviderDocument{Name: "File Provider", Category: "Plumber"}))
	providers, err := st.GetServiceProviders(DirectoryQuery{})
	require.NoError(t, err)
	assert.Len(t, providers, 5)

	createDatabase(t, cfg)

	// The relational directory starts empty; the file listings stay behind.
	providers, err = st.GetServiceProviders(DirectoryQuery{})
	require.NoError(t, err)
	assert.Empty(t, providers)

	require.NoError(t, st.CreateServiceProvider(ProviderDocument{Name: "DB Provider", Category: "Electrician", Area: "Ward 3"}))
	providers, err = st.GetServiceProviders(DirectoryQuery{Field: "Electrician"})
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "DB Provider", providers[0].Name)
	assert.Equal(t, "Ward 3", providers[0].Area)

	require.NoError(t, st.CreateVendor(VendorDocument{Name: "DB Vendor", Type: "Fruits", Notes: "seasonal"}))
	vendors, err := st.GetVendors(DirectoryQuery{Query: "seasonal"})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "DB Vendor", vendors[0].Name)
}

func TestStore_CloseWithoutOpenIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.Close())
	assert.NoError(t, st.Close())
}
