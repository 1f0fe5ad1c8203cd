package store

import (
	"os"
	"sync"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/models"
	"github.com/naborly/naborly/utils"
)

// Store routes every operation to the backend currently authoritative for
// its dataset. The database file's presence on disk decides: each call stats
// the path fresh, so a database dropped in while the process runs is picked
// up without a restart. Datasets with no file representation are relational
// only and read as unavailable until the database exists.
type Store struct {
	cfg   config.AppConfig
	files *FileStore

	mu  sync.Mutex
	sql *SQLStore
}

// New wires a store over the configured paths. Nothing is opened until the
// first call that needs the database.
func New(cfg config.AppConfig) *Store {
	return &Store{cfg: cfg, files: NewFileStore(cfg)}
}

// relational returns the live database backend, or nil when the database
// file is absent or cannot be opened. The handle is opened lazily on the
// first call that finds the file and kept for later calls.
func (s *Store) relational() *SQLStore {
	if _, err := os.Stat(s.cfg.DatabasePath()); err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sql != nil {
		return s.sql
	}

	sql, err := OpenSQL(s.cfg.DatabasePath())
	if err != nil {
		utils.Sugar.Warnf("database file %s exists but could not be opened, staying on files: %v", s.cfg.DatabasePath(), err)
		return nil
	}
	if err := sql.Migrate(); err != nil {
		utils.Sugar.Warnf("database file %s exists but schema setup failed, staying on files: %v", s.cfg.DatabasePath(), err)
		sql.Close()
		return nil
	}
	s.sql = sql
	utils.Sugar.Infof("database %s found, relational backend active", s.cfg.DatabasePath())
	return s.sql
}

// requireRelational is relational for operations with no file fallback.
func (s *Store) requireRelational() (*SQLStore, error) {
	rel := s.relational()
	if rel == nil {
		return nil, ErrStorageUnavailable
	}
	return rel, nil
}

// Resolve reports which backend currently serves a dataset.
func (s *Store) Resolve(d Dataset) Backend {
	if s.relational() != nil {
		return BackendRelational
	}
	return BackendFile
}

// Backends reports the live backend per dataset, for the health endpoint.
func (s *Store) Backends() map[Dataset]Backend {
	out := make(map[Dataset]Backend, 3)
	for _, d := range []Dataset{DatasetPosts, DatasetComplaints, DatasetListings} {
		out[d] = s.Resolve(d)
	}
	return out
}

// Close releases the database handle if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sql == nil {
		return nil
	}
	err := s.sql.Close()
	s.sql = nil
	return err
}

// GetFeedPage returns one page of the feed, newest first.
func (s *Store) GetFeedPage(limit, offset int) ([]PostView, error) {
	if rel := s.relational(); rel != nil {
		return rel.GetPosts(limit, offset)
	}
	return s.files.GetPosts(limit, offset)
}

// CreatePost writes a post to whichever backend holds the feed. Author is
// the member id in relational mode and the display label in file mode.
func (s *Store) CreatePost(in NewPost) (*PostView, error) {
	if rel := s.relational(); rel != nil {
		return rel.CreatePost(in)
	}
	return s.files.CreatePost(in)
}

// AddComment appends a comment to a post.
func (s *Store) AddComment(in NewComment) (*CommentView, error) {
	if rel := s.relational(); rel != nil {
		return rel.AddComment(in)
	}
	return s.files.AddComment(in)
}

// GetComments reads a post's comments in the requested order.
func (s *Store) GetComments(postID int64, order CommentOrder, limit int) ([]CommentView, error) {
	if rel := s.relational(); rel != nil {
		return rel.GetComments(postID, order, limit)
	}
	return s.files.GetComments(postID, order, limit)
}

// ToggleReaction flips one reaction and reports whether it is now present.
func (s *Store) ToggleReaction(postID int64, user, emoji string) (bool, error) {
	if rel := s.relational(); rel != nil {
		return rel.ToggleReaction(postID, user, emoji)
	}
	return s.files.ToggleReaction(postID, user, emoji)
}

// CreateUser inserts a member row. Members only exist relationally.
func (s *Store) CreateUser(in UserInput) (*models.User, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return nil, err
	}
	return rel.CreateUser(in)
}

// GetUserByUsername looks a member up by username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return nil, err
	}
	return rel.GetUserByUsername(username)
}

// CreateComplaint records an intake submission.
func (s *Store) CreateComplaint(in ComplaintInput) (*ComplaintView, error) {
	if rel := s.relational(); rel != nil {
		complaint, err := rel.CreateComplaint(in)
		if err != nil {
			return nil, err
		}
		return &ComplaintView{
			ID:          complaint.ID,
			Category:    complaint.Category,
			Description: complaint.Description,
			Contact:     complaint.Contact,
			Location:    complaint.Location,
			Status:      complaint.Status,
			CreatedAt:   complaint.CreatedAt,
		}, nil
	}
	return s.files.CreateComplaint(in)
}

// GetComplaints pages the intake log, newest first.
func (s *Store) GetComplaints(limit, offset int) ([]ComplaintView, error) {
	if rel := s.relational(); rel != nil {
		return rel.GetComplaints(limit, offset)
	}
	return s.files.GetComplaints(limit, offset)
}

// CreateServiceProvider adds a provider listing to the live backend.
func (s *Store) CreateServiceProvider(p ProviderDocument) error {
	if rel := s.relational(); rel != nil {
		return rel.CreateServiceProvider(&models.ServiceProvider{
			Category:    p.Category,
			Name:        p.Name,
			Contact:     p.Contact,
			Area:        p.Area,
			Description: p.Description,
		})
	}
	return s.files.CreateServiceProvider(p)
}

// GetServiceProviders filters provider listings.
func (s *Store) GetServiceProviders(d DirectoryQuery) ([]ProviderDocument, error) {
	if rel := s.relational(); rel != nil {
		rows, err := rel.GetServiceProviders(d)
		if err != nil {
			return nil, err
		}
		out := make([]ProviderDocument, 0, len(rows))
		for _, row := range rows {
			out = append(out, ProviderDocument{
				Category:    row.Category,
				Name:        row.Name,
				Contact:     row.Contact,
				Area:        row.Area,
				Description: row.Description,
			})
		}
		return out, nil
	}
	return s.files.GetServiceProviders(d)
}

// CreateVendor adds a vendor listing to the live backend.
func (s *Store) CreateVendor(v VendorDocument) error {
	if rel := s.relational(); rel != nil {
		return rel.CreateVendor(&models.Vendor{
			Type:    v.Type,
			Name:    v.Name,
			Contact: v.Contact,
			Area:    v.Area,
			Notes:   v.Notes,
		})
	}
	return s.files.CreateVendor(v)
}

// GetVendors filters vendor listings.
func (s *Store) GetVendors(d DirectoryQuery) ([]VendorDocument, error) {
	if rel := s.relational(); rel != nil {
		rows, err := rel.GetVendors(d)
		if err != nil {
			return nil, err
		}
		out := make([]VendorDocument, 0, len(rows))
		for _, row := range rows {
			out = append(out, VendorDocument{
				Type:    row.Type,
				Name:    row.Name,
				Contact: row.Contact,
				Area:    row.Area,
				Notes:   row.Notes,
			})
		}
		return out, nil
	}
	return s.files.GetVendors(d)
}

// CreateGovernmentBody adds a civic office entry. The curated set is
// relational only; without a database the built-in entries are read only.
func (s *Store) CreateGovernmentBody(b *models.GovernmentBody) error {
	rel, err := s.requireRelational()
	if err != nil {
		return err
	}
	return rel.CreateGovernmentBody(b)
}

// GetGovernmentBodies filters civic office entries.
func (s *Store) GetGovernmentBodies(d DirectoryQuery) ([]models.GovernmentBody, error) {
	if rel := s.relational(); rel != nil {
		return rel.GetGovernmentBodies(d)
	}
	return s.files.GetGovernmentBodies(d)
}

// AddNotification stores an opaque payload for one user. Relational only.
func (s *Store) AddNotification(userID, payload string) (*models.Notification, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return nil, err
	}
	return rel.AddNotification(userID, payload)
}

// GetNotifications returns a user's notifications newest first.
func (s *Store) GetNotifications(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return nil, err
	}
	return rel.GetNotifications(userID, unreadOnly, limit)
}

// MarkNotificationRead flips one notification to read.
func (s *Store) MarkNotificationRead(id int64) error {
	rel, err := s.requireRelational()
	if err != nil {
		return err
	}
	return rel.MarkNotificationRead(id)
}

// UpsertRationRate records a price point on the ration board.
func (s *Store) UpsertRationRate(r *models.RationRate) error {
	rel, err := s.requireRelational()
	if err != nil {
		return err
	}
	return rel.UpsertRationRate(r)
}

// QueryRationRates filters the ration board.
func (s *Store) QueryRationRates(q RationQuery) ([]models.RationRate, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return nil, err
	}
	return rel.QueryRationRates(q)
}

// Stats aggregates portal totals. Relational only.
func (s *Store) Stats() (Stats, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return Stats{}, err
	}
	return rel.Counts(), nil
}

// RecordPageView bumps today's counter for a path. Without a database the
// view is simply not counted; traffic recording never fails a request.
func (s *Store) RecordPageView(path string) error {
	rel := s.relational()
	if rel == nil {
		return nil
	}
	return rel.RecordPageView(path)
}

// ImportComplaintsFromJSON replays the complaints dataset file into the
// database.
func (s *Store) ImportComplaintsFromJSON(path string) (int, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return 0, err
	}
	return rel.ImportComplaintsFromJSON(path)
}

// ImportServicesFromJSON replays the listings dataset file into the
// database.
func (s *Store) ImportServicesFromJSON(path string) (int, int, error) {
	rel, err := s.requireRelational()
	if err != nil {
		return 0, 0, err
	}
	return rel.ImportServicesFromJSON(path)
}
