package store

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/naborly/naborly/models"
)

// maxDirectoryResults caps directory reads regardless of the requested limit.
const maxDirectoryResults = 200

// CreateComplaint records an intake submission with status "submitted".
func (s *SQLStore) CreateComplaint(in ComplaintInput) (*models.Complaint, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	complaint := models.Complaint{
		Category:    orDefault(strings.TrimSpace(in.Category), "Other"),
		Description: in.Description,
		Contact:     in.Contact,
		Location:    in.Location,
		Status:      "submitted",
	}
	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetComplaints returns intake entries newest first.
func (s *SQLStore) GetComplaints(limit, offset int) ([]ComplaintView, error) {
	q := s.db.Model(&models.Complaint{}).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []models.Complaint
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ComplaintView{
			ID:          row.ID,
			Category:    row.Category,
			Description: row.Description,
			Contact:     row.Contact,
			Location:    row.Location,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		})
	}
	return views, nil
}

// CreateServiceProvider adds a provider listing.
func (s *SQLStore) CreateServiceProvider(p *models.ServiceProvider) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	p.Category = orDefault(strings.TrimSpace(p.Category), "General")
	return s.db.Create(p).Error
}

// GetServiceProviders filters providers by exact category and a
// case-insensitive substring over name, area and description.
func (s *SQLStore) GetServiceProviders(d DirectoryQuery) ([]models.ServiceProvider, error) {
	q := s.db.Model(&models.ServiceProvider{})
	if d.Field != "" {
		q = q.Where("category = ?", d.Field)
	}
	if d.Query != "" {
		pattern := "%" + strings.ToLower(d.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(area) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern)
	}

	var rows []models.ServiceProvider
	err := q.Order("created_at DESC, id DESC").Limit(directoryLimit(d.Limit)).Find(&rows).Error
	return rows, err
}

// CreateVendor adds a vendor listing.
func (s *SQLStore) CreateVendor(v *models.Vendor) error {
	if strings.TrimSpace(v.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	v.Type = orDefault(strings.TrimSpace(v.Type), "General")
	return s.db.Create(v).Error
}

// GetVendors filters vendors by exact type and a case-insensitive substring
// over name, area and notes.
func (s *SQLStore) GetVendors(d DirectoryQuery) ([]models.Vendor, error) {
	q := s.db.Model(&models.Vendor{})
	if d.Field != "" {
		q = q.Where("type = ?", d.Field)
	}
	if d.Query != "" {
		pattern := "%" + strings.ToLower(d.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(area) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern, pattern)
	}

	var rows []models.Vendor
	err := q.Order("created_at DESC, id DESC").Limit(directoryLimit(d.Limit)).Find(&rows).Error
	return rows, err
}

// CreateGovernmentBody adds a civic office entry.
func (s *SQLStore) CreateGovernmentBody(b *models.GovernmentBody) error {
	if strings.TrimSpace(b.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return s.db.Create(b).Error
}

// GetGovernmentBodies filters offices by exact department and a
// case-insensitive substring over name and location only; the other columns
// are visiting details, not search text.
func (s *SQLStore) GetGovernmentBodies(d DirectoryQuery) ([]models.GovernmentBody, error) {
	q := s.db.Model(&models.GovernmentBody{})
	if d.Field != "" {
		q = q.Where("department = ?", d.Field)
	}
	if d.Query != "" {
		pattern := "%" + strings.ToLower(d.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}

	var rows []models.GovernmentBody
	err := q.Order("created_at DESC, id DESC").Limit(directoryLimit(d.Limit)).Find(&rows).Error
	return rows, err
}

func directoryLimit(requested int) int {
	if requested <= 0 || requested > maxDirectoryResults {
		return maxDirectoryResults
	}
	return requested
}

// AddNotification stores an opaque payload for one user.
func (s *SQLStore) AddNotification(userID, payload string) (*models.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	notification := models.Notification{UserID: userID, Payload: payload}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetNotifications returns a user's notifications newest first, optionally
// only the unread ones.
func (s *SQLStore) GetNotifications(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	q := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []models.Notification
	err := q.Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

// MarkNotificationRead flips one notification to read. Marking an already
// read notification is a no-op, not an error.
func (s *SQLStore) MarkNotificationRead(id int64) error {
	result := s.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.Model(&models.Notification{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// UpsertRationRate inserts a fresh price row. Older rows stay for history;
// reads order by updated_at so the newest one wins.
func (s *SQLStore) UpsertRationRate(r *models.RationRate) error {
	if strings.TrimSpace(r.State) == "" {
		return &ValidationError{Field: "state", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.District) == "" {
		return &ValidationError{Field: "district", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.MonthYear) == "" {
		return &ValidationError{Field: "month_year", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.Commodity) == "" {
		return &ValidationError{Field: "commodity", Reason: "must not be empty"}
	}
	if r.Rate < 0 {
		return &ValidationError{Field: "rate", Reason: "must not be negative"}
	}
	return s.db.Create(r).Error
}

// QueryRationRates filters the ration board; blank query fields match
// everything.
func (s *SQLStore) QueryRationRates(q RationQuery) ([]models.RationRate, error) {
	db := s.db.Model(&models.RationRate{})
	if q.State != "" {
		db = db.Where("state = ?", q.State)
	}
	if q.District != "" {
		db = db.Where("district = ?", q.District)
	}
	if q.MonthYear != "" {
		db = db.Where("month_year = ?", q.MonthYear)
	}

	var rows []models.RationRate
	err := db.Order("updated_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

// RecordPageView bumps today's counter for one path, inserting the row on
// first sight.
func (s *SQLStore) RecordPageView(path string) error {
	view := models.PageView{Date: startOfDay(time.Now()), Path: path, Count: 1}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&view).Error
}

// Counts aggregates table totals for the stats board. Failed counts read as
// zero rather than failing the whole board.
func (s *SQLStore) Counts() Stats {
	var st Stats
	tables := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &st.Users},
		{&models.Post{}, &st.Posts},
		{&models.Comment{}, &st.Comments},
		{&models.Complaint{}, &st.Complaints},
		{&models.ServiceProvider{}, &st.Providers},
		{&models.Vendor{}, &st.Vendors},
	}
	for _, t := range tables {
		if err := s.db.Model(t.model).Count(t.dest).Error; err != nil {
			*t.dest = 0
		}
	}

	if err := s.db.Model(&models.PageView{}).
		Where("date = ?", startOfDay(time.Now())).
		Select("COALESCE(SUM(count), 0)").
		Scan(&st.TodayViews).Error; err != nil {
		st.TodayViews = 0
	}
	if err := s.db.Model(&models.PageView{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&st.TotalViews).Error; err != nil {
		st.TotalViews = 0
	}
	return st
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
