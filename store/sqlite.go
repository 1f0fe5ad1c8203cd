package store

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/naborly/naborly/models"
)

// SQLStore is the relational backend over a local SQLite database file.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQL connects to the SQLite file. It does not create tables; Migrate
// owns the schema so that plain opens never turn a missing database into an
// empty one.
func OpenSQL(path string) (*SQLStore, error) {
	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	dsn := path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time; a single pooled connection keeps
	// concurrent toggles serialized instead of tripping SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &SQLStore{db: db}, nil
}

// DB exposes the underlying handle for aggregate middleware.
func (s *SQLStore) DB() *gorm.DB {
	return s.db
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates any missing tables. Existing tables are left alone so a
// populated database is never restructured on boot.
func (s *SQLStore) Migrate() error {
	for _, model := range []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
		&models.Notification{},
		&models.RationRate{},
		&models.Complaint{},
		&models.ServiceProvider{},
		&models.Vendor{},
		&models.GovernmentBody{},
		&models.PageView{},
	} {
		if !s.db.Migrator().HasTable(model) {
			if err := s.db.AutoMigrate(model); err != nil {
				return err
			}
		}
	}
	return nil
}

// Seed inserts the sample rows a fresh portal ships with. A database that
// already has users is left untouched.
func (s *SQLStore) Seed() error {
	var existing int64
	if err := s.db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	users := []models.User{
		{ID: "u1", Username: "neha.singh", Name: "Neha Singh", Avatar: "👩", Bio: "Living life one photo at a time 📸", Followers: 1234, Following: 891},
		{ID: "u2", Username: "amit.kumar", Name: "Amit Kumar", Avatar: "👨", Bio: "Travel | Photography | Coffee", Followers: 2345, Following: 1023},
		{ID: "u3", Username: "saira.khan", Name: "Saira Khan", Avatar: "👩", Bio: "Digital Artist 🎨", Followers: 3456, Following: 892},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	now := time.Now()
	posts := []models.Post{
		{UserID: "u1", Message: "Just had an amazing discussion about sustainable community development! 🌱 Great to see so many neighbors interested in making our area greener.", CreatedAt: now.Add(-2 * time.Minute)},
		{UserID: "u2", Message: "Beautiful sunrise view from our community park! Starting the day with positivity. 🌅", CreatedAt: now.Add(-time.Minute)},
		{UserID: "u3", Message: "Check out this amazing talent from our community art festival! The creativity of our young artists is incredible. 🎨", CreatedAt: now},
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return err
	}

	first := posts[0].ID
	comment := models.Comment{PostID: first, UserID: "u2", Text: "Count me in for the cleanup drives! When do we start?"}
	if err := s.db.Create(&comment).Error; err != nil {
		return err
	}

	reactions := []models.Reaction{
		{PostID: first, UserID: "u2", Emoji: "❤️"},
		{PostID: first, UserID: "u3", Emoji: "👏"},
	}
	return s.db.Create(&reactions).Error
}

// isUniqueViolation reports whether err is a unique-index failure from the
// engine, whichever shape the driver surfaced it in.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err means a referenced row is
// missing. With foreign keys enforced, a bad user or post id lands here.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
