package store

import "time"

// Dataset names one logical collection that can be backed by either storage
// technology.
type Dataset string

const (
	DatasetPosts      Dataset = "posts"
	DatasetComplaints Dataset = "complaints"
	DatasetListings   Dataset = "listings"
)

// Backend names the storage technology currently authoritative for a dataset.
type Backend string

const (
	BackendRelational Backend = "relational"
	BackendFile       Backend = "file"
)

// CommentOrder selects thread or preview ordering for comment reads. Threads
// read oldest first; previews want the latest entries.
type CommentOrder string

const (
	OldestFirst CommentOrder = "asc"
	NewestFirst CommentOrder = "desc"
)

// Author carries the display fields a feed entry shows beside a post.
type Author struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Media is the optional tagged payload attached to a post: inline bytes or a
// URL, with the MIME type.
type Media struct {
	Type string `json:"type"`
	Data []byte `json:"data,omitempty"`
	URL  string `json:"url,omitempty"`
	Mime string `json:"mime,omitempty"`
}

// PostView is the aggregated feed projection. Counts are computed fresh from
// live rows or documents on every read.
type PostView struct {
	ID           int64          `json:"id"`
	Author       Author         `json:"author"`
	Message      string         `json:"message"`
	Media        *Media         `json:"media,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	CommentCount int64          `json:"comment_count"`
	Reactions    map[string]int `json:"reactions"`
}

// CommentView is one comment joined with its author's display fields.
type CommentView struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ComplaintView is one intake entry in a shape both backends can produce.
// File-backed entries carry no id.
type ComplaintView struct {
	ID          int64     `json:"id,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Contact     string    `json:"contact,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserInput carries the fields for user creation. A blank ID gets a
// generated one; Password, when present, is hashed before storage.
type UserInput struct {
	ID       string
	Username string
	Name     string
	Avatar   string
	Bio      string
	Password string
}

// NewPost carries a post through either backend. Author is the user id when
// the relational store backs the feed and the display label otherwise;
// Avatar only matters in file mode, where there is no users table to join.
type NewPost struct {
	Author  string
	Avatar  string
	Message string
	Media   *Media
}

// NewComment mirrors NewPost for comment creation.
type NewComment struct {
	PostID int64
	Author string
	Avatar string
	Text   string
}

// ComplaintInput carries an intake form submission.
type ComplaintInput struct {
	Category    string
	Description string
	Contact     string
	Location    string
}

// DirectoryQuery filters a directory read. Field matches the listing's
// category, type or department column exactly; Query is a case-insensitive
// substring match over the listing's text fields. Limit caps the result set
// and defaults to 200.
type DirectoryQuery struct {
	Field string
	Query string
	Limit int
}

// RationQuery filters the ration board; blank fields match everything.
type RationQuery struct {
	State     string
	District  string
	MonthYear string
}

// Stats aggregates portal totals for the stats endpoint.
type Stats struct {
	Users      int64 `json:"users"`
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comments"`
	Complaints int64 `json:"complaints"`
	Providers  int64 `json:"providers"`
	Vendors    int64 `json:"vendors"`
	TodayViews int64 `json:"today_views"`
	TotalViews int64 `json:"total_views"`
}

func mediaFromColumns(mtype string, blob []byte, url, mime string) *Media {
	if mtype == "" && len(blob) == 0 && url == "" {
		return nil
	}
	return &Media{Type: mtype, Data: blob, URL: url, Mime: mime}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
