package store

import "time"

// Timestamp layouts used inside dataset files. Posts and comments carry
// minute precision; complaints carry seconds.
const (
	postTimeLayout      = "2006-01-02 15:04"
	complaintTimeLayout = "2006-01-02 15:04:05"
)

// PostDocument is one post in the community dataset file. Reactions map an
// emoji to the display names currently holding it; comments are embedded in
// the document itself.
type PostDocument struct {
	ID        int64               `json:"id"`
	User      string              `json:"user"`
	Avatar    string              `json:"avatar,omitempty"`
	Time      string              `json:"time"`
	Message   string              `json:"message"`
	Media     *Media              `json:"media,omitempty"`
	Reactions map[string][]string `json:"reactions"`
	Comments  []CommentDocument   `json:"comments"`
}

// CommentDocument is one embedded comment. File-backed comments have no ids;
// their position in the list is their identity.
type CommentDocument struct {
	User   string `json:"user"`
	Avatar string `json:"avatar,omitempty"`
	Time   string `json:"time"`
	Text   string `json:"text"`
}

// ComplaintDocument is one entry in the complaints dataset file.
type ComplaintDocument struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Contact     string `json:"contact,omitempty"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ProviderDocument is one service provider in the listings dataset file.
type ProviderDocument struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Area        string `json:"area"`
	Description string `json:"description,omitempty"`
}

// VendorDocument is one vendor in the listings dataset file.
type VendorDocument struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Area    string `json:"area"`
	Notes   string `json:"notes,omitempty"`
}

// ListingsDocument is the top-level shape of the listings dataset file.
type ListingsDocument struct {
	Providers []ProviderDocument `json:"providers"`
	Vendors   []VendorDocument   `json:"vendors"`
}

// view projects a post document into the aggregated feed shape. Emojis whose
// holder list emptied out are dropped from the tally.
func (d PostDocument) view() PostView {
	tally := make(map[string]int, len(d.Reactions))
	for emoji, holders := range d.Reactions {
		if len(holders) > 0 {
			tally[emoji] = len(holders)
		}
	}
	return PostView{
		ID:           d.ID,
		Author:       Author{Username: d.User, Name: d.User, Avatar: orDefault(d.Avatar, "👤")},
		Message:      d.Message,
		Media:        d.Media,
		CreatedAt:    parseDocTime(d.Time, postTimeLayout),
		CommentCount: int64(len(d.Comments)),
		Reactions:    tally,
	}
}

// view projects a complaint document into the common intake shape.
func (d ComplaintDocument) view() ComplaintView {
	return ComplaintView{
		Category:    d.Category,
		Description: d.Description,
		Contact:     d.Contact,
		Location:    d.Location,
		Status:      d.Status,
		CreatedAt:   parseDocTime(d.CreatedAt, complaintTimeLayout),
	}
}

// parseDocTime reads a document timestamp, trying the expected layout first
// and falling back to the other one before giving up with the zero time.
func parseDocTime(s, layout string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
		return t
	}
	alt := postTimeLayout
	if layout == postTimeLayout {
		alt = complaintTimeLayout
	}
	if t, err := time.ParseInLocation(alt, s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
