package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/naborly/naborly/models"
	"github.com/naborly/naborly/utils"
)

// CreateUser inserts a member row. A blank id gets a generated one and a
// blank avatar gets the default; a taken username is a constraint violation.
func (s *SQLStore) CreateUser(in UserInput) (*models.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	user := models.User{
		ID:       in.ID,
		Username: in.Username,
		Name:     in.Name,
		Avatar:   in.Avatar,
		Bio:      in.Bio,
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, &ConstraintViolation{Constraint: "users.username"}
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername looks a member up by the unique username.
func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreatePost inserts a feed post for the given member id and returns the
// aggregated view with zero counts.
func (s *SQLStore) CreatePost(in NewPost) (*PostView, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	var author models.User
	err := s.db.Where("id = ?", in.Author).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post := models.Post{UserID: author.ID, Message: in.Message}
	if in.Media != nil {
		post.MediaType = in.Media.Type
		post.MediaBlob = in.Media.Data
		post.MediaURL = in.Media.URL
		post.MediaMime = in.Media.Mime
	}
	if err := s.db.Create(&post).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &PostView{
		ID:        post.ID,
		Author:    Author{Username: author.Username, Name: author.Name, Avatar: author.Avatar},
		Message:   post.Message,
		Media:     mediaFromColumns(post.MediaType, post.MediaBlob, post.MediaURL, post.MediaMime),
		CreatedAt: post.CreatedAt,
		Reactions: map[string]int{},
	}, nil
}

// AddComment appends a comment to a post. The post and the member must both
// exist; either one missing reads as not found.
func (s *SQLStore) AddComment(in NewComment) (*CommentView, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	var author models.User
	err := s.db.Where("id = ?", in.Author).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var posts int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", in.PostID).Count(&posts).Error; err != nil {
		return nil, err
	}
	if posts == 0 {
		return nil, ErrNotFound
	}

	comment := models.Comment{PostID: in.PostID, UserID: author.ID, Text: in.Text}
	if err := s.db.Create(&comment).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &CommentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    Author{Username: author.Username, Name: author.Name, Avatar: author.Avatar},
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// ToggleReaction flips one member's emoji on a post and reports whether the
// reaction is now present. Two racing toggles of the same triple serialize
// into ordered flips: the loser of the insert race retries and sees the
// winner's row.
func (s *SQLStore) ToggleReaction(postID int64, userID, emoji string) (bool, error) {
	if postID <= 0 {
		return false, &ValidationError{Field: "post_id", Reason: "must be positive"}
	}
	if strings.TrimSpace(userID) == "" {
		return false, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(emoji) == "" {
		return false, &ValidationError{Field: "emoji", Reason: "must not be empty"}
	}

	added, err := s.toggleOnce(postID, userID, emoji)
	if isUniqueViolation(err) {
		added, err = s.toggleOnce(postID, userID, emoji)
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrNotFound
		}
		if isUniqueViolation(err) {
			return false, &ConstraintViolation{Constraint: "reactions (post_id, user_id, emoji)"}
		}
		return false, err
	}
	return added, nil
}

func (s *SQLStore) toggleOnce(postID int64, userID, emoji string) (bool, error) {
	added := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var posts int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&posts).Error; err != nil {
			return err
		}
		if posts == 0 {
			return ErrNotFound
		}

		var existing models.Reaction
		err := tx.Where("post_id = ? AND user_id = ? AND emoji = ?", postID, userID, emoji).
			First(&existing).Error
		switch {
		case err == nil:
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&models.Reaction{PostID: postID, UserID: userID, Emoji: emoji}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// postRow is the flattened feed row: post columns, author columns and the
// comment count in one scan.
type postRow struct {
	ID           int64
	Message      string
	MediaType    string
	MediaBlob    []byte
	MediaURL     string
	MediaMime    string
	CreatedAt    time.Time
	Username     string
	AuthorName   string
	AuthorAvatar string
	CommentCount int64
}

// GetPosts returns one feed page, newest first, with author fields joined in
// and per-post reaction tallies computed fresh.
func (s *SQLStore) GetPosts(limit, offset int) ([]PostView, error) {
	q := s.db.Model(&models.Post{}).
		Select("posts.id, posts.message, posts.media_type, posts.media_blob, posts.media_url, posts.media_mime, posts.created_at, "+
			"users.username AS username, users.name AS author_name, users.avatar AS author_avatar, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC, posts.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []postRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(rows))
	for _, row := range rows {
		tally, err := s.reactionTally(row.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{
			ID:           row.ID,
			Author:       Author{Username: row.Username, Name: row.AuthorName, Avatar: row.AuthorAvatar},
			Message:      row.Message,
			Media:        mediaFromColumns(row.MediaType, row.MediaBlob, row.MediaURL, row.MediaMime),
			CreatedAt:    row.CreatedAt,
			CommentCount: row.CommentCount,
			Reactions:    tally,
		})
	}
	return views, nil
}

func (s *SQLStore) reactionTally(postID int64) (map[string]int, error) {
	var rows []struct {
		Emoji string
		Count int
	}
	err := s.db.Model(&models.Reaction{}).
		Select("emoji, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("emoji").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	tally := make(map[string]int, len(rows))
	for _, row := range rows {
		tally[row.Emoji] = row.Count
	}
	return tally, nil
}

type commentRow struct {
	ID           int64
	PostID       int64
	Text         string
	CreatedAt    time.Time
	Username     string
	AuthorName   string
	AuthorAvatar string
}

// GetComments returns a post's comments joined with author fields, in the
// requested order. An unknown post simply has no comments.
func (s *SQLStore) GetComments(postID int64, order CommentOrder, limit int) ([]CommentView, error) {
	direction := "ASC"
	if order == NewestFirst {
		direction = "DESC"
	}

	q := s.db.Model(&models.Comment{}).
		Select("comments.id, comments.post_id, comments.text, comments.created_at, "+
			"users.username AS username, users.name AS author_name, users.avatar AS author_avatar").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at " + direction + ", comments.id " + direction)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []commentRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, CommentView{
			ID:        row.ID,
			PostID:    row.PostID,
			Author:    Author{Username: row.Username, Name: row.AuthorName, Avatar: row.AuthorAvatar},
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		})
	}
	return views, nil
}
