package store

import (
	"fmt"
	"strings"
	"time"
)

// GetPosts pages the posts dataset. The file keeps documents newest first,
// so paging is a plain slice.
func (f *FileStore) GetPosts(limit, offset int) ([]PostView, error) {
	mu := f.lock(DatasetPosts)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadPosts()
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(docs) {
		return []PostView{}, nil
	}
	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	views := make([]PostView, 0, end-offset)
	for _, doc := range docs[offset:end] {
		views = append(views, doc.view())
	}
	return views, nil
}

// CreatePost prepends a post document. Ids count up from the current
// maximum so reseeded defaults and live posts never collide.
func (f *FileStore) CreatePost(in NewPost) (*PostView, error) {
	if strings.TrimSpace(in.Author) == "" {
		return nil, &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	mu := f.lock(DatasetPosts)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadPosts()
	if err != nil {
		return nil, err
	}

	var nextID int64 = 1
	for _, doc := range docs {
		if doc.ID >= nextID {
			nextID = doc.ID + 1
		}
	}

	doc := PostDocument{
		ID:        nextID,
		User:      in.Author,
		Avatar:    in.Avatar,
		Time:      time.Now().Format(postTimeLayout),
		Message:   in.Message,
		Media:     in.Media,
		Reactions: map[string][]string{},
		Comments:  []CommentDocument{},
	}
	docs = append([]PostDocument{doc}, docs...)

	if err := f.savePosts(docs); err != nil {
		return nil, err
	}
	view := doc.view()
	return &view, nil
}

// AddComment appends a comment to a post document. File-backed comments are
// identified by position, so the returned id is the comment's ordinal.
func (f *FileStore) AddComment(in NewComment) (*CommentView, error) {
	if strings.TrimSpace(in.Author) == "" {
		return nil, &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	mu := f.lock(DatasetPosts)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadPosts()
	if err != nil {
		return nil, err
	}

	idx := findPost(docs, in.PostID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	comment := CommentDocument{
		User:   in.Author,
		Avatar: in.Avatar,
		Time:   time.Now().Format(postTimeLayout),
		Text:   in.Text,
	}
	docs[idx].Comments = append(docs[idx].Comments, comment)

	if err := f.savePosts(docs); err != nil {
		return nil, err
	}
	return &CommentView{
		ID:        int64(len(docs[idx].Comments)),
		PostID:    in.PostID,
		Author:    Author{Username: in.Author, Name: in.Author, Avatar: orDefault(in.Avatar, "👤")},
		Text:      in.Text,
		CreatedAt: parseDocTime(comment.Time, postTimeLayout),
	}, nil
}

// GetComments reads a post's embedded comments in the requested order. An
// unknown post simply has no comments.
func (f *FileStore) GetComments(postID int64, order CommentOrder, limit int) ([]CommentView, error) {
	mu := f.lock(DatasetPosts)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadPosts()
	if err != nil {
		return nil, err
	}

	idx := findPost(docs, postID)
	if idx < 0 {
		return []CommentView{}, nil
	}

	comments := docs[idx].Comments
	views := make([]CommentView, 0, len(comments))
	for i, c := range comments {
		views = append(views, CommentView{
			ID:        int64(i + 1),
			PostID:    postID,
			Author:    Author{Username: c.User, Name: c.User, Avatar: orDefault(c.Avatar, "👤")},
			Text:      c.Text,
			CreatedAt: parseDocTime(c.Time, postTimeLayout),
		})
	}
	if order == NewestFirst {
		for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
			views[i], views[j] = views[j], views[i]
		}
	}
	if limit > 0 && limit < len(views) {
		views = views[:limit]
	}
	return views, nil
}

// ToggleReaction flips a display name in a post's holder list for one emoji
// and reports whether the reaction is now present. The document is re-read
// under the lock, so racing toggles apply to fresh state in order.
func (f *FileStore) ToggleReaction(postID int64, user, emoji string) (bool, error) {
	if strings.TrimSpace(user) == "" {
		return false, &ValidationError{Field: "user", Reason: "must not be empty"}
	}
	if strings.TrimSpace(emoji) == "" {
		return false, &ValidationError{Field: "emoji", Reason: "must not be empty"}
	}

	mu := f.lock(DatasetPosts)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadPosts()
	if err != nil {
		return false, err
	}

	idx := findPost(docs, postID)
	if idx < 0 {
		return false, ErrNotFound
	}

	if docs[idx].Reactions == nil {
		docs[idx].Reactions = map[string][]string{}
	}
	holders := docs[idx].Reactions[emoji]
	added := true
	for i, holder := range holders {
		if holder == user {
			holders = append(holders[:i], holders[i+1:]...)
			added = false
			break
		}
	}
	if added {
		holders = append(holders, user)
	}
	docs[idx].Reactions[emoji] = holders

	if err := f.savePosts(docs); err != nil {
		return false, err
	}
	return added, nil
}

// savePosts validates the whole document list before writing. A document
// missing its id, author or timestamp would be unreadable on the next load,
// so the save refuses and the file keeps its previous contents.
func (f *FileStore) savePosts(docs []PostDocument) error {
	for i, doc := range docs {
		if doc.ID <= 0 || strings.TrimSpace(doc.User) == "" || strings.TrimSpace(doc.Time) == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("posts[%d]", i),
				Reason: "id, user and time are required",
			}
		}
	}
	return f.saveDocument(DatasetPosts, docs)
}

func findPost(docs []PostDocument, id int64) int {
	for i, doc := range docs {
		if doc.ID == id {
			return i
		}
	}
	return -1
}
