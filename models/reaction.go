package models

import "time"

// Reaction records one user's emoji on one post. The (post_id, user_id, emoji)
// triple is unique in every backend; a user may hold several different emojis
// on the same post but never the same one twice.
type Reaction struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PostID    int64     `gorm:"uniqueIndex:idx_reaction_triple;not null" json:"post_id"`
	UserID    string    `gorm:"size:64;uniqueIndex:idx_reaction_triple;not null" json:"user_id"`
	Emoji     string    `gorm:"size:16;uniqueIndex:idx_reaction_triple;not null" json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}
