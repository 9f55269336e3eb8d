package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PostCollection    = "posts"
	CommentCollection = "comments"
)

// GroupCategories are the fixed community boards posts belong to
var GroupCategories = []string{
	"Classifieds",
	"Attorneys",
	"Doctors",
	"Professionals",
	"Education",
	"Giveaway",
}

// CategoryKey is the case-folded form used for matching joined groups
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// CanonicalCategory returns the category as spelled in GroupCategories
func CanonicalCategory(category string) (string, bool) {
	key := CategoryKey(category)
	for _, c := range GroupCategories {
		if CategoryKey(c) == key {
			return c, true
		}
	}
	return "", false
}

// Post is a message on a group board
type Post struct {
	ID               string    `json:"id" bson:"_id"`
	GroupID          string    `json:"group_id" bson:"group_id"`
	GroupCategory    string    `json:"group_category" bson:"group_category"`
	CategoryKey      string    `json:"-" bson:"category_key"`
	AuthorID         string    `json:"author_id" bson:"author_id"`
	AuthorName       string    `json:"author_name" bson:"author_name"`
	AuthorProfilePic *string   `json:"author_profile_pic,omitempty" bson:"author_profile_pic,omitempty"`
	Title            string    `json:"title" bson:"title"`
	Body             string    `json:"body" bson:"body"`
	ImageURL         *string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Likes            []string  `json:"likes" bson:"likes"`
	CommentCount     int       `json:"comment_count" bson:"comment_count"`
	ShareCount       int       `json:"share_count" bson:"share_count"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// NewPost fills the generated fields of a post
func NewPost(post Post, createdAt time.Time) Post {
	post.ID = uuid.New().String()
	post.CategoryKey = CategoryKey(post.GroupCategory)
	post.Likes = []string{}
	post.CommentCount = 0
	post.ShareCount = 0
	post.CreatedAt = createdAt.UTC()
	return post
}

// LikedBy reports whether viewer likes the post
func (p Post) LikedBy(viewer string) bool {
	return containsString(p.Likes, viewer)
}

// Comment is an append-only reply to a post
type Comment struct {
	ID               string    `json:"id" bson:"_id"`
	PostID           string    `json:"post_id" bson:"post_id"`
	AuthorID         string    `json:"author_id" bson:"author_id"`
	AuthorName       string    `json:"author_name" bson:"author_name"`
	AuthorProfilePic *string   `json:"author_profile_pic,omitempty" bson:"author_profile_pic,omitempty"`
	Text             string    `json:"text" bson:"text"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// NewComment fills the generated fields of a comment
func NewComment(comment Comment, createdAt time.Time) Comment {
	comment.ID = uuid.New().String()
	comment.CreatedAt = createdAt.UTC()
	return comment
}
