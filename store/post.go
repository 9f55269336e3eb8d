package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// PostStore - group board posts and their comments
type PostStore interface {
	CreatePost(ctx context.Context, post schema.Post) error
	GetPost(ctx context.Context, postID string) (*schema.Post, error)
	ListPostsByCategories(ctx context.Context, categoryKeys []string, limit int64) ([]schema.Post, error)
	ListPostsByAuthors(ctx context.Context, authorIDs []string, limit int64) ([]schema.Post, error)

	ToggleLike(ctx context.Context, postID, viewer string) (*schema.Post, error)
	Like(ctx context.Context, postID, viewer string) (*schema.Post, error)
	Unlike(ctx context.Context, postID, viewer string) (*schema.Post, error)
	IncrementShare(ctx context.Context, postID string) (*schema.Post, error)

	AddComment(ctx context.Context, comment schema.Comment) (*schema.Comment, error)
	ListComments(ctx context.Context, postID string) ([]schema.Comment, error)
}

// CreatePost inserts a new post
func (m *mongoDB) CreatePost(ctx context.Context, post schema.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.PostCollection).InsertOne(ctx, post)
	return err
}

// GetPost returns a post by id
func (m *mongoDB) GetPost(ctx context.Context, postID string) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post schema.Post
	if err := m.collection(schema.PostCollection).FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// ListPostsByCategories returns the newest posts of the given case-folded categories
func (m *mongoDB) ListPostsByCategories(ctx context.Context, categoryKeys []string, limit int64) ([]schema.Post, error) {
	return m.findPosts(ctx, bson.M{"category_key": bson.M{"$in": categoryKeys}}, limit)
}

// ListPostsByAuthors returns the newest posts written by the given authors
func (m *mongoDB) ListPostsByAuthors(ctx context.Context, authorIDs []string, limit int64) ([]schema.Post, error) {
	return m.findPosts(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}}, limit)
}

func (m *mongoDB) findPosts(ctx context.Context, query bson.M, limit int64) ([]schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{"created_at", -1}, {"_id", 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := m.collection(schema.PostCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query posts with error: %s", err)
		return nil, err
	}

	posts := make([]schema.Post, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts with error: %w", err)
	}

	return posts, nil
}

// ToggleLike removes viewer from the like set when present, otherwise adds it.
// Each branch is a single conditional update so concurrent toggles never lose a like.
func (m *mongoDB) ToggleLike(ctx context.Context, postID, viewer string) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	post, err := m.updatePost(ctx,
		bson.M{"_id": postID, "likes": viewer},
		bson.M{"$pull": bson.M{"likes": viewer}},
	)
	if err != ErrPostNotFound {
		return post, err
	}

	return m.updatePost(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": viewer}},
	)
}

// Like adds viewer into the like set
func (m *mongoDB) Like(ctx context.Context, postID, viewer string) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.updatePost(ctx, bson.M{"_id": postID}, bson.M{"$addToSet": bson.M{"likes": viewer}})
}

// Unlike removes viewer from the like set
func (m *mongoDB) Unlike(ctx context.Context, postID, viewer string) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.updatePost(ctx, bson.M{"_id": postID}, bson.M{"$pull": bson.M{"likes": viewer}})
}

// IncrementShare counts one more share of a post
func (m *mongoDB) IncrementShare(ctx context.Context, postID string) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.updatePost(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"share_count": 1}})
}

func (m *mongoDB) updatePost(ctx context.Context, filter, update bson.M) (*schema.Post, error) {
	var post schema.Post
	err := m.collection(schema.PostCollection).FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// AddComment appends a comment to a post and bumps its comment count
func (m *mongoDB) AddComment(ctx context.Context, comment schema.Comment) (*schema.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := m.collection(schema.PostCollection).CountDocuments(ctx, bson.M{"_id": comment.PostID})
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, ErrPostNotFound
	}

	comments := m.collection(schema.CommentCollection)
	if _, err := comments.InsertOne(ctx, comment); err != nil {
		return nil, err
	}

	if _, err := m.collection(schema.PostCollection).UpdateOne(ctx,
		bson.M{"_id": comment.PostID},
		bson.M{"$inc": bson.M{"comment_count": 1}},
	); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Errorf("increase comment count of post %s", comment.PostID)

		// comment_count must keep matching the stored comments
		rollbackCtx, cancelRollback := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancelRollback()
		if _, rollbackErr := comments.DeleteOne(rollbackCtx, bson.M{"_id": comment.ID}); rollbackErr != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(rollbackErr).Errorf("remove orphan comment %s", comment.ID)
		}
		return nil, err
	}

	return &comment, nil
}

// ListComments returns the comments of a post, oldest first
func (m *mongoDB) ListComments(ctx context.Context, postID string) ([]schema.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := m.collection(schema.CommentCollection).Find(ctx,
		bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{"created_at", 1}, {"_id", 1}}),
	)
	if err != nil {
		return nil, err
	}

	comments := make([]schema.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments with error: %w", err)
	}

	return comments, nil
}
