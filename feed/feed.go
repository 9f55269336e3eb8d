package feed

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/helpdesk-community/helpdesk-api/consts"
	"github.com/helpdesk-community/helpdesk-api/schema"
	"github.com/helpdesk-community/helpdesk-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "feed")
}

// Viewer is the part of a profile which decides what the feed shows
type Viewer struct {
	JoinedGroups []string
	Following    []string
}

// NewViewer reads the feed context out of a profile
func NewViewer(p *schema.Profile) Viewer {
	if p == nil {
		return Viewer{}
	}
	return Viewer{
		JoinedGroups: p.JoinedGroupIDs,
		Following:    p.FollowingUserIDs,
	}
}

// Composer builds the home feed
type Composer struct {
	posts store.PostStore
}

func NewComposer(posts store.PostStore) *Composer {
	return &Composer{posts: posts}
}

// Compose returns the posts of joined groups and followed authors, newest
// first, at most one page.
func (c *Composer) Compose(ctx context.Context, v Viewer) ([]schema.Post, error) {
	groups := categoryKeys(v.JoinedGroups)
	following := nonEmpty(v.Following)

	if len(groups) == 0 && len(following) == 0 {
		return []schema.Post{}, nil
	}

	var byGroup, byAuthor []schema.Post

	g, gctx := errgroup.WithContext(ctx)
	if len(groups) > 0 {
		g.Go(func() error {
			posts, err := c.posts.ListPostsByCategories(gctx, groups, consts.FeedPageSize)
			if err != nil {
				return err
			}
			byGroup = posts
			return nil
		})
	}
	if len(following) > 0 {
		g.Go(func() error {
			posts, err := c.posts.ListPostsByAuthors(gctx, following, consts.FeedPageSize)
			if err != nil {
				return err
			}
			byAuthor = posts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("compose feed")
		return nil, err
	}

	return Merge(v, consts.FeedPageSize, byGroup, byAuthor), nil
}

// GroupPosts lists one board newest first
func (c *Composer) GroupPosts(ctx context.Context, category string) ([]schema.Post, error) {
	posts, err := c.posts.ListPostsByCategories(ctx, []string{schema.CategoryKey(category)}, consts.FeedPageSize)
	if err != nil {
		log.WithError(err).WithField("category", category).Error("list group posts")
		return nil, err
	}
	return posts, nil
}

// Merge dedupes the given post lists by id, keeps posts visible to v and
// orders them by created_at desc then id. At most limit posts are returned.
func Merge(v Viewer, limit int, lists ...[]schema.Post) []schema.Post {
	groups := toSet(categoryKeys(v.JoinedGroups))
	following := toSet(v.Following)

	seen := map[string]struct{}{}
	result := make([]schema.Post, 0)
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			_, inGroup := groups[schema.CategoryKey(p.GroupCategory)]
			_, byFollowed := following[p.AuthorID]
			if !inGroup && !byFollowed {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

func categoryKeys(categories []string) []string {
	keys := make([]string, 0, len(categories))
	for _, c := range categories {
		if k := schema.CategoryKey(c); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func nonEmpty(list []string) []string {
	result := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}
