package matching

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/helpdesk-community/helpdesk-api/consts"
	"github.com/helpdesk-community/helpdesk-api/schema"
	"github.com/helpdesk-community/helpdesk-api/store"
)

var log *logrus.Entry

var now = time.Now

func init() {
	log = logrus.WithField("prefix", "matching")
}

// Engine lists the help cards a viewer can swipe
type Engine struct {
	cards store.CardStore
}

func NewEngine(cards store.CardStore) *Engine {
	return &Engine{cards: cards}
}

// Match returns the cards eligible for viewer under q, newest first. The store
// narrows the candidates and the rules of Eligible decide.
func (e *Engine) Match(ctx context.Context, viewer string, q Query) ([]schema.HelpCard, error) {
	if q.Mode == "" {
		q.Mode = ModeAll
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	t := now()

	filter, ok := candidateFilter(viewer, q, t)
	if !ok {
		return []schema.HelpCard{}, nil
	}

	candidates, err := e.cards.ListCandidateCards(ctx, filter)
	if err != nil {
		log.WithError(err).WithField("mode", q.Mode).Error("list candidate cards")
		return nil, err
	}

	cards := Filter(candidates, viewer, q, t)
	log.WithField("mode", q.Mode).Debugf("%d of %d candidates eligible", len(cards), len(candidates))

	return cards, nil
}

// candidateFilter pushes the cheap part of the mode predicate down to the
// store. It returns false when no card can possibly match.
func candidateFilter(viewer string, q Query, t time.Time) (store.CardFilter, bool) {
	f := store.CardFilter{
		Viewer: viewer,
		Limit:  consts.CardCandidateLimit,
	}

	switch q.Mode {
	case ModeUrgent:
		f.Urgency = schema.UrgencyUrgent
		f.ExpiresAfter = &t
	case ModeNearby:
		f.Near = q.Origin
		f.RadiusMiles = q.RadiusMiles
	case ModeSkills:
		for _, s := range q.Skills {
			if canonical, ok := schema.CanonicalSkill(s); ok {
				f.Skills = append(f.Skills, canonical)
			}
		}
		if len(f.Skills) == 0 {
			return f, false
		}
	case ModeDeck:
		f.DeckID = q.DeckID
	}

	return f, true
}
