package metrics

import (
	"sort"

	"github.com/uber-go/tally"
)

const (
	counterDecisions    = "cards.decisions"
	counterDeckJoins    = "decks.joins"
	counterFeed         = "feed.compositions"
	counterCardsCreated = "cards.created"
	counterExpiredCards = "cards.expired"
)

// Counter is one reported counter value
type Counter struct {
	Name  string            `json:"name"`
	Tags  map[string]string `json:"tags,omitempty"`
	Value int64             `json:"value"`
}

// Recorder counts domain events in memory. Values are read back with Counters.
type Recorder struct {
	scope tally.TestScope
}

func NewRecorder(prefix string) *Recorder {
	return &Recorder{
		scope: tally.NewTestScope(prefix, map[string]string{}),
	}
}

// Decision counts a swipe, tagged with accept or reject
func (r *Recorder) Decision(decision string) {
	r.scope.Tagged(map[string]string{"decision": decision}).Counter(counterDecisions).Inc(1)
}

// DeckJoin counts a deck join. via is "id" or "invite_code".
func (r *Recorder) DeckJoin(via string) {
	r.scope.Tagged(map[string]string{"via": via}).Counter(counterDeckJoins).Inc(1)
}

func (r *Recorder) FeedComposition() {
	r.scope.Counter(counterFeed).Inc(1)
}

func (r *Recorder) CardCreated(urgency string) {
	r.scope.Tagged(map[string]string{"urgency": urgency}).Counter(counterCardsCreated).Inc(1)
}

func (r *Recorder) ExpiredCards(n int64) {
	r.scope.Counter(counterExpiredCards).Inc(n)
}

// Counters returns every counter recorded so far ordered by name
func (r *Recorder) Counters() []Counter {
	snapshot := r.scope.Snapshot().Counters()

	counters := make([]Counter, 0, len(snapshot))
	for _, c := range snapshot {
		counters = append(counters, Counter{
			Name:  c.Name(),
			Tags:  c.Tags(),
			Value: c.Value(),
		})
	}

	sort.Slice(counters, func(i, j int) bool {
		if counters[i].Name != counters[j].Name {
			return counters[i].Name < counters[j].Name
		}
		return tagString(counters[i].Tags) < tagString(counters[j].Tags)
	})

	return counters
}

func tagString(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := ""
	for _, k := range keys {
		s += k + "=" + tags[k] + ","
	}
	return s
}
