package catalog

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Filter holds the shared exercise search query. The query can be set
// from one request path and read from another, so access is guarded and
// interested parties get changes pushed over a channel instead of
// polling.
type Filter struct {
	mu          sync.RWMutex
	query       string
	subscribers map[int]chan string
	nextSubID   int
}

func NewFilter() *Filter {
	return &Filter{
		subscribers: make(map[int]chan string),
	}
}

func (f *Filter) Query() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.query
}

// SetQuery updates the query and notifies all subscribers. A subscriber
// that is not draining its channel misses the update rather than
// blocking the writer.
func (f *Filter) SetQuery(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if query == f.query {
		return
	}
	f.query = query

	for _, sub := range f.subscribers {
		select {
		case sub <- query:
		default:
		}
	}
}

// Subscribe returns a channel receiving query updates and a cancel func
// which must be called when the subscriber is done.
func (f *Filter) Subscribe() (<-chan string, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextSubID
	f.nextSubID++

	sub := make(chan string, 1)
	f.subscribers[id] = sub

	return sub, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subscribers, id)
		close(sub)
	}
}

// ObserveQueryUpdates subscribes to the filter, logging and counting
// query changes until the returned stop func is called.
func ObserveQueryUpdates(f *Filter, updatesCounter prometheus.Counter) (stop func()) {
	updates, unsub := f.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for query := range updates {
			log.Debugf("exercise search query set to %q", query)
			updatesCounter.Inc()
		}
	}()
	return func() {
		unsub()
		<-done
	}
}

// Apply filters exercises by the current query, matched as a
// case-insensitive substring of the exercise name. An empty query
// matches everything.
func (f *Filter) Apply(exercises []Exercise) []Exercise {
	query := strings.ToLower(strings.TrimSpace(f.Query()))
	if query == "" {
		return exercises
	}

	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if strings.Contains(strings.ToLower(e.Name), query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
