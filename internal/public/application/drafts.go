package application

import (
	"sync"
	"time"
)

// DraftStore holds in-flight submission workflows keyed by the draft id from
// the applicant's signed cookie. Drafts are memory-only: an abandoned draft
// simply expires, and nothing reaches the store until final submit.
type DraftStore struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	drafts map[string]*draftEntry
}

type draftEntry struct {
	workflow  *Workflow
	touchedAt time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[string]*draftEntry),
	}
}

// Put registers or refreshes a draft.
func (s *DraftStore) Put(id string, workflow *Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.purgeLocked(now)
	s.drafts[id] = &draftEntry{workflow: workflow, touchedAt: now}
}

// Get returns a live draft and refreshes its expiry.
func (s *DraftStore) Get(id string) (*Workflow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.purgeLocked(now)
	entry, ok := s.drafts[id]
	if !ok {
		return nil, false
	}
	entry.touchedAt = now
	return entry.workflow, true
}

// Delete drops a draft, typically after a successful submit.
func (s *DraftStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

func (s *DraftStore) purgeLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, entry := range s.drafts {
		if now.Sub(entry.touchedAt) > s.ttl {
			delete(s.drafts, id)
		}
	}
}
