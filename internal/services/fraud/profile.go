package fraud

import "sync"

// ProfileEntry couples one account's profile with the lock that guards
// it. The engine holds the lock across the whole read-compute-commit
// section for a transaction.
type ProfileEntry struct {
	sync.Mutex
	Profile
}

// ProfileStore owns all account profiles. Profiles are created lazily
// on first access and live until the store is torn down; the engine
// never deletes one. Implementations must not serialize access across
// different accounts.
type ProfileStore interface {
	// GetOrCreate returns the entry for the account, creating an empty
	// profile on first sight.
	GetOrCreate(accountID string) *ProfileEntry

	// Get returns the entry if the account has been seen before.
	Get(accountID string) (*ProfileEntry, bool)
}

// MemoryProfileStore is the in-process ProfileStore. A persistent or
// distributed store can be substituted without touching scoring logic.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*ProfileEntry
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]*ProfileEntry)}
}

func (s *MemoryProfileStore) GetOrCreate(accountID string) *ProfileEntry {
	s.mu.RLock()
	entry, ok := s.profiles[accountID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.profiles[accountID]; ok {
		return entry
	}
	entry = &ProfileEntry{}
	s.profiles[accountID] = entry
	return entry
}

func (s *MemoryProfileStore) Get(accountID string) (*ProfileEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.profiles[accountID]
	return entry, ok
}

// Len reports how many accounts have profiles.
func (s *MemoryProfileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
