package socialdir

import (
	"strings"
	"sync"
)

// Store keeps a thread-safe snapshot of team social accounts in memory,
// keyed by team abbreviation.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]TeamSocialAccount
	order    []string
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]TeamSocialAccount),
	}
}

// List returns a copy of the current accounts in load order.
func (s *Store) List() []TeamSocialAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]TeamSocialAccount, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.accounts[id])
	}
	return result
}

// Get retrieves an account by team abbreviation, case-insensitive.
func (s *Store) Get(abbrev string) (TeamSocialAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[strings.ToUpper(abbrev)]
	return account, ok
}

// Replace swaps the existing accounts with a new snapshot.
func (s *Store) Replace(accounts []TeamSocialAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]TeamSocialAccount, len(accounts))
	s.order = make([]string, 0, len(accounts))
	for _, account := range accounts {
		id := strings.ToUpper(account.TeamID)
		if _, exists := s.accounts[id]; !exists {
			s.order = append(s.order, id)
		}
		s.accounts[id] = account
	}
}
