package session

import (
	"context"
	"time"
)

// StartWatcher polls the underlying store and broadcasts a change for every
// key another process mutated since the last poll. It is the stand-in for
// the platform storage event the original design relied on: subscribers do
// not care who wrote the key, they just repaint from the store.
//
// Local writes update the baseline as they happen, so only external changes
// are re-broadcast. Runs until ctx is cancelled.
func (s *Store) StartWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, key := range s.pollExternal(ctx) {
				s.notifier.Broadcast(Change{Key: key})
			}
		case <-ctx.Done():
			return
		}
	}
}

// pollExternal diffs the persisted state against the last observed baseline
// and returns the keys that changed outside this process.
func (s *Store) pollExternal(ctx context.Context) []string {
	current, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "settings poll failed", "error", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string
	for key, value := range current {
		if s.seen[key] != value {
			changed = append(changed, key)
		}
	}
	for key := range s.seen {
		if _, ok := current[key]; !ok {
			changed = append(changed, key)
		}
	}

	s.seen = current
	return changed
}
