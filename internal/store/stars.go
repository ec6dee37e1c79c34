package store

import "github.com/cooksync/backend/internal/storage"

// Star ledger limits.
const (
	maxDailyStars    = 3
	maxLifetimeStars = 100
	starsPerLevel    = 10
)

// Reasons callers pass to EarnStars.
const (
	ReasonCook   = "cook"
	ReasonRecipe = "recipe"
)

// EarnStars grants up to amount stars, bounded by the 3-per-day and
// 100-lifetime caps. Returns true iff at least one star was granted.
// Logged-out calls are a no-op returning false.
func (s *Store) EarnStars(amount int, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.earnStarsLocked(amount)
}

// earnStarsLocked holds the ledger rules; callers hold the write lock.
//
// The daily counter resets lazily: todayStars is treated as zero whenever
// lastStarDate is not today, but the persisted fields are only rewritten on
// a successful grant. A day boundary with no grant leaves the stale counter
// in storage, which is harmless because every read applies the same rule.
func (s *Store) earnStarsLocked(amount int) bool {
	if s.user == nil {
		return false
	}

	today := s.today()
	todayStars := s.user.TodayStars
	if s.user.LastStarDate != today {
		todayStars = 0
	}
	if todayStars >= maxDailyStars {
		return false
	}

	granted := amount
	if remaining := maxDailyStars - todayStars; granted > remaining {
		granted = remaining
	}
	if granted <= 0 {
		return false
	}

	stars := s.user.Stars + granted
	if stars > maxLifetimeStars {
		stars = maxLifetimeStars
	}

	s.user.Stars = stars
	s.user.TodayStars = todayStars + granted
	s.user.LastStarDate = today
	s.persist(storage.KeyUser, s.user)

	return true
}

// StarLevel derives the display level from lifetime stars.
func (s *Store) StarLevel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return 0
	}
	return s.user.Stars / starsPerLevel
}
