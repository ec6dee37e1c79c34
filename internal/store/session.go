package store

import (
	"context"
	"log"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// Login is simulated: it always succeeds and installs the deterministic demo
// account. The password is accepted but never verified. The configured fake
// latency is applied first and honors ctx cancellation.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:           "1",
		Name:         "김민지",
		Nickname:     "민지",
		Email:        email,
		Level:        "미슐랭 3스타",
		Bio:          "매일 조금씩 요리 실력을 키워가고 있어요!",
		Location:     "대전 서구 둔산동",
		Stars:        15,
		TodayStars:   0,
		LastStarDate: s.today(),
	}
	s.user = user
	s.persist(storage.KeyUser, user)
	s.reloadProgressLocked(ctx, user.ID)

	u := *user
	return &u, nil
}

// Signup creates a fresh account with zeroed star fields. The password is
// bcrypt-hashed and held in memory only; nothing ever reads it back.
func (s *Store) Signup(ctx context.Context, data models.SignupData) (*models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:           strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:         data.Name,
		Nickname:     data.Nickname,
		Email:        data.Email,
		Level:        "미슐랭 0스타",
		Bio:          "CookSync와 함께 요리를 시작해요!",
		Stars:        0,
		TodayStars:   0,
		LastStarDate: s.today(),
		PasswordHash: string(hash),
	}
	s.user = user
	s.persist(storage.KeyUser, user)
	s.reloadProgressLocked(ctx, user.ID)

	u := *user
	return &u, nil
}

// Logout clears the session and removes the persisted account record. The
// content collections deliberately survive so demo data stays sticky across
// sessions.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Delete(context.Background(), storage.KeyUser); err != nil {
		log.Printf("store: delete %s: %v", storage.KeyUser, err)
	}
}

// UpdateProfile shallow-merges the provided fields into the current user and
// persists. No-op when logged out.
func (s *Store) UpdateProfile(update models.ProfileUpdate) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Nickname != nil {
		s.user.Nickname = *update.Nickname
	}
	if update.ProfileImage != nil {
		s.user.ProfileImage = *update.ProfileImage
	}
	if update.Bio != nil {
		s.user.Bio = *update.Bio
	}
	if update.Location != nil {
		s.user.Location = *update.Location
	}
	s.persist(storage.KeyUser, s.user)

	u := *s.user
	return &u
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoggedIn reports whether a session is active.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// reloadProgressLocked swaps in the completed/reviewed sets for the given
// account. Callers hold the write lock.
func (s *Store) reloadProgressLocked(ctx context.Context, userID string) {
	s.completed = s.loadProgress(ctx, storage.KeyCompletedRecipes, userID)
	s.reviewed = s.loadProgress(ctx, storage.KeyReviewedRecipes, userID)
}

func (s *Store) simulateLatency(ctx context.Context) error {
	s.mu.RLock()
	d := s.simulatedLatency
	s.mu.RUnlock()

	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
