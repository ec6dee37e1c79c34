// Package store owns all cross-request application state for the CookSync
// API: the session, the four content collections, the message log, the star
// ledger, and the per-user progress sets. It is the sole writer to the
// persistent key-value layer; every mutation updates memory and then writes
// the whole affected collection back through before returning.
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// Store is the application state struct. One instance is built at startup
// and shared by every handler.
type Store struct {
	mu sync.RWMutex
	kv storage.KV

	// now is swapped in tests that cross day boundaries.
	now func() time.Time

	// simulatedLatency reproduces the client's fixed fake network delay on
	// login and signup. Zero disables it.
	simulatedLatency time.Duration

	user          *models.User
	likedRecipes  []models.LikedRecipe
	conversations []models.Conversation
	messages      []models.Message
	userRecipes   []models.UserRecipe
	userPosts     []models.UserPost
	likedPosts    []models.LikedPost
	completed     []string
	reviewed      []string
}

// New restores all collections from kv. Malformed or missing values leave the
// matching collection at its empty fallback; nothing here ever fails hard.
func New(ctx context.Context, kv storage.KV) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
	}

	var user models.User
	if storage.LoadJSON(ctx, kv, storage.KeyUser, &user) && user.ID != "" {
		s.user = &user
	}

	storage.LoadJSON(ctx, kv, storage.KeyLikedRecipes, &s.likedRecipes)
	storage.LoadJSON(ctx, kv, storage.KeyConversations, &s.conversations)
	storage.LoadJSON(ctx, kv, storage.KeyMessages, &s.messages)
	storage.LoadJSON(ctx, kv, storage.KeyUserRecipes, &s.userRecipes)
	storage.LoadJSON(ctx, kv, storage.KeyUserPosts, &s.userPosts)

	s.likedPosts = s.loadLikedPosts(ctx)

	userID := ""
	if s.user != nil {
		userID = s.user.ID
	}
	s.completed = s.loadProgress(ctx, storage.KeyCompletedRecipes, userID)
	s.reviewed = s.loadProgress(ctx, storage.KeyReviewedRecipes, userID)

	return s
}

// SetSimulatedLatency configures the fake network delay applied by Login and
// Signup.
func (s *Store) SetSimulatedLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulatedLatency = d
}

// loadLikedPosts decodes the liked-posts collection, tolerating the legacy
// format that stored bare post ids. Legacy ids are resolved against the
// known user posts; unresolvable ids are dropped.
func (s *Store) loadLikedPosts(ctx context.Context) []models.LikedPost {
	raw, ok, err := s.kv.Get(ctx, storage.KeyLikedPosts)
	if err != nil {
		log.Printf("store: read %s: %v", storage.KeyLikedPosts, err)
		return nil
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	return normalizeLikedPosts(raw, s.userPosts, s.timestamp())
}

// normalizeLikedPosts branches on the stored shape: the legacy string-array
// format first, then the current object-array format, else empty.
func normalizeLikedPosts(raw []byte, posts []models.UserPost, nowISO string) []models.LikedPost {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err == nil {
		var liked []models.LikedPost
		for _, id := range ids {
			for _, p := range posts {
				if p.ID == id {
					liked = append(liked, models.LikedPost{UserPost: p, SavedAt: nowISO})
					break
				}
			}
		}
		return liked
	}

	var liked []models.LikedPost
	if err := json.Unmarshal(raw, &liked); err != nil {
		log.Printf("store: malformed value at %s, keeping fallback: %v", storage.KeyLikedPosts, err)
		return nil
	}
	normalized := liked[:0]
	for _, lp := range liked {
		if lp.ID == "" {
			continue
		}
		if lp.SavedAt == "" {
			lp.SavedAt = nowISO
		}
		normalized = append(normalized, lp)
	}
	return normalized
}

// loadProgress reads a per-user recipe-id set, preferring the namespaced key
// and falling back to the pre-namespacing legacy key.
func (s *Store) loadProgress(ctx context.Context, base, userID string) []string {
	var legacy []string
	storage.LoadJSON(ctx, s.kv, base, &legacy)

	ids := legacy
	if userID != "" {
		var namespaced []string
		if storage.LoadJSON(ctx, s.kv, storage.Key(base, userID), &namespaced) {
			ids = namespaced
		}
	}
	return ids
}

// persist writes a collection through to kv. Failures are logged and the
// in-memory state stays authoritative; store operations never surface
// storage errors to callers.
func (s *Store) persist(key string, v interface{}) {
	if err := storage.SaveJSON(context.Background(), s.kv, key, v); err != nil {
		log.Printf("store: persist %s: %v", key, err)
	}
}

// timestamp is the ISO instant used for savedAt/createdAt/message times.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// today is the calendar date used by the star ledger and liked-recipe stamps.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
