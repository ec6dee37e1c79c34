// Package storage provides the persistent key-value layer the state store
// writes through. Values are JSON documents keyed by fixed cooksync_* names,
// the same layout the CookSync client kept in browser local storage.
package storage

import (
	"context"
	"encoding/json"
	"log"
)

// Well-known storage keys.
const (
	KeyUser             = "cooksync_user"
	KeyLikedRecipes     = "cooksync_liked_recipes"
	KeyConversations    = "cooksync_conversations"
	KeyMessages         = "cooksync_messages"
	KeyUserRecipes      = "cooksync_user_recipes"
	KeyUserPosts        = "cooksync_user_posts"
	KeyLikedPosts       = "cooksync_liked_posts"
	KeyCompletedRecipes = "cooksync_completed_recipes"
	KeyReviewedRecipes  = "cooksync_reviewed_recipes"
	KeyCatalog          = "cooksync_catalog"
)

// KV is the minimal key-value contract the store needs. Implementations must
// make Set durable before returning.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Key appends a user id to a base key so per-account collections stay
// isolated. With no user it returns the base unchanged, which is also the
// pre-namespacing legacy layout.
func Key(base, userID string) string {
	if userID == "" {
		return base
	}
	return base + ":" + userID
}

// LoadJSON reads key into dst. It never fails the caller: a missing key, a
// backend error, or malformed JSON leaves dst untouched so the fallback the
// caller preset stays in effect. Returns true when dst was populated.
func LoadJSON(ctx context.Context, kv KV, key string, dst interface{}) bool {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("storage: read %s: %v", key, err)
		return false
	}
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("storage: malformed value at %s, keeping fallback: %v", key, err)
		return false
	}
	return true
}

// SaveJSON marshals v and writes it through to key.
func SaveJSON(ctx context.Context, kv KV, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw)
}
