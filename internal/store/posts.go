package store

import (
	"fmt"

	"github.com/cooksync/backend/internal/models"
	"github.com/cooksync/backend/internal/storage"
)

// AddUserPost stores a new marketplace listing at the head of the
// collection. New listings start available with zero likes. Returns the
// generated post id.
func (s *Store) AddUserPost(post models.UserPost) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = fmt.Sprintf("user-post-%d", s.now().UnixMilli())
	post.CreatedAt = s.timestamp()
	post.Status = models.PostAvailable
	post.Likes = 0

	s.userPosts = append([]models.UserPost{post}, s.userPosts...)
	s.persist(storage.KeyUserPosts, s.userPosts)

	return post.ID
}

// UpdateUserPost shallow-merges the edit into the matching listing. Status
// toggles arrive through here as well; they are independent of deletion.
// Unknown ids no-op.
func (s *Store) UpdateUserPost(id string, update models.UserPostUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.userPosts {
		if s.userPosts[i].ID != id {
			continue
		}
		p := &s.userPosts[i]
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Place != nil {
			p.Place = *update.Place
		}
		if update.Likes != nil {
			p.Likes = *update.Likes
		}
		if update.Status != nil {
			p.Status = *update.Status
		}
		s.persist(storage.KeyUserPosts, s.userPosts)
		return
	}
}

// DeleteUserPost removes the matching listing. Unknown ids no-op.
func (s *Store) DeleteUserPost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.userPosts {
		if p.ID == id {
			s.userPosts = append(s.userPosts[:i], s.userPosts[i+1:]...)
			s.persist(storage.KeyUserPosts, s.userPosts)
			return
		}
	}
}

// UserPosts returns a copy of the listings, newest first.
func (s *Store) UserPosts() []models.UserPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserPost(nil), s.userPosts...)
}

// UserPost returns the listing with the given id.
func (s *Store) UserPost(id string) (models.UserPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.userPosts {
		if p.ID == id {
			return p, true
		}
	}
	return models.UserPost{}, false
}

// ToggleLikePost adds the listing to the liked set, or removes it when
// already present. This is the pure entity form; the HTTP handler is the
// only adapter in front of it.
func (s *Store) ToggleLikePost(post models.UserPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.likedPosts {
		if p.ID == post.ID {
			s.likedPosts = append(s.likedPosts[:i], s.likedPosts[i+1:]...)
			s.persist(storage.KeyLikedPosts, s.likedPosts)
			return
		}
	}

	s.likedPosts = append(s.likedPosts, models.LikedPost{UserPost: post, SavedAt: s.timestamp()})
	s.persist(storage.KeyLikedPosts, s.likedPosts)
}

// IsPostLiked reports membership in the liked set.
func (s *Store) IsPostLiked(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.likedPosts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

// LikedPosts returns a copy of the liked-posts collection.
func (s *Store) LikedPosts() []models.LikedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LikedPost(nil), s.likedPosts...)
}
