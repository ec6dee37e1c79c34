package models

// Marketplace post status values.
const (
	PostAvailable = "available"
	PostCompleted = "completed"
)

// UserPost is an N-bbang marketplace listing.
type UserPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Place       string `json:"place"`
	Likes       int    `json:"likes"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

// LikedPost is a marketplace listing saved into the liked-posts collection.
type LikedPost struct {
	UserPost
	SavedAt string `json:"savedAt"`
}

// UserPostUpdate is a partial edit of a listing.
type UserPostUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Place       *string `json:"place,omitempty"`
	Likes       *int    `json:"likes,omitempty"`
	Status      *string `json:"status,omitempty"`
}
