package models

// User is the account record the store persists under the cooksync_user key.
// JSON field names follow the CookSync client payloads, which are camelCase.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	Level        string `json:"level"`
	Bio          string `json:"bio"`
	Location     string `json:"location,omitempty"`
	Stars        int    `json:"stars"`
	TodayStars   int    `json:"todayStars"`
	LastStarDate string `json:"lastStarDate"`

	// Held in memory only. Login is simulated and never verifies it.
	PasswordHash string `json:"-"`
}

// ProfileUpdate carries the fields a profile edit may change. Nil means
// "leave as is", matching the store's shallow-merge semantics.
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Nickname     *string `json:"nickname,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`
}

// SignupData is the profile a new account starts from.
type SignupData struct {
	Name     string `json:"name" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
