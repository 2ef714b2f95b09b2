package model

import "time"

// DefaultImageFile is the placeholder served for users without an uploaded
// profile picture.
const DefaultImageFile = "default.jpg"

// User represents a registered account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:60;not null"` // Never expose in JSON
	ImageFile    string    `json:"image_file" gorm:"size:120;not null;default:'default.jpg'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// ImagePath is the static URL path of the user's profile picture.
func (u *User) ImagePath() string {
	name := u.ImageFile
	if name == "" {
		name = DefaultImageFile
	}
	return "/static/profile_pics/" + name
}
