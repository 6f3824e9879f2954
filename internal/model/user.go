package model

import "time"

// User represents an authenticated clinic user (pet owner or doctor).
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	Phone        string    `json:"phone" gorm:"size:32;not null;uniqueIndex:ux_users_phone"`
	IdentityCode string    `json:"identity_code" gorm:"size:64;not null;uniqueIndex:ux_users_identity_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
