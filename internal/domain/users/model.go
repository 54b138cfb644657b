package users

import (
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password *string `gorm:""`
	Role     string  `gorm:"not null;default:'user'"`

	Restaurants  []restaurants.Restaurant    `gorm:"foreignKey:OwnerID"`
	Subscription *subscriptions.Subscription `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
