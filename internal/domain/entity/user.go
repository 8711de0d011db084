package entity

import (
	"time"
)

type User struct {
	UID         string `json:"uid" firestore:"uid"`
	Email       string `json:"email" firestore:"email"`
	FirstName   string `json:"first_name" firestore:"firstName"`
	LastName    string `json:"last_name" firestore:"lastName"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role        string `json:"role" firestore:"role"`
	IsActive    bool   `json:"is_active" firestore:"isActive"`

	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	LastLoginAt time.Time `json:"last_login_at" firestore:"lastLoginAt"`
}
