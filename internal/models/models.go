package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Account struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	AccountID int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categories a blog post may be filed under.
var Categories = []string{
	"Tech",
	"Programming",
	"Gaming",
	"Tech News",
	"Productivity",
	"Blockchain",
	"IoT",
	"Reviews",
	"Tutorials",
	"Career",
	"Business",
	"Health Tech",
	"Sports",
	"Entertainment",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// AccountCreated is published to the message broker after a successful sign-up.
type AccountCreated struct {
	EventID    string    `json:"event_id"`
	Email      string    `json:"to"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
