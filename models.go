package main

import "time"

// User is the persisted account record. Usernames are not unique; the id is
// the only handle clients hold.
type User struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Username  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Exercise is one logged activity. UserID references users.id by convention;
// it is checked once at insert time and never enforced afterwards (there is no
// delete to break it).
type Exercise struct {
	ID          string    `gorm:"primaryKey;type:text"`
	UserID      string    `gorm:"index:idx_exercises_user_date,priority:1;type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"index:idx_exercises_user_date,priority:2;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Exercise) TableName() string { return "exercises" }

/* ---------- Public JSON ---------- */

type userDTO struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func toUserDTO(u User) userDTO {
	return userDTO{Username: u.Username, ID: u.ID}
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}
