package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"` // Hash
	Fullname  string    `gorm:"type:text;not null" json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
}
