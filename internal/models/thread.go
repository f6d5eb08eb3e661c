package models

import (
	"time"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Owner     string    `gorm:"type:varchar(50);index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;default:current_timestamp" json:"created_at"`
}
