package models

// Authentication 已签发且仍然有效的 refresh token
type Authentication struct {
	Token string `gorm:"primaryKey;type:text" json:"token"`
}
