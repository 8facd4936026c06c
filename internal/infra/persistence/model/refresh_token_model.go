package model

import "time"

// RefreshTokenModel mirrors the 'refresh_tokens' table. The token string is the primary key.
type RefreshTokenModel struct {
	Token      string    `gorm:"type:varchar(64);primaryKey"`
	Username   string    `gorm:"type:varchar(255);index:idx_refresh_tokens_username;not null"`
	ExpiryDate time.Time `gorm:"index:idx_refresh_tokens_expiry_date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
