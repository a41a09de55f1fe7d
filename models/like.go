package models

import (
	"time"
)

type Like struct {
	LikeID    uint      `gorm:"column:like_id;primaryKey;autoIncrement" json:"-"`
	ReportID  uint      `gorm:"column:report_id;not null;uniqueIndex:idx_likes_report_user" json:"report_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_likes_report_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Report Report `gorm:"foreignKey:ReportID" json:"-"`
}
