package models

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      uint   `gorm:"not null" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// Uploaded photo filename under the uploads store, empty when the report
	// was submitted without a photo. Clients build {baseUrl}/uploads/{image}.
	Image string `json:"image"`
	// Free-form "lat,lng" string as sent by the mobile client.
	Location string `json:"location"`
	Priority string `json:"priority"`
	// pending or resolved. Legacy rows may carry NULL or '' from before the
	// default existed; the stats query still counts those as pending.
	Status     string     `gorm:"not null;default:'pending'" json:"status"`
	AdminNotes *string    `json:"admin_notes"`
	ResolvedAt *time.Time `json:"resolved_at"`

	// Likes go away with the report; the count is never cached anywhere.
	Likes []Like `json:"likes,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}
