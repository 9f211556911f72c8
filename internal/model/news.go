package model

import "time"

// News categories.
var NewsCategories = []string{"conference", "publication", "event", "announcement", "achievement"}

// News is a news post; table news.
type News struct {
	NewsID        string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"id"`
	Title         string      `gorm:"type:varchar(200);not null"                      json:"title"`
	Slug          string      `gorm:"type:varchar(255);not null"                      json:"slug"`
	Content       string      `gorm:"type:text;not null"                              json:"content"`
	Excerpt       string      `gorm:"type:varchar(500)"                               json:"excerpt"`
	Image         string      `gorm:"type:varchar(500)"                               json:"image,omitempty"`
	Category      string      `gorm:"type:varchar(30);not null;default:'announcement'" json:"category"`
	Tags          StringArray `gorm:"type:text[];not null;default:'{}'"               json:"tags"`
	AuthorID      string      `gorm:"type:uuid;not null"                              json:"-"`
	PublishedDate time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"publishedDate"`
	IsPublished   bool        `gorm:"not null;default:true"                           json:"isPublished"`
	Views         int64       `gorm:"not null;default:0"                              json:"views"`
	BaseModel

	// Populated reference; author_id is a plain uuid column without a foreign
	// key, so the author may be gone (no cascade on user deletion).
	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

// TableName sets the table name.
func (News) TableName() string { return "news" }
