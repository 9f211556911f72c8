package model

import "time"

// Publication types.
var PublicationTypes = []string{"conference", "journal", "workshop", "book_chapter", "thesis"}

// Publication year bounds.
const (
	PublicationYearMin = 2000
	PublicationYearMax = 2100
)

// Publication is a research paper record; table publications.
type Publication struct {
	PublicationID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title         string      `gorm:"type:varchar(500);not null"                     json:"title"`
	Authors       StringArray `gorm:"type:text[];not null"                           json:"authors"`
	Venue         string      `gorm:"type:varchar(500);not null"                     json:"venue"`
	Year          int         `gorm:"not null"                                       json:"year"`
	Type          string      `gorm:"type:varchar(30);not null"                      json:"type"`
	DOI           string      `gorm:"column:doi;type:varchar(255)"                   json:"doi,omitempty"`
	URL           string      `gorm:"type:varchar(500)"                              json:"url,omitempty"`
	PDFFile       string      `gorm:"column:pdf_file;type:varchar(500)"              json:"pdfFile,omitempty"`
	Image         string      `gorm:"type:varchar(500)"                              json:"image,omitempty"`
	Abstract      string      `gorm:"type:text"                                      json:"abstract,omitempty"`
	Keywords      StringArray `gorm:"type:text[];not null;default:'{}'"              json:"keywords"`
	Citations     int         `gorm:"not null;default:0"                             json:"citations"`
	IsPublished   bool        `gorm:"not null;default:true"                          json:"isPublished"`
	PublishedDate *time.Time  `json:"publishedDate,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Publication) TableName() string { return "publications" }
