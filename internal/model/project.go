package model

import "time"

// Project enums.
var (
	ProjectCategories = []string{"edge_computing", "iot_security", "5g_6g", "ai_ml", "other"}
	ProjectStatuses   = []string{"ongoing", "completed", "planned"}
)

// Project is a research project; table projects.
type Project struct {
	ProjectID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title           string      `gorm:"type:varchar(500);not null"                     json:"title"`
	Description     string      `gorm:"type:text;not null"                             json:"description"`
	FullDescription string      `gorm:"type:text"                                      json:"fullDescription,omitempty"`
	Image           string      `gorm:"type:varchar(500)"                              json:"image,omitempty"`
	Category        string      `gorm:"type:varchar(30);not null"                      json:"category"`
	Status          string      `gorm:"type:varchar(20);not null;default:'ongoing'"    json:"status"`
	StartDate       time.Time   `gorm:"not null"                                       json:"startDate"`
	EndDate         *time.Time  `json:"endDate,omitempty"`
	FundingAgency   string      `gorm:"type:varchar(255)"                              json:"fundingAgency,omitempty"`
	Budget          float64     `gorm:"type:numeric"                                   json:"budget,omitempty"`
	Technologies    StringArray `gorm:"type:text[];not null;default:'{}'"              json:"technologies"`
	GithubURL       string      `gorm:"type:varchar(500)"                              json:"githubUrl,omitempty"`
	WebsiteURL      string      `gorm:"type:varchar(500)"                              json:"websiteUrl,omitempty"`
	IsPublished     bool        `gorm:"not null;default:true"                          json:"isPublished"`
	BaseModel

	// Populated references. The join tables hold plain uuid pairs without
	// foreign keys: a deleted member or publication simply drops out of the
	// populated list while its row lingers until the integrity check finds it.
	Members      []Member      `gorm:"many2many:project_members;foreignKey:ProjectID;joinForeignKey:ProjectID;references:MemberID;joinReferences:MemberID"                     json:"members"`
	Publications []Publication `gorm:"many2many:project_publications;foreignKey:ProjectID;joinForeignKey:ProjectID;references:PublicationID;joinReferences:PublicationID" json:"publications"`
}

// TableName sets the table name.
func (Project) TableName() string { return "projects" }

// ProjectMember is one project→member join row.
type ProjectMember struct {
	ProjectID string `gorm:"type:uuid;primaryKey"`
	MemberID  string `gorm:"type:uuid;primaryKey"`
}

// TableName sets the table name.
func (ProjectMember) TableName() string { return "project_members" }

// ProjectPublication is one project→publication join row.
type ProjectPublication struct {
	ProjectID     string `gorm:"type:uuid;primaryKey"`
	PublicationID string `gorm:"type:uuid;primaryKey"`
}

// TableName sets the table name.
func (ProjectPublication) TableName() string { return "project_publications" }
