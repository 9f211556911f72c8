package model

import (
	"time"

	"gorm.io/datatypes"
)

// Member positions.
var MemberPositions = []string{
	"professor", "associate_professor", "assistant_professor", "postdoc",
	"phd_student", "master_student", "undergraduate", "research_assistant",
	"collaborator",
}

// Education is one entry of a member's education history, stored as JSONB.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
	Field       string `json:"field,omitempty"`
}

// SocialLinks holds a member's external profiles, stored as JSONB.
type SocialLinks struct {
	GoogleScholar   string `json:"googleScholar,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	GitHub          string `json:"github,omitempty"`
	ResearchGate    string `json:"researchGate,omitempty"`
	PersonalWebsite string `json:"personalWebsite,omitempty"`
}

// Member is a lab member profile; table members.
type Member struct {
	MemberID          string                             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string                             `gorm:"type:varchar(255);not null"                     json:"name"`
	Email             string                             `gorm:"type:varchar(255);not null"                     json:"email"`
	Phone             string                             `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	Position          string                             `gorm:"type:varchar(30);not null"                      json:"position"`
	AcademicTitle     string                             `gorm:"type:varchar(255)"                              json:"academicTitle,omitempty"`
	Affiliation       string                             `gorm:"type:varchar(255)"                              json:"affiliation,omitempty"`
	Bio               string                             `gorm:"type:text"                                      json:"bio,omitempty"`
	Photo             string                             `gorm:"type:varchar(500)"                              json:"photo,omitempty"`
	ResearchInterests StringArray                        `gorm:"type:text[];not null;default:'{}'"              json:"researchInterests"`
	Education         datatypes.JSONSlice[Education]     `gorm:"type:jsonb;not null;default:'[]'"               json:"education"`
	SocialLinks       datatypes.JSONType[SocialLinks]    `gorm:"type:jsonb;not null;default:'{}'"               json:"socialLinks"`
	JoinDate          time.Time                          `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"joinDate"`
	IsActive          bool                               `gorm:"not null;default:true"                          json:"isActive"`
	IsAlumni          bool                               `gorm:"not null;default:false"                         json:"isAlumni"`
	Order             int                                `gorm:"column:sort_order;not null;default:0"           json:"order"`
	BaseModel
}

// TableName sets the table name.
func (Member) TableName() string { return "members" }
