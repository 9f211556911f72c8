package dto

import "github.com/KhanhKH069/icnlab-website-fixed/internal/model"

// MemberListRequest holds the query parameters for GET /api/members.
type MemberListRequest struct {
	Position string    `form:"position" binding:"omitempty,oneof=professor associate_professor assistant_professor postdoc phd_student master_student undergraduate research_assistant collaborator"`
	IsAlumni *FlexBool `form:"isAlumni"`
}

// CreateMemberRequest is the create payload (JSON or multipart form).
// Education and social links only arrive on the JSON path; the admin form
// submits researchInterests as a comma list.
type CreateMemberRequest struct {
	Name              string             `json:"name"              form:"name"     binding:"required,max=255"`
	Email             string             `json:"email"             form:"email"    binding:"required,email"`
	Phone             string             `json:"phone"             form:"phone"`
	Position          string             `json:"position"          form:"position" binding:"required,oneof=professor associate_professor assistant_professor postdoc phd_student master_student undergraduate research_assistant collaborator"`
	AcademicTitle     string             `json:"academicTitle"     form:"academicTitle"`
	Affiliation       string             `json:"affiliation"       form:"affiliation"`
	Bio               string             `json:"bio"               form:"bio"`
	ResearchInterests FlexStrings        `json:"researchInterests" form:"researchInterests"`
	Education         []model.Education  `json:"education"`
	SocialLinks       *model.SocialLinks `json:"socialLinks"`
	JoinDate          string             `json:"joinDate"          form:"joinDate"`
	IsActive          *FlexBool          `json:"isActive"          form:"isActive"`
	IsAlumni          *FlexBool          `json:"isAlumni"          form:"isAlumni"`
	Order             int                `json:"order"             form:"order"`
}

// UpdateMemberRequest merges only the fields present in the body.
type UpdateMemberRequest struct {
	Name              *string            `json:"name"              form:"name"     binding:"omitempty,max=255"`
	Email             *string            `json:"email"             form:"email"    binding:"omitempty,email"`
	Phone             *string            `json:"phone"             form:"phone"`
	Position          *string            `json:"position"          form:"position" binding:"omitempty,oneof=professor associate_professor assistant_professor postdoc phd_student master_student undergraduate research_assistant collaborator"`
	AcademicTitle     *string            `json:"academicTitle"     form:"academicTitle"`
	Affiliation       *string            `json:"affiliation"       form:"affiliation"`
	Bio               *string            `json:"bio"               form:"bio"`
	ResearchInterests FlexStrings        `json:"researchInterests" form:"researchInterests"`
	Education         []model.Education  `json:"education"`
	SocialLinks       *model.SocialLinks `json:"socialLinks"`
	JoinDate          *string            `json:"joinDate"          form:"joinDate"`
	IsActive          *FlexBool          `json:"isActive"          form:"isActive"`
	IsAlumni          *FlexBool          `json:"isAlumni"          form:"isAlumni"`
	Order             *int               `json:"order"             form:"order"`
}
