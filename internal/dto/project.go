package dto

// ProjectListRequest holds the query parameters for GET /api/projects.
type ProjectListRequest struct {
	Status   string `form:"status"   binding:"omitempty,oneof=ongoing completed planned"`
	Category string `form:"category" binding:"omitempty,oneof=edge_computing iot_security 5g_6g ai_ml other"`
}

// CreateProjectRequest is the create payload (JSON or multipart form).
// Members and Publications are referenced by id.
type CreateProjectRequest struct {
	Title           string      `json:"title"           form:"title"       binding:"required,max=500"`
	Description     string      `json:"description"     form:"description" binding:"required"`
	FullDescription string      `json:"fullDescription" form:"fullDescription"`
	Category        string      `json:"category"        form:"category"    binding:"required,oneof=edge_computing iot_security 5g_6g ai_ml other"`
	Status          string      `json:"status"          form:"status"      binding:"required,oneof=ongoing completed planned"`
	StartDate       string      `json:"startDate"       form:"startDate"   binding:"required"`
	EndDate         string      `json:"endDate"         form:"endDate"`
	FundingAgency   string      `json:"fundingAgency"   form:"fundingAgency"`
	Budget          float64     `json:"budget"          form:"budget"      binding:"omitempty,min=0"`
	Members         FlexStrings `json:"members"         form:"members"`
	Publications    FlexStrings `json:"publications"    form:"publications"`
	Technologies    FlexStrings `json:"technologies"    form:"technologies"`
	GithubURL       string      `json:"githubUrl"       form:"githubUrl"`
	WebsiteURL      string      `json:"websiteUrl"      form:"websiteUrl"`
	IsPublished     *FlexBool   `json:"isPublished"     form:"isPublished"`
}

// UpdateProjectRequest merges only the fields present in the body. Member and
// publication id lists replace the stored lists wholesale when supplied.
type UpdateProjectRequest struct {
	Title           *string     `json:"title"           form:"title"       binding:"omitempty,max=500"`
	Description     *string     `json:"description"     form:"description"`
	FullDescription *string     `json:"fullDescription" form:"fullDescription"`
	Category        *string     `json:"category"        form:"category"    binding:"omitempty,oneof=edge_computing iot_security 5g_6g ai_ml other"`
	Status          *string     `json:"status"          form:"status"      binding:"omitempty,oneof=ongoing completed planned"`
	StartDate       *string     `json:"startDate"       form:"startDate"`
	EndDate         *string     `json:"endDate"         form:"endDate"`
	FundingAgency   *string     `json:"fundingAgency"   form:"fundingAgency"`
	Budget          *float64    `json:"budget"          form:"budget"      binding:"omitempty,min=0"`
	Members         FlexStrings `json:"members"         form:"members"`
	Publications    FlexStrings `json:"publications"    form:"publications"`
	Technologies    FlexStrings `json:"technologies"    form:"technologies"`
	GithubURL       *string     `json:"githubUrl"       form:"githubUrl"`
	WebsiteURL      *string     `json:"websiteUrl"      form:"websiteUrl"`
	IsPublished     *FlexBool   `json:"isPublished"     form:"isPublished"`
}
