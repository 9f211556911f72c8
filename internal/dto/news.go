package dto

// NewsListRequest holds the query parameters for GET /api/news.
type NewsListRequest struct {
	Page     int    `form:"page"     binding:"omitempty,min=1"`
	Limit    int    `form:"limit"    binding:"omitempty,min=1,max=100"`
	Category string `form:"category" binding:"omitempty,oneof=conference publication event announcement achievement"`
	Search   string `form:"search"`
}

// GetPage returns the page number with its default.
func (r *NewsListRequest) GetPage() int {
	if r.Page <= 0 {
		return 1
	}
	return r.Page
}

// GetLimit returns the page size with its default.
func (r *NewsListRequest) GetLimit() int {
	if r.Limit <= 0 {
		return 10
	}
	return r.Limit
}

// CreateNewsRequest is the create payload (JSON or multipart form).
type CreateNewsRequest struct {
	Title         string      `json:"title"         form:"title"         binding:"required,max=200"`
	Content       string      `json:"content"       form:"content"       binding:"required"`
	Excerpt       string      `json:"excerpt"       form:"excerpt"       binding:"omitempty,max=500"`
	Category      string      `json:"category"      form:"category"      binding:"required,oneof=conference publication event announcement achievement"`
	Tags          FlexStrings `json:"tags"          form:"tags"`
	PublishedDate string      `json:"publishedDate" form:"publishedDate"`
	IsPublished   *FlexBool   `json:"isPublished"   form:"isPublished"`
}

// UpdateNewsRequest merges only the fields present in the body.
type UpdateNewsRequest struct {
	Title         *string     `json:"title"         form:"title"         binding:"omitempty,max=200"`
	Content       *string     `json:"content"       form:"content"`
	Excerpt       *string     `json:"excerpt"       form:"excerpt"       binding:"omitempty,max=500"`
	Category      *string     `json:"category"      form:"category"      binding:"omitempty,oneof=conference publication event announcement achievement"`
	Tags          FlexStrings `json:"tags"          form:"tags"`
	PublishedDate *string     `json:"publishedDate" form:"publishedDate"`
	IsPublished   *FlexBool   `json:"isPublished"   form:"isPublished"`
}
