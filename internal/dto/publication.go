package dto

// PublicationListRequest holds the query parameters for GET /api/publications.
type PublicationListRequest struct {
	Page   int    `form:"page"   binding:"omitempty,min=1"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=100"`
	Year   int    `form:"year"   binding:"omitempty,min=2000,max=2100"`
	Type   string `form:"type"   binding:"omitempty,oneof=conference journal workshop book_chapter thesis"`
	Search string `form:"search"`
}

// GetPage returns the page number with its default.
func (r *PublicationListRequest) GetPage() int {
	if r.Page <= 0 {
		return 1
	}
	return r.Page
}

// GetLimit returns the page size with its default.
func (r *PublicationListRequest) GetLimit() int {
	if r.Limit <= 0 {
		return 20
	}
	return r.Limit
}

// CreatePublicationRequest is the create payload (JSON or multipart form).
// Authors are newline-delimited in form mode; author names contain commas.
type CreatePublicationRequest struct {
	Title         string      `json:"title"         form:"title"    binding:"required,max=500"`
	Authors       FlexLines   `json:"authors"       form:"authors"  binding:"required"`
	Venue         string      `json:"venue"         form:"venue"    binding:"required,max=500"`
	Year          int         `json:"year"          form:"year"     binding:"required,min=2000,max=2100"`
	Type          string      `json:"type"          form:"type"     binding:"required,oneof=conference journal workshop book_chapter thesis"`
	DOI           string      `json:"doi"           form:"doi"`
	URL           string      `json:"url"           form:"url"`
	Abstract      string      `json:"abstract"      form:"abstract"`
	Keywords      FlexStrings `json:"keywords"      form:"keywords"`
	PublishedDate string      `json:"publishedDate" form:"publishedDate"`
	IsPublished   *FlexBool   `json:"isPublished"   form:"isPublished"`
}

// UpdatePublicationRequest merges only the fields present in the body.
type UpdatePublicationRequest struct {
	Title         *string     `json:"title"         form:"title"    binding:"omitempty,max=500"`
	Authors       FlexLines   `json:"authors"       form:"authors"`
	Venue         *string     `json:"venue"         form:"venue"    binding:"omitempty,max=500"`
	Year          *int        `json:"year"          form:"year"     binding:"omitempty,min=2000,max=2100"`
	Type          *string     `json:"type"          form:"type"     binding:"omitempty,oneof=conference journal workshop book_chapter thesis"`
	DOI           *string     `json:"doi"           form:"doi"`
	URL           *string     `json:"url"           form:"url"`
	Abstract      *string     `json:"abstract"      form:"abstract"`
	Keywords      FlexStrings `json:"keywords"      form:"keywords"`
	Citations     *int        `json:"citations"     form:"citations" binding:"omitempty,min=0"`
	PublishedDate *string     `json:"publishedDate" form:"publishedDate"`
	IsPublished   *FlexBool   `json:"isPublished"   form:"isPublished"`
}

// PublicationStats is the GET /api/publications/stats/summary payload.
type PublicationStats struct {
	Summary PublicationSummary  `json:"summary"`
	ByYear  []YearCount         `json:"byYear"`
	ByType  []TypeCount         `json:"byType"`
}

// PublicationSummary aggregates published records.
type PublicationSummary struct {
	Total          int64 `json:"total"`
	TotalCitations int64 `json:"totalCitations"`
}

// YearCount is the per-year bucket.
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// TypeCount is the per-type bucket.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}
