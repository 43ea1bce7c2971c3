package dto

// CreateQuoteRequestDTO is parsed from the "data" multipart field (JSON).
// Name and email checks live in the submission pipeline so retries always
// hit the same rules.
type CreateQuoteRequestDTO struct {
	Name              string       `json:"name" binding:"required"`
	Email             string       `json:"email" binding:"required"`
	Domain            string       `json:"domain"`
	Description       string       `json:"description"`
	WebsiteReferences []string     `json:"websiteReferences"`
	Selection         SelectionDTO `json:"selection"`
}
