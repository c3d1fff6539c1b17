package dto

// ErrorResponseDTO is the common JSON error body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"enter a rss feed url"`
}
