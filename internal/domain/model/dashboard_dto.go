package model

// SearchRequestDTO is the body of a dashboard search.
type SearchRequestDTO struct {
	Location string `json:"location" form:"location"`
}

// BackgroundDTO describes the hero background currently shown.
type BackgroundDTO struct {
	Index int    `json:"index"`
	Image string `json:"image"`
}

// ErrorResponseDTO is returned by the JSON API when a fetch fails.
type ErrorResponseDTO struct {
	Kind  ErrorKind `json:"kind"`
	Error string    `json:"error"`
}
