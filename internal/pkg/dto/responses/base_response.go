package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SourceError stands in for the payload of one aggregate source that could not be fetched.
type SourceError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
