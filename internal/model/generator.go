package model

// GenerateRequest represents a password generation request.
// A missing length selects the default.
type GenerateRequest struct {
	Length *int `json:"length"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
