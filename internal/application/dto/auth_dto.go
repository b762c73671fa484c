package dto

// LoginRequest carries the access code of the single-user gate.
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResponse returns the bearer token for subsequent API calls.
type LoginResponse struct {
	Token string `json:"token"`
}
