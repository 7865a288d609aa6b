package dto

// LoginRequest is the credential pair for the admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ProfileResponse describes the authenticated user.
type ProfileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
