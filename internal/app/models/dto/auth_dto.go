package dto

// LoginRequest carries operator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the operator identity
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Avatar      string `json:"avatar,omitempty"`
}

// MeResponse is the authenticated operator's own profile
type MeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}
