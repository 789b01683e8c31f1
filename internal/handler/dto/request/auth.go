package request

// LoginRequest only demands presence: the mocked identity provider accepts
// any non-empty email/password pair.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
