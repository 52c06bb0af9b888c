package user

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
	Age       int    `json:"age" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Identity is the claim payload echoed back alongside the token pair.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// BackendTokens is the token pair shape the frontend consumes. ExpiresIn is
// the absolute access-token expiry in Unix milliseconds.
type BackendTokens struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type SessionResponse struct {
	User          Identity      `json:"user"`
	BackendTokens BackendTokens `json:"backendTokens"`
}

type ProfileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
}
