package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"correo" validate:"required,email,max=100"`
	Password string `json:"contrasena" validate:"required"`
}

type CreateAdminRequest struct {
	Email    string `json:"correo" validate:"required,email,max=100"`
	Password string `json:"contrasena" validate:"required,min=8,max=72"`
}

// Response DTOs

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	Account     AccountResponse `json:"usuario"`
}

type AccountResponse struct {
	ID          int64  `json:"id_usuario"`
	Email       string `json:"correo"`
	Role        string `json:"rol"`
	ReferenceID *int64 `json:"id_referencia"`
}
