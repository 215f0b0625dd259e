package dto

// RegisterRequest is the sign up payload.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,username"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
}

// OTPRequest carries a one-time code. Presence is checked by the service
// so the client gets the flow specific message.
type OTPRequest struct {
	OTP string `json:"otp"`
}

// EmailRequest asks for a code to be sent to an address.
type EmailRequest struct {
	Email string `json:"email"`
}

// EmailLoginRequest holds login credentials.
type EmailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest sets a new password after a reset code was verified.
type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"omitempty,min=8,max=128"`
}

// GoogleLoginRequest carries the authorization code obtained by the frontend.
type GoogleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse represents the bearer token handed out after login or verification.
type TokenResponse struct {
	Token string `json:"token"`
}
