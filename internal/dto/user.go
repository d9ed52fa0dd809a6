package dto

// SendCodeRequest is the JSON body for POST /auth/code.
type SendCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,ir_mobile"`
}

type SendCodeResponse struct {
	PhoneNumber string `json:"phone_number"`
	SentAt      int64  `json:"sent_at"`
	Timeout     int64  `json:"timeout"`
}

// LoginRequest is the JSON body for POST /auth/login. One of Code and
// Password is required.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,ir_mobile"`
	Code        string `json:"code" binding:"required_without=Password"`
	Password    string `json:"password"`
}

// UserResponse is returned when user info is needed (e.g. after login).
type UserResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type LoginResponse struct {
	OK        bool         `json:"ok"`
	IsNewUser bool         `json:"is_new_user"`
	User      UserResponse `json:"user"`
}

// UpdateProfileRequest is the JSON body for PATCH /me.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"max=60"`
	LastName  string `json:"last_name" binding:"max=60"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}
