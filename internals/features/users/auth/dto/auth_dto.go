package dto

// SignupRequest is the POST /signup body. Year and semester only make sense
// for students but are accepted as-is.
type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=teacher student"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year"`
	Semester   string `json:"semester"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// LoginRequest is the POST /login body; lookup is by the
// (name, role, email) triple.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=teacher student"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
