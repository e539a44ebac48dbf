package request

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRequest is used by the docente to create or edit an account. On update
// every field is optional.
type UserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AssignDocenteRequest struct {
	Email string `json:"email" binding:"required"`
}

type TransferRequestCreate struct {
	CourseID  string `json:"courseId" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	UserPhone string `json:"userPhone" binding:"required"`
}
