package entities

import (
	"slices"
	"time"
)

type Role string

const (
	RoleDocente    Role = "docente"
	RoleEstudiante Role = "estudiante"
)

// User is the profile document of an account.
//
// Storage model (DynamoDB):
//   - PK: uid
//   - GSI (email-index): email
//   - cursos_inscritos is a string set, so enrolling twice is a no-op.
type User struct {
	UID             string    `json:"uid"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	Rol             Role      `json:"rol"`
	PasswordHash    string    `json:"-"`
	CursosInscritos []string  `json:"cursos_inscritos"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u User) IsEnrolled(courseID string) bool {
	return slices.Contains(u.CursosInscritos, courseID)
}

// UserUpdate carries the optional fields of an account update.
type UserUpdate struct {
	Nombre       string
	Email        string
	PasswordHash string
}

// Identity is the authenticated caller, as carried by the access token.
type Identity struct {
	UID   string
	Email string
	Role  Role
}

func (i *Identity) IsDocente() bool {
	return i != nil && i.Role == RoleDocente
}
