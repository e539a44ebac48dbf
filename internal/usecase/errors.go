package usecase

import (
	"errors"

	"academia_bere/internal/domain/entities"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotEnrolled      = errors.New("not enrolled in course")
)

func requireIdentity(identity *entities.Identity) error {
	if identity == nil || identity.UID == "" {
		return ErrUnauthenticated
	}
	return nil
}

func requireDocente(identity *entities.Identity) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if !identity.IsDocente() {
		return ErrPermissionDenied
	}
	return nil
}
