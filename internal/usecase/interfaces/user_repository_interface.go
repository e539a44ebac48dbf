package interfaces

import (
	"context"

	"academia_bere/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User profiles.
//
// The account must already exist for every update; a missing account is
// reported through a zero User or found=false, never by creating the item.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (created bool, err error)
	GetByID(ctx context.Context, uid string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, uid string, upd entities.UserUpdate) (entities.User, error)
	SetRole(ctx context.Context, uid string, role entities.Role) (entities.User, error)
	Delete(ctx context.Context, uid string) error
	// AddEnrolledCourse adds courseID to the enrolled-courses set. It is a
	// set union: repeating it leaves a single entry.
	AddEnrolledCourse(ctx context.Context, uid, courseID string) (found bool, err error)
	// RemoveEnrolledCourse removes courseID from the set. Removing a course the
	// user does not have is a no-op that still reports found.
	RemoveEnrolledCourse(ctx context.Context, uid, courseID string) (found bool, err error)
}
