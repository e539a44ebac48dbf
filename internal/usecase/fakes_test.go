package usecase

import (
	"context"
	"slices"
	"sync"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
)

// memoryUsers mirrors the DynamoDB semantics the usecases rely on: a missing
// account is a zero User and enrollment is a set union.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*memoryUsers)(nil)

func newMemoryUsers(users ...entities.User) *memoryUsers {
	m := &memoryUsers{users: map[string]entities.User{}}
	for _, u := range users {
		m.users[u.UID] = u
	}
	return m
}

func (m *memoryUsers) Create(_ context.Context, u entities.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.UID]; ok {
		return false, nil
	}
	m.users[u.UID] = u
	return true, nil
}

func (m *memoryUsers) GetByID(_ context.Context, uid string) (entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[uid], nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (m *memoryUsers) List(context.Context) ([]entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUsers) Update(_ context.Context, uid string, upd entities.UserUpdate) (entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return entities.User{}, nil
	}
	if upd.Nombre != "" {
		u.Nombre = upd.Nombre
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.PasswordHash != "" {
		u.PasswordHash = upd.PasswordHash
	}
	m.users[uid] = u
	return u, nil
}

func (m *memoryUsers) SetRole(_ context.Context, uid string, role entities.Role) (entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return entities.User{}, nil
	}
	u.Rol = role
	m.users[uid] = u
	return u, nil
}

func (m *memoryUsers) Delete(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, uid)
	return nil
}

func (m *memoryUsers) AddEnrolledCourse(_ context.Context, uid, courseID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, nil
	}
	if !slices.Contains(u.CursosInscritos, courseID) {
		u.CursosInscritos = append(slices.Clone(u.CursosInscritos), courseID)
	}
	m.users[uid] = u
	return true, nil
}

func (m *memoryUsers) RemoveEnrolledCourse(_ context.Context, uid, courseID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, nil
	}
	u.CursosInscritos = slices.DeleteFunc(slices.Clone(u.CursosInscritos), func(id string) bool { return id == courseID })
	m.users[uid] = u
	return true, nil
}

// memoryPayments keys records by payment id, like the payments table.
type memoryPayments struct {
	mu      sync.Mutex
	records map[string]entities.PaymentRecord
	writes  int
}

var _ interfaces.IPaymentRecordRepository = (*memoryPayments)(nil)

func newMemoryPayments() *memoryPayments {
	return &memoryPayments{records: map[string]entities.PaymentRecord{}}
}

func (m *memoryPayments) Upsert(_ context.Context, p entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	current := m.records[p.ID]
	if p.UserID == "" {
		p.UserID = current.UserID
	}
	if p.CourseID == "" {
		p.CourseID = current.CourseID
	}
	m.records[p.ID] = p
	return nil
}

func (m *memoryPayments) GetByID(_ context.Context, id string) (entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id], nil
}

func (m *memoryPayments) ListByUserID(_ context.Context, userID string) ([]entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.PaymentRecord
	for _, p := range m.records {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
