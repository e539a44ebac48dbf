package usecase

import (
	"context"
	"errors"
	"testing"

	"academia_bere/internal/domain/entities"
	mock_interfaces "academia_bere/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthFixture(t *testing.T, setupToken string, users ...entities.User) (*AuthUseCase, *mock_interfaces.MockITokenService, *memoryUsers) {
	ctrl := gomock.NewController(t)
	tokens := mock_interfaces.NewMockITokenService(ctrl)
	repo := newMemoryUsers(users...)
	return NewAuthUseCase(NewUserUseCase(repo, nil, 6), repo, tokens, setupToken), tokens, repo
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	uc, tokens, _ := newAuthFixture(t, "")

	tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(id entities.Identity) (string, error) {
		assert.Equal(t, entities.RoleEstudiante, id.Role)
		assert.Equal(t, "ana@test.com", id.Email)
		return "tok-" + id.UID, nil
	}).Times(2)

	reg, err := uc.Register(ctx, UserInput{Nombre: "Ana", Email: "ana@test.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "tok-"+reg.User.UID, reg.Token)

	login, err := uc.Login(ctx, "ANA@test.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, reg.User.UID, login.User.UID)

	_, err = uc.Login(ctx, "ana@test.com", "incorrecto")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = uc.Login(ctx, "nadie@test.com", "secreto")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = uc.Login(ctx, "no email", "secreto")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_TokenFailure(t *testing.T) {
	uc, tokens, _ := newAuthFixture(t, "")
	boom := errors.New("signing failed")
	tokens.EXPECT().Issue(gomock.Any()).Return("", boom)

	_, err := uc.Register(context.Background(), UserInput{Nombre: "Ana", Email: "ana@test.com", Password: "secreto"})
	assert.ErrorIs(t, err, boom)
}

func TestSetupAdmin(t *testing.T) {
	ctx := context.Background()
	in := UserInput{Nombre: "Bere", Email: "bere@test.com", Password: "secreto"}

	uc, _, _ := newAuthFixture(t, "")
	_, err := uc.SetupAdmin(ctx, "anything", in)
	assert.ErrorIs(t, err, ErrSetupDisabled)

	uc, _, _ = newAuthFixture(t, "s3cret")
	_, err = uc.SetupAdmin(ctx, "wrong", in)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	uc, _, _ = newAuthFixture(t, "s3cret", entities.User{UID: "d0", Rol: entities.RoleDocente})
	_, err = uc.SetupAdmin(ctx, "s3cret", in)
	assert.ErrorIs(t, err, ErrDocenteExists)

	uc, tokens, repo := newAuthFixture(t, "s3cret", entities.User{UID: "s0", Rol: entities.RoleEstudiante})
	tokens.EXPECT().Issue(gomock.Any()).Return("tok", nil)
	res, err := uc.SetupAdmin(ctx, "s3cret", in)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleDocente, res.User.Rol)
	stored, _ := repo.GetByEmail(ctx, "bere@test.com")
	assert.Equal(t, entities.RoleDocente, stored.Rol)

	_, err = uc.SetupAdmin(ctx, "s3cret", UserInput{Nombre: "Otra", Email: "otra@test.com", Password: "secreto"})
	assert.ErrorIs(t, err, ErrDocenteExists)
}
