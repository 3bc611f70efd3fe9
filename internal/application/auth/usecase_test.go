package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "pos-api-test"}
}

func TestRegister_EmiteTokenYHasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTConfig())

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "contraseña123",
		FullName: "Ana Torres",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleEmployee, resp.Role) // rol por defecto

	stored := repo.users["ana@tienda.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña123", stored.PasswordHash)
}

func TestRegister_EmailDuplicadoEsRechazado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "contraseña123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "otracontraseña"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCortaORolDesconocidoSonInvalidos(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "corta"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "contraseña123", Role: "superuser"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "contraseña123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "contraseña123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestLogin_PasswordIncorrectaYUsuarioInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "contraseña123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "equivocada"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@tienda.com", Password: "contraseña123"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
