package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/facturacion-api/internal/application/auth"
	"github.com/tu-usuario/facturacion-api/internal/application/dto"
	"github.com/tu-usuario/facturacion-api/internal/domain"
	"github.com/tu-usuario/facturacion-api/internal/domain/entity"
	"github.com/tu-usuario/facturacion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // key: email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(u *entity.User) error {
	if _, ok := m.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return m.users[email], nil
}

func newTestAuth(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "facturacion-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_AsignaRolUser(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@ejemplo.com",
		Password: "clave123",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, "ana@ejemplo.com", out.Email)
	assert.NotEmpty(t, out.ID)
}

// Un body con "role": "admin" no debe producir un admin: el registro público
// siempre persiste rol user, sin importar qué campos extra mande el cliente.
func TestRegisterUser_IgnoraRolDelBody(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "intruso@ejemplo.com",
		Password: "clave123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role)

	persisted, err := repo.FindByEmail("intruso@ejemplo.com")
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, entity.RoleUser, persisted.Role)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_CamposObligatorios(t *testing.T) {
	uc := newTestAuth(newMemUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_NombreVacioUsaEmail(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "sin-nombre@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "sin-nombre@ejemplo.com", out.Name)
}

func TestRegisterUser_NoExponeHash(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)

	persisted, _ := repo.FindByEmail("ana@ejemplo.com")
	require.NotNil(t, persisted)
	assert.NotEqual(t, "clave123", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("clave123")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestAuth(newMemUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newMemUserRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	require.NoError(t, err)

	repo.users["ana@ejemplo.com"].Active = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
