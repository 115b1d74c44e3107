package authenticating

import (
	"testing"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/halsbagel/sales-dashboard-api/internal/config"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "chave-de-teste"},
	}

	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestService_LoginUser(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := &domain.User{
		ID:           1,
		Name:         "Hanako",
		Email:        "hanako@example.com",
		Active:       true,
		RoleID:       domain.RoleManager,
		PasswordHash: hashPassword(t, "Senha@123"),
	}

	userRepo.EXPECT().
		GetUserByEmail("hanako@example.com").
		Return(user, nil)

	token, err := service.LoginUser("  Hanako@Example.com ", "Senha@123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido deve ser aceito pela própria validação do serviço.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.UserRoleID)
}

func TestService_LoginUser_Falhas(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
	}{
		{
			name:     "Credenciais ausentes",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@example.com",
			password: "Senha@123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ninguem@example.com").
					Return(nil, nil)
			},
		},
		{
			name:     "Conta desativada",
			email:    "inativo@example.com",
			password: "Senha@123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("inativo@example.com").
					Return(&domain.User{ID: 2, Active: false}, nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "hanako@example.com",
			password: "errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("hanako@example.com").
					Return(&domain.User{
						ID:           1,
						Active:       true,
						PasswordHash: "$2a$04$invalidhashinvalidhashinvalidhashinvalidhashinvalid",
					}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newAuthService(t)
			tt.setup(userRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)
			assert.Error(t, err)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("taro@example.com").
		Return(nil, nil)

	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca é armazenada em claro e contas novas entram
			// desativadas com perfil de atendente.
			assert.NotEqual(t, "Senha@123", user.PasswordHash)
			assert.False(t, user.Active)
			assert.Equal(t, domain.RoleStaff, user.RoleID)
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "Taro",
		Lastname:     "Yamada",
		Email:        " Taro@Example.com",
		PasswordHash: "Senha@123",
	})

	require.NoError(t, err)
	assert.Equal(t, "taro@example.com", user.Email)
}

func TestService_CreateUser_EmailJaCadastrado(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("taro@example.com").
		Return(&domain.User{ID: 9}, nil)

	user, err := service.CreateUser(&domain.User{
		Name:         "Taro",
		Lastname:     "Yamada",
		Email:        "taro@example.com",
		PasswordHash: "Senha@123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newAuthService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha forte", password: "Senha@123", wantErr: false},
		{name: "Muito curta", password: "S@1a", wantErr: true},
		{name: "Sem maiúscula", password: "senha@123", wantErr: true},
		{name: "Sem minúscula", password: "SENHA@123", wantErr: true},
		{name: "Sem número", password: "Senha@abc", wantErr: true},
		{name: "Sem caractere especial", password: "Senha1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_GenerateStrongPassword_ExigeAdministrador(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByID(5).
		Return(&domain.User{ID: 5, RoleID: domain.RoleStaff}, nil)

	password, err := service.GenerateStrongPassword(5, 7)

	assert.Empty(t, password)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}
