package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bankauth/internal/delivery/context"
	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/repository"
	"bankauth/internal/domain/service"
	"bankauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	refreshTokens usecase.RefreshTokenUsecase
	verifier      service.CredentialVerifier
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	RefreshTokens usecase.RefreshTokenUsecase
	Verifier      service.CredentialVerifier
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		refreshTokens: params.RefreshTokens,
		verifier:      params.Verifier,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account and returns an access token only.
// Email and phone must both be unused.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	// Usernames default to the email, so an explicit email-shaped username
	// must be the registrant's own.
	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = input.Email
	} else if strings.Contains(username, "@") && username != input.Email {
		return nil, errors.WithStack(domainerrors.ErrUsernameNotAllowed)
	}

	// Cheap rejection of known duplicates before paying for bcrypt.
	// The check is repeated inside the transaction.
	if err := srv.ensureIdentityFree(ctx, srv.userRepo, input); err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Phone:        input.Phone,
		Username:     username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		Role:         entity.RoleCustomer,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		if err := srv.ensureIdentityFree(ctx, userRepo, input); err != nil {
			return err
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: accessToken}, nil
}

// ensureIdentityFree fails with ErrDuplicateIdentity when the email or phone is taken.
func (srv *authService) ensureIdentityFree(ctx context.Context, userRepo repository.UserRepository, input *usecase.RegisterInput) error {
	emailTaken, err := userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	phoneTaken, err := userRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return errors.Wrap(err, "failed to check phone")
	}
	if emailTaken || phoneTaken {
		return errors.WithStack(domainerrors.ErrDuplicateIdentity)
	}

	return nil
}

// Login verifies credentials, issues a refresh token for the principal and
// signs an access token for the stored user.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	principal, err := srv.verifier.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIdentityNotFound, "user vanished after authentication")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	refreshToken, err := srv.refreshTokens.CreateRefreshToken(ctx, principal.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a live refresh token for a new access token.
// The same refresh token is handed back; it is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	record, err := srv.refreshTokens.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRefreshTokenNotFound)
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	// Every verification failure is reported the same way to the client.
	if _, err := srv.refreshTokens.VerifyExpiration(ctx, record); err != nil {
		srv.log(ctx).Info("Refresh rejected", slog.String("username", record.Username), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	// The owner may have been removed since the token was issued.
	user, err := srv.userRepo.FindByUsername(ctx, record.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Refresh rejected, owner no longer exists", slog.String("username", record.Username))

			return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
		}

		return nil, errors.Wrap(err, "failed to load refresh token owner")
	}

	accessToken, err := srv.tokenService.GenerateRefreshAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
	}, nil
}

// Logout removes every refresh token of the presented token's owner.
// An unknown token is not an error.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	record, err := srv.refreshTokens.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout with unknown refresh token")

			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokens.DeleteByUsername(ctx, record.Username); err != nil {
		return errors.Wrap(err, "failed to log out")
	}
	srv.log(ctx).Info("User logged out", slog.String("username", record.Username))

	return nil
}
