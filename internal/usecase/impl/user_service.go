package impl

import (
	"context"
	"log/slog"
	"time"

	"veggiemarket/config"
	deliverycontext "veggiemarket/internal/delivery/context"
	"veggiemarket/internal/domain/entity"
	domainerrors "veggiemarket/internal/domain/errors"
	"veggiemarket/internal/domain/repository"
	"veggiemarket/internal/domain/service"
	"veggiemarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	authRepo         repository.AuthRepository
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	session          service.SessionPublisher
	authCfg          *config.AuthConfig
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AuthRepo         repository.AuthRepository
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Session          service.SessionPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		authRepo:         params.AuthRepo,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		session:          params.Session,
		authCfg:          params.Config.Auth,
		logger:           params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account with its email credential in one
// transaction.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email: input.Email,
		Name:  input.Name,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.AuthRepo().FindAuthenticationByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to check for existing credential")
		}

		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
		}

		auth := &entity.Authentication{
			UserID:       user.ID,
			Provider:     entity.ProviderTypeEmail,
			PasswordHash: passwordHash,
		}
		if err := repoFactory.AuthRepo().CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered",
		slog.Any("userID", user.ID),
		slog.String("email", user.Email),
	)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the password credential, issues a token pair, records the
// session, and announces the new shopping identity.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	auth, err := srv.authRepo.FindAuthenticationByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeSession(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	srv.session.Publish(entity.Identity{
		UserID:  user.ID.String(),
		IsAdmin: user.IsAdmin,
	})

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// storeSession persists the hashed refresh token, evicting the oldest session
// when the user is at the concurrent-session limit.
func (srv *userService) storeSession(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		if srv.authCfg.MaxActiveSessions > 0 {
			active, err := tokenRepo.CountActiveSessions(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			for active >= srv.authCfg.MaxActiveSessions {
				if err := tokenRepo.DeleteOldestSession(ctx, userID); err != nil {
					return errors.Wrap(err, "failed to evict oldest session")
				}
				active--
			}
		}

		token := &entity.RefreshToken{
			UserID:    userID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, token); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		return nil
	})
}

// RefreshToken re-issues an access token against a stored, unexpired session.
// The refresh token itself is not rotated.
func (srv *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) ||
			errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	if stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session does not match token")
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout revokes the presented session and announces the guest identity so
// the shopping containers swap back to the guest scope.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) ||
			errors.Is(err, repository.ErrRefreshTokenExpired) {
			// Already revoked or expired. Logout is idempotent.
			srv.session.Publish(entity.Guest())

			return nil
		}

		return errors.Wrap(err, "failed to look up session for logout")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	srv.session.Publish(entity.Guest())

	srv.log(ctx).Info("User logged out", slog.Any("userID", stored.UserID))

	return nil
}
