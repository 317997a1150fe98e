package impl

import (
	"context"
	"log/slog"
	"strings"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts  repository.AccountRepository
	sessions  usecase.SessionManager
	hasher    service.PasswordHasher
	tokens    service.TokenGenerator
	clock     service.Clock
	validator *registrationValidator
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Sessions usecase.SessionManager
	Hasher   service.PasswordHasher
	Tokens   service.TokenGenerator
	Clock    service.Clock
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accounts:  params.Accounts,
		sessions:  params.Sessions,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		clock:     params.Clock,
		validator: newRegistrationValidator(params.Config.PasswordStrength),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register validates and normalizes the input, hashes the password and stores the account.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	username := normalize(input.Username)
	email := normalize(input.Email)

	if err := srv.validator.Check(username, email, input.Password); err != nil {
		srv.log(ctx).Info("Registration rejected by validation", slog.String("username", username))

		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	account := &entity.Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    srv.clock.Now(),
	}

	if err := srv.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Info("Registration conflict", slog.String("username", username))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create account", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.Any("account_id", account.ID), slog.String("username", username))

	return account.Redacted(), nil
}

// Authenticate checks the password and opens a session. Unknown usernames and
// wrong passwords cost one bcrypt verification each and fail identically.
func (srv *accountService) Authenticate(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := normalize(input.Username)

	account, err := srv.accounts.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		srv.hasher.Verify(input.Password, srv.hasher.DummyHash())
		srv.log(ctx).Info("Login failed", slog.String("username", username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	case err != nil:
		srv.log(ctx).Error("Failed to load account for login", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !srv.hasher.Verify(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("username", username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, session, err := srv.sessions.Create(ctx, account.ID, input.Meta)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("account_id", account.ID), slog.Any("session_id", session.ID))

	return &usecase.LoginOutput{
		Account:   account.Redacted(),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// authorize resolves token to its account, mapping every session or lookup
// miss to ErrUnauthorized.
func (srv *accountService) authorize(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := srv.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionInvalid) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, err
	}

	account, err := srv.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Valid session for missing account", slog.Any("account_id", accountID))

			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

func (srv *accountService) GetProfile(ctx context.Context, token string) (*entity.Account, error) {
	account, err := srv.authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	return account.Redacted(), nil
}

func (srv *accountService) Logout(ctx context.Context, token string) error {
	err := srv.sessions.Revoke(ctx, token)
	switch {
	case err == nil:
		srv.log(ctx).Info("Logout", slog.Bool("revoked", true))
	case errors.Is(err, domainerrors.ErrSessionInvalid):
		srv.log(ctx).Info("Logout", slog.Bool("revoked", false))
	default:
		srv.log(ctx).Error("Logout", slog.Bool("revoked", false), slog.Any("error", err))
	}

	return nil
}

func (srv *accountService) LogoutAll(ctx context.Context, token string) (int, error) {
	account, err := srv.authorize(ctx, token)
	if err != nil {
		return 0, err
	}

	return srv.sessions.RevokeAll(ctx, account.ID)
}

func (srv *accountService) ListSessions(ctx context.Context, token string) ([]*usecase.SessionView, error) {
	account, err := srv.authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	sessions, err := srv.sessions.ListActive(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	current := srv.tokens.Digest(token)
	views := make([]*usecase.SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, &usecase.SessionView{
			ID:         s.ID,
			IssuedAt:   s.IssuedAt,
			ExpiresAt:  s.ExpiresAt,
			LastSeenAt: s.LastSeenAt,
			UserAgent:  s.UserAgent,
			IPAddress:  s.IPAddress,
			Current:    s.TokenHash == current,
		})
	}

	return views, nil
}
