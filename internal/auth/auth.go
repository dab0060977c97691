package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sl "blog_service/internal/lib/logger"
	"blog_service/internal/models"
	"blog_service/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
)

type Auth struct {
	log         *slog.Logger
	accSaver    AccountSaver
	accProvider AccountProvider
	tokens      TokenIssuer
}

type AccountSaver interface {
	SaveAccount(ctx context.Context, fullName, email string, passHash []byte, role models.Role) (int64, error)
}

type AccountProvider interface {
	AccountByEmail(ctx context.Context, email string) (models.Account, error)
	AccountByID(ctx context.Context, id int64) (models.Account, error)
}

type TokenIssuer interface {
	Issue(accountID int64, role models.Role) (string, error)
}

func New(
	log *slog.Logger,
	accountSaver AccountSaver,
	accountProvider AccountProvider,
	tokens TokenIssuer,
) *Auth {
	return &Auth{
		log:         log,
		accSaver:    accountSaver,
		accProvider: accountProvider,
		tokens:      tokens,
	}
}

// Register hashes the password and persists a new account. The plaintext
// password is never stored or logged.
func (a *Auth) Register(
	ctx context.Context,
	fullName, email, password string,
	role models.Role,
) (models.Account, error) {
	const op = "auth.Register"

	log := a.log.With(
		slog.String("op", op),
	)

	log.Info("registering new account")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.accSaver.SaveAccount(ctx, fullName, email, passHash, role)
	if err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			log.Warn("account already exists")

			return models.Account{}, fmt.Errorf("%s: %w", op, ErrAccountExists)
		}

		log.Error("failed to save account", sl.Err(err))

		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("account registered", slog.Int64("id", id))

	return models.Account{
		ID:       id,
		FullName: fullName,
		Email:    email,
		Role:     role,
	}, nil
}

// Login checks the credentials and issues an identity token. An unknown
// email and a wrong password both fail with ErrInvalidCredentials so the
// response never reveals which check failed.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op))

	account, err := a.accProvider.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("account not found")
			return "", ErrInvalidCredentials
		}

		log.Error("failed to get account", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return "", ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(account.ID, account.Role)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("account logged in successfully", slog.Int64("uid", account.ID))

	return token, nil
}

func (a *Auth) Account(ctx context.Context, id int64) (models.Account, error) {
	const op = "auth.Account"

	account, err := a.accProvider.AccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return models.Account{}, storage.ErrAccountNotFound
		}

		a.log.Error("failed to load account", slog.String("op", op), sl.Err(err))

		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}
