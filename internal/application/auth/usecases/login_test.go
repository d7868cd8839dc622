package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appaudit "warden/internal/application/audit"
	"warden/internal/application/auth"
	"warden/internal/domain/account"
	vo "warden/internal/domain/account/valueobjects"
	"warden/internal/domain/audit"
	infraauth "warden/internal/infrastructure/auth"
	"warden/internal/infrastructure/persistence/models"
	"warden/internal/infrastructure/repository"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type loginFixture struct {
	accountRepo account.Repository
	sessionRepo audit.Repository
	hasher      *infraauth.BcryptPasswordHasher
	session     *auth.SessionContext
	login       *LoginUseCase
	logout      *LogoutUseCase
}

func newLoginFixture(t *testing.T) *loginFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AccountModel{}, &models.SessionLogModel{}))

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	accountRepo := repository.NewAccountRepository(db, log)
	sessionRepo := repository.NewSessionLogRepository(db, log)
	hasher := infraauth.NewBcryptPasswordHasher(bcrypt.MinCost)
	session := auth.NewSessionContext()
	tracker := appaudit.NewSessionTracker(sessionRepo, accountRepo, log)

	return &loginFixture{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		session:     session,
		login:       NewLoginUseCase(accountRepo, hasher, tracker, session, log),
		logout:      NewLogoutUseCase(tracker, session, log),
	}
}

func (f *loginFixture) seedAccount(t *testing.T, username, password string, role account.Role, active bool) *account.Account {
	t.Helper()

	u, err := vo.NewUsername(username)
	require.NoError(t, err)
	digest, err := f.hasher.Hash(password)
	require.NoError(t, err)
	acct, err := account.New(role, u, digest, "", nil)
	require.NoError(t, err)
	require.NoError(t, f.accountRepo.Create(context.Background(), acct))
	if !active {
		require.NoError(t, f.accountRepo.SetActive(context.Background(), acct.ID(), false))
	}
	return acct
}

func TestLoginUseCase_Success(t *testing.T) {
	f := newLoginFixture(t)
	ctx := context.Background()
	seeded := f.seedAccount(t, "chief01", "Abcdef1!", account.RolePrimaryAdmin, true)

	result, err := f.login.Execute(ctx, LoginCommand{Username: "chief01", Password: "Abcdef1!", Origin: "desktop"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, seeded.ID(), result.Account.ID())
	assert.NotZero(t, result.SessionLogID)

	assert.True(t, f.session.IsAuthenticated())
	assert.Equal(t, "chief01", f.session.Attribution())
	assert.True(t, f.session.IsSelf(seeded.ID()))

	rec, err := f.sessionRepo.GetByID(ctx, result.SessionLogID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "chief01", rec.Username())
	assert.Equal(t, "desktop", rec.Origin())
	assert.True(t, rec.IsActive())

	stored, err := f.accountRepo.GetByID(ctx, seeded.ID())
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt(), "last login stamped")
}

func TestLoginUseCase_InvalidCredentials(t *testing.T) {
	f := newLoginFixture(t)
	ctx := context.Background()
	f.seedAccount(t, "chief01", "Abcdef1!", account.RolePrimaryAdmin, true)

	t.Run("unknown username", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginCommand{Username: "ghost001", Password: "Abcdef1!"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginCommand{Username: "chief01", Password: "Wrong1!!"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidCredentials))
	})

	t.Run("both failures are indistinguishable", func(t *testing.T) {
		_, unknownErr := f.login.Execute(ctx, LoginCommand{Username: "ghost001", Password: "Abcdef1!"})
		_, wrongErr := f.login.Execute(ctx, LoginCommand{Username: "chief01", Password: "Wrong1!!"})
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("no session opened on failure", func(t *testing.T) {
		assert.False(t, f.session.IsAuthenticated())
		records, err := f.sessionRepo.List(ctx, audit.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestLoginUseCase_InactiveAccount(t *testing.T) {
	f := newLoginFixture(t)
	ctx := context.Background()
	f.seedAccount(t, "delegate01", "Abcdef1!", account.RoleDelegateAdmin, false)

	t.Run("valid password reveals inactive status", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginCommand{Username: "delegate01", Password: "Abcdef1!"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAccountInactive))
	})

	t.Run("wrong password stays generic", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginCommand{Username: "delegate01", Password: "Wrong1!!"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidCredentials))
	})
}

func TestLogoutUseCase(t *testing.T) {
	f := newLoginFixture(t)
	ctx := context.Background()
	f.seedAccount(t, "chief01", "Abcdef1!", account.RolePrimaryAdmin, true)

	result, err := f.login.Execute(ctx, LoginCommand{Username: "chief01", Password: "Abcdef1!"})
	require.NoError(t, err)

	f.logout.Execute(ctx)

	assert.False(t, f.session.IsAuthenticated())
	assert.Equal(t, auth.SystemActor, f.session.Attribution())

	rec, err := f.sessionRepo.GetByID(ctx, result.SessionLogID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, audit.StatusLoggedOut, rec.Status())
	require.NotNil(t, rec.DurationMinutes())

	// A second logout with nobody signed in is a no-op.
	f.logout.Execute(ctx)
	assert.False(t, f.session.IsAuthenticated())
}
