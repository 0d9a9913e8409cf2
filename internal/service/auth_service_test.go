package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/careerpulse/internal/config"
	"github.com/spec-kit/careerpulse/internal/domain"
	"github.com/spec-kit/careerpulse/internal/service"
	apperrors "github.com/spec-kit/careerpulse/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTLDays: 30,
		BcryptCost:   bcrypt.MinCost,
	}
}

func adaInput() service.RegisterInput {
	return service.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@x.com",
		Password:  "pw123",
	}
}

func domainErr(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	return de
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, adaInput())
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Ada", user.FirstName)
	require.Equal(t, "ada@x.com", user.Email)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)

	// The issued token resolves straight back to the new identity.
	userID, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)

	loggedIn, token, _, err := svc.Login(ctx, "ada@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token)
}

func TestRegister_DuplicateEmailOrUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := service.NewAuthService(testAuthConfig(), repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, adaInput())
	require.NoError(t, err)

	dupEmail := adaInput()
	dupEmail.Username = "other"
	_, _, _, err = svc.Register(ctx, dupEmail)
	de := domainErr(t, err)
	require.Equal(t, "CONFLICT", de.Code)
	require.Equal(t, "Email or username already exists", de.Message)

	dupUsername := adaInput()
	dupUsername.Email = "other@x.com"
	_, _, _, err = svc.Register(ctx, dupUsername)
	de = domainErr(t, err)
	require.Equal(t, "CONFLICT", de.Code)
	require.Equal(t, "Email or username already exists", de.Message)

	// No extra row was persisted by the failed attempts.
	require.Len(t, repo.users, 1)
}

func TestRegister_UniqueViolationBackstop(t *testing.T) {
	t.Parallel()

	// Two registrations can both pass the pre-check before either inserts;
	// the constraint violation from the insert must map to the same Conflict.
	repo := newFakeUserRepo()
	svc := service.NewAuthService(testAuthConfig(), repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, adaInput())
	require.NoError(t, err)

	racing := &precheckBlindUserRepo{fakeUserRepo: repo}
	svcRacing := service.NewAuthService(testAuthConfig(), racing)

	_, _, _, err = svcRacing.Register(ctx, adaInput())
	de := domainErr(t, err)
	require.Equal(t, "CONFLICT", de.Code)
	require.Equal(t, "Email or username already exists", de.Message)
}

func TestLogin_UnknownEmailAndWrongPasswordReadTheSame(t *testing.T) {
	t.Parallel()

	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, adaInput())
	require.NoError(t, err)

	_, _, _, errUnknown := svc.Login(ctx, "nobody@x.com", "pw123")
	_, _, _, errWrongPw := svc.Login(ctx, "ada@x.com", "nope")

	deUnknown := domainErr(t, errUnknown)
	deWrongPw := domainErr(t, errWrongPw)
	require.Equal(t, "UNAUTHORIZED", deUnknown.Code)
	require.Equal(t, "UNAUTHORIZED", deWrongPw.Code)
	require.Equal(t, deUnknown.Message, deWrongPw.Message)
	require.Equal(t, "Invalid credentials", deUnknown.Message)
}

func TestRegister_PasswordNeverStoredInPlaintext(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := service.NewAuthService(testAuthConfig(), repo)

	user, _, _, err := svc.Register(context.Background(), adaInput())
	require.NoError(t, err)

	stored := repo.users[user.ID]
	require.NotEqual(t, "pw123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")))
}

// precheckBlindUserRepo simulates the registration race: the duplicate
// pre-check sees nothing, so the insert's unique constraint is the only line
// of defense.
type precheckBlindUserRepo struct {
	*fakeUserRepo
}

func (r *precheckBlindUserRepo) ExistsByEmailOrUsername(context.Context, string, string) (bool, error) {
	return false, nil
}

var errStoreDown = errors.New("connection refused")

type failingUserRepo struct {
	*fakeUserRepo
}

func (r *failingUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, errStoreDown
}

func TestLogin_StorageFailureIsOpaque(t *testing.T) {
	t.Parallel()

	svc := service.NewAuthService(testAuthConfig(), &failingUserRepo{fakeUserRepo: newFakeUserRepo()})

	_, _, _, err := svc.Login(context.Background(), "ada@x.com", "pw123")
	de := domainErr(t, err)
	require.Equal(t, "STORAGE_FAILURE", de.Code)
	require.Equal(t, "storage failure", de.Message)
	require.ErrorIs(t, de, errStoreDown)
}
