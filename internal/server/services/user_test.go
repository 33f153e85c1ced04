package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		TokenValidityDuration: time.Hour,
		BcryptCost:            4, // keep the tests fast
	}
	return NewUserService(db, rm, cfg)
}

func registerUser(t *testing.T, s *UserService, username, password string) int64 {
	t.Helper()
	u, err := s.Register(context.Background(), username, password)
	require.NoError(t, err)
	return u.ID
}

func TestRegister_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	_, err := s.Register(context.Background(), "", "pw")
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = s.Register(context.Background(), "alice", "")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestRegister_DuplicateUserName(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	registerUser(t, s, "alice", "pw")

	_, err := s.Register(context.Background(), "alice", "pw2")
	assert.True(t, errors.Is(err, common.ErrorAlreadyExists))
}

func TestLogin_Success_RotatesSecret(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	uid := registerUser(t, s, "alice", "pw")

	before := rm.u.users[uid].TokenSecret

	token, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	after := rm.u.users[uid].TokenSecret
	assert.NotEqual(t, before, after, "login must rotate the token secret")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())
	registerUser(t, s, "alice", "pw")

	_, err := s.Login(context.Background(), "alice", "wrong")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestLogin_UnknownUser_SameErrorAsWrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	_, err := s.Login(context.Background(), "nobody", "pw")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestLogin_MissingCredentials(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	_, err := s.Login(context.Background(), "", "pw")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestAuthenticate_AcceptsFreshToken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	uid := registerUser(t, s, "alice", "pw")

	token, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	got, err := s.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestAuthenticate_RejectsTokenAfterNextLogin(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	registerUser(t, s, "alice", "pw")

	t1, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	t2, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	_, err = s.Authenticate(context.Background(), t1)
	assert.True(t, errors.Is(err, common.ErrorUnauthorized), "token from the first login must be revoked")

	_, err = s.Authenticate(context.Background(), t2)
	assert.NoError(t, err, "token from the latest login must verify")
}

func TestAuthenticate_RejectsTokenAfterLogout(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	uid := registerUser(t, s, "alice", "pw")

	token, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background(), uid))

	_, err = s.Authenticate(context.Background(), token)
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	cfg := &config.Config{TokenValidityDuration: -time.Second, BcryptCost: 4}
	s := NewUserService(db, rm, cfg)
	registerUser(t, s, "alice", "pw")

	token, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	// the secret is unchanged, but the TTL has already elapsed
	_, err = s.Authenticate(context.Background(), token)
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := s.Authenticate(context.Background(), tok)
		assert.True(t, errors.Is(err, common.ErrorUnauthorized), "token %q must be rejected", tok)
	}
}
