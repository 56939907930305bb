package auth

import (
	"fmt"
	"os"
	"testing"
	"time"

	"fitstack.dev/api/api/user"
	"fitstack.dev/api/constants"
	"fitstack.dev/api/utils/testutils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testEmail    = "test@example.com"
	testPassword = "TestPassword123*"
)

func TestCreateJWTToken(t *testing.T) {
	testutils.SetupTestConfig(t)

	t.Run("Success", func(t *testing.T) {
		data := JWTData{
			ID:    "123",
			Role:  "admin",
			Email: testEmail,
			JTI:   uuid.New().String(),
		}

		token, err := createJWTToken(data, time.Hour)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		secret := os.Getenv("JWT_SECRET")
		err = testutils.ValidateJWTSecret(secret)
		assert.NoError(t, err, "JWT secret should be cryptographically secure")
	})

	t.Run("NoSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")
		t.Cleanup(func() {
			testutils.RestoreTestJWTSecret(t)
		})

		token, err := createJWTToken(JWTData{ID: "123"}, time.Hour)
		assert.Error(t, err)
		assert.Equal(t, "", token)
		assert.Equal(t, "JWT_SECRET environment variable not set", err.Error())
	})

	t.Run("ZeroDuration", func(t *testing.T) {
		token, err := createJWTToken(JWTData{ID: "123"}, 0)
		assert.NoError(t, err, "Token creation should succeed even with zero duration")
		assert.NotEmpty(t, token)

		claims, err := testutils.ParseJWTClaimsAllowExpired(t, token)
		require.NoError(t, err, "Should be able to parse expired token")

		exp, expOk := claims["exp"].(float64)
		iat, iatOk := claims["iat"].(float64)

		assert.True(t, expOk, "exp claim should exist")
		assert.True(t, iatOk, "iat claim should exist")
		assert.Equal(t, exp, iat, "exp should equal iat for zero duration")

		_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		assert.Error(t, err, "Token with zero duration should be expired")
	})

	t.Run("WithJTI", func(t *testing.T) {
		jti := uuid.New().String()
		token, err := createJWTToken(JWTData{ID: "123", Email: testEmail, JTI: jti}, time.Hour)
		require.NoError(t, err)

		claims := testutils.ParseJWTClaims(t, token)
		assert.Equal(t, jti, claims["jti"], "JTI should be present in token")
	})

	t.Run("WithoutJTI", func(t *testing.T) {
		token, err := createJWTToken(JWTData{ID: "123", Email: testEmail}, time.Hour)
		require.NoError(t, err)

		claims := testutils.ParseJWTClaims(t, token)
		assert.Nil(t, claims["jti"], "JTI should not be present when not provided")
	})
}

func TestParseJWT(t *testing.T) {
	testutils.SetupTestConfig(t)

	t.Run("RoundTrip", func(t *testing.T) {
		jti := uuid.New().String()
		token, err := createJWTToken(JWTData{
			ID:    "user-1",
			Email: testEmail,
			Role:  "user",
			JTI:   jti,
		}, time.Hour)
		require.NoError(t, err)

		claims, err := parseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.ID)
		assert.Equal(t, testEmail, claims.Email)
		assert.Equal(t, "user", claims.Role)
		assert.Equal(t, jti, claims.JTI)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := createJWTToken(JWTData{ID: "user-1"}, -time.Hour)
		require.NoError(t, err)

		_, err = parseJWT(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := parseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := createJWTToken(JWTData{ID: "user-1"}, time.Hour)
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "another-secret-0123456789abcdef-0123456789")
		_, err = parseJWT(token)
		assert.Error(t, err, "Token signed with a different secret must be rejected")
	})
}

func userRow(id, email, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "role"}).
		AddRow(id, "Test", "User", email, "", role)
}

func TestAuthService_RefreshToken(t *testing.T) {
	testutils.SetupTestConfig(t)
	mr := testutils.SetupTestRedis(t)
	defer mr.Close()

	userID := uuid.New().String()

	newService := func(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
		gormDB, mock := testutils.SetupMockDB(t)
		return &AuthService{
			DB:          gormDB,
			UserService: &user.UserService{DB: gormDB},
			RateLimiter: NewRateLimiter(),
		}, mock
	}

	issueRefresh := func(t *testing.T, jti string) string {
		token, err := createJWTToken(JWTData{
			ID:    userID,
			Email: testEmail,
			Role:  "user",
			JTI:   jti,
		}, constants.MaxRefreshTokenAge)
		require.NoError(t, err)
		return token
	}

	t.Run("RotatesAndBlacklistsOldJTI", func(t *testing.T) {
		service, mock := newService(t)
		jti := uuid.New().String()
		token := issueRefresh(t, jti)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(userRow(userID, testEmail, "user"))

		res, err := service.RefreshToken(token)
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, jti, res.RefreshJTI, "Rotation must mint a fresh JTI")
		assert.Equal(t, testEmail, res.User.Email)

		assert.True(t, mr.Exists(fmt.Sprintf("refresh_blacklist:%s", jti)),
			"Old JTI must be blacklisted after rotation")

		newClaims := testutils.ParseJWTClaims(t, res.RefreshToken)
		assert.Equal(t, res.RefreshJTI, newClaims["jti"])
	})

	t.Run("ReplayRejected", func(t *testing.T) {
		service, mock := newService(t)
		jti := uuid.New().String()
		token := issueRefresh(t, jti)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(userRow(userID, testEmail, "user"))

		_, err := service.RefreshToken(token)
		require.NoError(t, err)

		// Same artifact a second time loses the SetNX race
		_, err = service.RefreshToken(token)
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("MissingJTI", func(t *testing.T) {
		service, _ := newService(t)
		token, err := createJWTToken(JWTData{ID: userID, Email: testEmail}, constants.MaxRefreshTokenAge)
		require.NoError(t, err)

		_, err = service.RefreshToken(token)
		assert.ErrorIs(t, err, ErrMissingJTI)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		service, _ := newService(t)
		token, err := createJWTToken(JWTData{
			ID:  userID,
			JTI: uuid.New().String(),
		}, -time.Hour)
		require.NoError(t, err)

		_, err = service.RefreshToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	testutils.SetupTestConfig(t)
	mr := testutils.SetupTestRedis(t)
	defer mr.Close()

	service := &AuthService{RateLimiter: NewRateLimiter()}
	userID := uuid.New().String()

	t.Run("BlacklistsAndDeletesStoredToken", func(t *testing.T) {
		jti := uuid.New().String()
		token, err := createJWTToken(JWTData{ID: userID, JTI: jti}, constants.MaxRefreshTokenAge)
		require.NoError(t, err)

		storedKey := fmt.Sprintf("refresh_token:%s:%s", userID, jti)
		mr.Set(storedKey, token)

		require.NoError(t, service.Logout(token))

		assert.False(t, mr.Exists(storedKey), "Stored refresh token must be deleted")
		assert.True(t, mr.Exists(fmt.Sprintf("refresh_blacklist:%s", jti)),
			"Refresh JTI must be blacklisted")
	})

	t.Run("MissingJTI", func(t *testing.T) {
		token, err := createJWTToken(JWTData{ID: userID}, constants.MaxRefreshTokenAge)
		require.NoError(t, err)

		err = service.Logout(token)
		assert.ErrorIs(t, err, ErrMissingJTI)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		err := service.Logout("garbage")
		assert.Error(t, err)
	})
}
