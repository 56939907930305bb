package testutils

import (
	"errors"
	"fmt"
	"os"
	"testing"

	database "fitstack.dev/api/db"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-0123456789abcdef-0123456789abcdef"

// SetupTestConfig sets the env vars the code under test reads. Restored
// automatically via t.Setenv.
func SetupTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("GO_ENV", "development")
}

func RestoreTestJWTSecret(t *testing.T) {
	t.Helper()
	os.Setenv("JWT_SECRET", testJWTSecret)
}

// ValidateJWTSecret rejects secrets too short or too common to sign with.
func ValidateJWTSecret(secret string) error {
	if len(secret) < 32 {
		return errors.New("JWT secret must be at least 32 characters")
	}
	switch secret {
	case "secret", "test", "password", "12345678":
		return errors.New("JWT secret is a known weak value")
	}
	return nil
}

// SetupTestRedis points the global Redis client at a miniredis instance.
// The caller owns closing it (or letting t.Cleanup do it).
func SetupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	database.RDB = &database.RedisInstance{Client: client}

	t.Cleanup(func() {
		client.Close()
	})

	return mr
}

// SetupMockDB returns a gorm DB backed by sqlmock for service tests
// that only need expectation-driven queries.
func SetupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize gorm DB: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return gormDB, mock
}

func SetupFailingDB(t *testing.T) *gorm.DB {
	gormDB, mock := SetupMockDB(t)
	mock.ExpectQuery("SELECT .").WillReturnError(errors.New("forced DB error"))
	return gormDB
}

func ParseJWTClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		t.Fatal("JWT_SECRET environment variable not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		t.Fatalf("Failed to parse JWT token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("Failed to extract claims from JWT token")
	}

	if !token.Valid {
		t.Fatal("JWT token is invalid or expired")
	}

	return claims
}

// ParseJWTClaimsAllowExpired parses without failing on expiry so tests
// can inspect exp/iat of deliberately expired tokens.
func ParseJWTClaimsAllowExpired(t *testing.T, tokenString string) (jwt.MapClaims, error) {
	t.Helper()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		t.Fatal("JWT_SECRET environment variable not set")
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to extract claims")
	}
	return claims, nil
}

// SetupTestDB connects to the Postgres instance named by TEST_POSTGRES_*
// and migrates the given models. Tests that need a real database are
// skipped when the env is not configured. Kept free of model imports so
// every feature package can use it without a cycle.
func SetupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	_ = godotenv.Load("../../.env")

	if os.Getenv("TEST_POSTGRES_HOST") == "" {
		t.Skip("TEST_POSTGRES_HOST not set, skipping database-backed test")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("TEST_POSTGRES_HOST"),
		os.Getenv("TEST_POSTGRES_USER"),
		os.Getenv("TEST_POSTGRES_PASSWORD"),
		os.Getenv("TEST_POSTGRES_DB"),
		os.Getenv("TEST_POSTGRES_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatal("Failed to connect to test database\n", err.Error())
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatal("Failed to migrate test database\n", err.Error())
		}
	}

	database.DB.DB = db

	t.Cleanup(func() {
		CleanupTestDB(t, db)
	})

	return db
}

func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"user_achievements", "achievements", "set_entries", "workout_logs",
		"enrollments", "program_exercises", "programs", "exercises",
		"subscriptions", "plans", "users",
	}
	// Per-table so a missing table (subset migration) skips quietly.
	for _, table := range tables {
		db.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
