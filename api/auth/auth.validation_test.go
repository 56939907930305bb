package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginValidation(t *testing.T) {
	service := &AuthService{RateLimiter: NewRateLimiter()}

	t.Run("EmptyEmail", func(t *testing.T) {
		_, err := service.Login(LoginDTO{
			Email:    "",
			Password: "password",
		})

		assert.Error(t, err, "Login should fail for empty email")
		assert.ErrorIs(t, err, ErrEmptyEmail, "Should return empty email error")
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := service.Login(LoginDTO{
			Email:    "test@example.com",
			Password: "",
		})

		assert.Error(t, err, "Login should fail for empty password")
		assert.ErrorIs(t, err, ErrEmptyPassword, "Should return empty password error")
	})

	t.Run("InvalidEmailFormat", func(t *testing.T) {
		invalidEmails := []string{
			"notanemail",
			"missing@domain",
			"@nodomain.com",
			"spaces in@email.com",
			"double@@domain.com",
		}

		for _, email := range invalidEmails {
			t.Run(email, func(t *testing.T) {
				_, err := service.Login(LoginDTO{
					Email:    email,
					Password: "password123",
				})

				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEmailFormat, "Should return invalid email format error for: %s", email)
			})
		}
	})

	t.Run("WeakPassword", func(t *testing.T) {
		weakPasswords := []string{
			"short",
			"alllowercase",
			"ALLUPPERCASE",
			"12345678",
			"NoSpecial1",
			"nospecial1*",
		}

		for _, pwd := range weakPasswords {
			t.Run(pwd, func(t *testing.T) {
				_, err := service.Login(LoginDTO{
					Email:    "test@example.com",
					Password: pwd,
				})

				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrPasswordTooWeak, "Should reject weak password: %s", pwd)
			})
		}
	})

	t.Run("StrongPasswordPassesValidation", func(t *testing.T) {
		err := ValidateLoginDTO(LoginDTO{
			Email:    "test@example.com",
			Password: "Correct-Horse7!",
		})
		assert.NoError(t, err)
	})
}

func TestRegisterValidation(t *testing.T) {
	t.Run("MissingName", func(t *testing.T) {
		err := ValidateRegisterDTO(RegisterDTO{
			FirstName: "  ",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "Str0ngPass!",
		})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		err := ValidateRegisterDTO(RegisterDTO{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "not-an-email",
			Password:  "Str0ngPass!",
		})
		assert.ErrorIs(t, err, ErrInvalidEmailFormat)
	})

	t.Run("Valid", func(t *testing.T) {
		err := ValidateRegisterDTO(RegisterDTO{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "Str0ngPass!",
		})
		assert.NoError(t, err)
	})
}
