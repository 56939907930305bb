package auth

import (
	"regexp"
	"strings"

	"fitstack.dev/api/api/user"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

func ValidateLoginDTO(dto LoginDTO) error {
	if err := ValidateEmail(dto.Email); err != nil {
		return err
	}
	if err := user.ValidatePassword(dto.Password); err != nil {
		return err
	}
	return nil
}

func ValidateRegisterDTO(dto RegisterDTO) error {
	if strings.TrimSpace(dto.FirstName) == "" || strings.TrimSpace(dto.LastName) == "" {
		return ErrEmptyName
	}
	if err := ValidateEmail(dto.Email); err != nil {
		return err
	}
	if err := user.ValidatePassword(dto.Password); err != nil {
		return err
	}
	return nil
}

func ValidateOAuthLoginDTO(dto OAuthLoginDTO) error {
	return ValidateEmail(dto.Email)
}
