package user

import (
	"errors"
	"fmt"

	database "fitstack.dev/api/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService() *UserService {
	return &UserService{DB: database.DB.DB}
}

func (s *UserService) CreateUser(user *User) (*User, error) {
	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.DB.Clauses(clause.Returning{}).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUserByID(id string) (*User, error) {
	var user User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetAllUsers() ([]User, error) {
	var users []User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUserByEmail(email string) (*User, error) {
	var user User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with that email not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID string, dto UpdateProfileDTO) (*User, error) {
	userData, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.FirstName != nil {
		updates["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		updates["last_name"] = *dto.LastName
	}
	if dto.BirthDate != nil {
		updates["birth_date"] = *dto.BirthDate
	}
	if dto.HeightCm != nil {
		updates["height_cm"] = *dto.HeightCm
	}
	if dto.WeightKg != nil {
		updates["weight_kg"] = *dto.WeightKg
	}
	if len(updates) == 0 {
		return userData, nil
	}

	if err := s.DB.Model(userData).Updates(updates).Error; err != nil {
		return nil, err
	}
	return userData, nil
}

func (s *UserService) ChangePassword(userID string, dto ChangePasswordDTO) error {
	userData, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.Password), []byte(dto.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Model(&User{}).Where("id = ?", userID).Update("password", string(hashedPassword)).Error
}

func (s *UserService) DeleteUser(userID string) error {
	return s.DB.Delete(&User{}, "id = ?", userID).Error
}
