package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fitstack.dev/api/api/user"
	"fitstack.dev/api/constants"
	database "fitstack.dev/api/db"
	"fitstack.dev/api/utils/email"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type AuthService struct {
	DB          *gorm.DB
	UserService *user.UserService
	RateLimiter *RateLimiter
	Email       email.EmailSender
}

func NewAuthService() *AuthService {
	s := &AuthService{
		DB:          database.DB.DB,
		UserService: user.NewUserService(),
		RateLimiter: NewRateLimiter(),
	}
	// Keep the interface nil when the sender is unconfigured, a typed
	// nil pointer would slip past the s.Email != nil checks.
	if es := email.NewEmailService(); es != nil {
		s.Email = es
	}
	return s
}

func parseJWT(tokenString string) (*JWTData, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTData{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTData)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func createJWTToken(data JWTData, duration time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable not set")
	}

	now := time.Now()

	data.IssuedAt = jwt.NewNumericDate(now)
	data.ExpiresAt = jwt.NewNumericDate(now.Add(duration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)

	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", ErrInvalidToken
	}

	return signedToken, nil
}

func (s *AuthService) issueTokenPair(userData *user.User) (*LoginResponse, error) {
	authToken, err := createJWTToken(JWTData{
		ID:    userData.ID,
		Email: userData.Email,
		Role:  userData.Role,
	}, constants.MaxLoginTokenAge)
	if err != nil {
		return nil, err
	}

	refreshTokenJTI := uuid.New().String()
	refreshToken, err := createJWTToken(JWTData{
		ID:    userData.ID,
		Email: userData.Email,
		Role:  userData.Role,
		JTI:   refreshTokenJTI,
	}, constants.MaxRefreshTokenAge)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AuthToken:    authToken,
		RefreshToken: refreshToken,
		RefreshJTI:   refreshTokenJTI,
		User:         userData,
	}, nil
}

func (s *AuthService) Register(dto RegisterDTO) (*user.User, error) {
	if err := ValidateRegisterDTO(dto); err != nil {
		return nil, err
	}

	newUser := &user.User{
		FirstName: strings.TrimSpace(dto.FirstName),
		LastName:  strings.TrimSpace(dto.LastName),
		Email:     strings.ToLower(strings.TrimSpace(dto.Email)),
		Password:  dto.Password,
		Role:      user.RoleUser,
	}

	createdUser, err := s.UserService.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	if s.Email != nil {
		if err := s.Email.SendEmail(
			[]string{createdUser.Email},
			"Welcome to FitStack",
			email.WelcomeEmailHTML(createdUser.FirstName),
		); err != nil {
			log.Printf("failed to send welcome email to %s: %v", createdUser.Email, err)
		}
	}

	return createdUser, nil
}

func (s *AuthService) Login(dto LoginDTO) (*LoginResponse, error) {
	ctx := context.Background()
	if err := ValidateLoginDTO(dto); err != nil {
		return nil, err
	}

	clientIP := dto.ClientIP
	if clientIP == "" {
		clientIP = "unknown"
	}

	if err := s.RateLimiter.CheckRateLimit(ctx, dto.Email, clientIP); err != nil {
		return nil, err
	}

	userData, err := s.UserService.GetUserByEmail(dto.Email)
	if err != nil {
		if recordErr := s.RateLimiter.RecordFailedAttempt(ctx, dto.Email, clientIP); recordErr != nil {
			log.Printf("%s: failed to record a failed attempt", recordErr)
		}
		return nil, ErrInvalidCredentials
	}

	// OAuth-only accounts have no password hash to compare against
	if userData.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.Password), []byte(dto.Password)); err != nil {
		if recordErr := s.RateLimiter.RecordFailedAttempt(ctx, dto.Email, clientIP); recordErr != nil {
			log.Printf("%s: failed to record a failed attempt", recordErr)
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.RateLimiter.ResetAttempts(ctx, dto.Email, clientIP); err != nil {
		log.Printf("%s: failed to reset rate limiter attempts", err)
	}

	return s.issueTokenPair(userData)
}

func (s *AuthService) LoginOAuthUser(dto OAuthLoginDTO) (*LoginResponse, error) {
	if err := ValidateOAuthLoginDTO(dto); err != nil {
		return nil, err
	}

	userData, err := s.UserService.GetUserByEmail(dto.Email)
	if err != nil {
		newUser := &user.User{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
			Role:      user.RoleUser,
			Password:  "", // OAuth users authenticate via their provider only
		}

		userData, err = s.UserService.CreateUser(newUser)
		if err != nil {
			return nil, fmt.Errorf("failed to create OAuth user: %w", err)
		}
	}

	return s.issueTokenPair(userData)
}

func (s *AuthService) StoreRefreshToken(ctx context.Context, res *LoginResponse) error {
	key := fmt.Sprintf("refresh_token:%s:%s", res.User.ID, res.RefreshJTI)
	if err := database.RDB.Client.Set(ctx, key, res.RefreshToken, constants.MaxRefreshTokenAge).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) Logout(refreshToken string) error {
	ctx := context.Background()

	claims, err := parseJWT(refreshToken)
	if err != nil {
		return fmt.Errorf("failed to parse JWT: %w", err)
	}

	jti := claims.JTI
	if jti == "" {
		return ErrMissingJTI
	}

	database.RDB.Client.Del(ctx, fmt.Sprintf("refresh_token:%s:%s", claims.ID, jti))

	expVal, _ := claims.GetExpirationTime()
	var ttl time.Duration

	if expVal == nil || expVal.Time.IsZero() {
		ttl = 24 * time.Hour
	} else {
		ttl = time.Until(expVal.Time)
		if ttl <= 0 {
			return nil
		}
	}

	key := fmt.Sprintf("refresh_blacklist:%s", jti)
	if err := database.RDB.Client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to set redis key: %w", err)
	}

	return nil
}

// RefreshToken rotates a refresh token: the old jti is blacklisted with a
// SetNX so a replayed token loses the race, then a fresh pair is issued.
func (s *AuthService) RefreshToken(refreshToken string) (*LoginResponse, error) {
	ctx := context.Background()
	claims, err := parseJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	jti := claims.JTI
	if jti == "" {
		return nil, ErrMissingJTI
	}

	blacklistKey := fmt.Sprintf("refresh_blacklist:%s", jti)
	firstUse, err := database.RDB.Client.SetNX(ctx, blacklistKey, "1", 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check blacklist: %w", err)
	}
	if !firstUse {
		return nil, ErrTokenRevoked
	}

	var ttl time.Duration
	expVal, _ := claims.GetExpirationTime()
	if expVal != nil && !expVal.Time.IsZero() {
		ttl = time.Until(expVal.Time)
		if ttl < 0 {
			ttl = 0
		}
	} else {
		ttl = 24 * time.Hour
	}

	if err = database.RDB.Client.Set(ctx, blacklistKey, "1", ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to blacklist refresh token: %w", err)
	}

	database.RDB.Client.Del(ctx, fmt.Sprintf("refresh_token:%s:%s", claims.ID, jti))

	userData, err := s.UserService.GetUserByID(claims.ID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokenPair(userData)
}

func MapGoogleUserToUser(userInfo map[string]interface{}) (*user.User, error) {
	givenName, _ := userInfo["given_name"].(string)
	familyName, _ := userInfo["family_name"].(string)
	userEmail, _ := userInfo["email"].(string)

	return &user.User{
		FirstName: strings.TrimSpace(givenName),
		LastName:  strings.TrimSpace(familyName),
		Email:     strings.TrimSpace(userEmail),
		Role:      user.RoleUser,
		Password:  "",
	}, nil
}

func (s *AuthService) ExchangeCodeAndGetUser(code string, oauthConfig *oauth2.Config) (*user.User, error) {
	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Println("Code exchange failed:", err)
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	client := oauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		log.Println("Failed to get user info:", err)
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Failed to close response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: unexpected status %d", resp.StatusCode)
	}

	var userInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		log.Println("Failed to parse user info:", err)
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}

	googleUser, err := MapGoogleUserToUser(userInfo)
	if err != nil {
		return nil, err
	}

	if googleUser.Email == "" {
		return nil, fmt.Errorf("email is required from Google OAuth")
	}

	exists, err := s.UserService.GetUserByEmail(googleUser.Email)
	if err == nil && exists != nil {
		return exists, nil
	}

	return s.UserService.CreateUser(googleUser)
}
