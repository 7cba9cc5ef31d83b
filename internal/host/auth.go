package host

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pazhonic/panel-manager/internal/model"
)

// Claims is the payload embedded in every session token
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a signed HS256 session token
func (s *Service) generateJWT(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "panel-manager",
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// parseJWT validates a token string and returns the claims
func (s *Service) parseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// currentUserID returns the user of the active session, or false when the
// session is missing or expired
func (s *Service) currentUserID() (uint, bool) {
	s.mu.Lock()
	token := s.sessionToken
	s.mu.Unlock()

	if token == "" {
		return 0, false
	}
	claims, err := s.parseJWT(token)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

type registerRequest struct {
	UserName     string `json:"userName"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	NationalCode string `json:"nationalCode"`
	AvatarURL    string `json:"avatarUrl"`
	IPAddress    string `json:"ipAddress"`
}

// RegisterUser creates a new account
func (s *Service) RegisterUser(userJSON string) string {
	var req registerRequest
	if err := json.Unmarshal([]byte(userJSON), &req); err != nil {
		return failure("invalid registration payload")
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.UserName == "" || req.PhoneNumber == "" || req.Password == "" {
		return failure("userName, phoneNumber and password are required")
	}

	var existing model.User
	err := s.db.Where("user_name = ? OR phone_number = ?", req.UserName, req.PhoneNumber).
		First(&existing).Error
	if err == nil {
		return failure("user already exists")
	}
	if err != gorm.ErrRecordNotFound {
		return failure(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return failure(err.Error())
	}

	user := model.User{
		UserName:     req.UserName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalCode: req.NationalCode,
		AvatarURL:    req.AvatarURL,
		IPAddress:    req.IPAddress,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return failure(err.Error())
	}

	s.log.Info().Str("user", user.UserName).Msg("user registered")
	return success()
}

// Login authenticates by phone number and password and opens a session
func (s *Service) Login(phoneNumber, password string) string {
	var user model.User
	err := s.db.Where("phone_number = ?", strings.TrimSpace(phoneNumber)).First(&user).Error
	if err != nil {
		return failure("invalid phone number or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return failure("invalid phone number or password")
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return failure(err.Error())
	}

	s.mu.Lock()
	s.sessionToken = token
	s.sessionUser = user.ID
	s.mu.Unlock()
	s.putSetting(settingLastUserID, strconv.FormatUint(uint64(user.ID), 10))

	return reply(map[string]any{"success": true, "token": token, "user": user})
}

// GetSessionToken returns the active token, null when logged out
func (s *Service) GetSessionToken() string {
	s.mu.Lock()
	token := s.sessionToken
	s.mu.Unlock()

	if token == "" {
		return reply(map[string]any{"token": nil})
	}
	if _, err := s.parseJWT(token); err != nil {
		return reply(map[string]any{"token": nil})
	}
	return reply(map[string]any{"token": token})
}

// GetLatestUser returns the session's user record, null without a session
func (s *Service) GetLatestUser() string {
	uid, ok := s.currentUserID()
	if !ok {
		return reply(map[string]any{"user": nil})
	}
	var user model.User
	if err := s.db.First(&user, uid).Error; err != nil {
		return reply(map[string]any{"user": nil})
	}
	return reply(map[string]any{"user": user})
}

// Logout ends the active session
func (s *Service) Logout() {
	s.mu.Lock()
	s.sessionToken = ""
	s.sessionUser = 0
	s.mu.Unlock()
}

// GetBiometricEnabled returns "true" or "false" as a raw string
func (s *Service) GetBiometricEnabled() string {
	if s.getSetting(settingBiometricEnabled) == "true" {
		return "true"
	}
	return "false"
}

// SetBiometricEnabled persists the biometric login flag
func (s *Service) SetBiometricEnabled(enabled string) {
	value := "false"
	if enabled == "true" {
		value = "true"
	}
	s.putSetting(settingBiometricEnabled, value)
}

// LoginWithBiometric asynchronously authenticates the last logged-in user.
// The reply, in the same shape as Login, is delivered through the callback
// sink; without a sink the call is dropped.
func (s *Service) LoginWithBiometric(callbackID string) {
	sink := s.sink
	if sink == nil {
		s.log.Warn().Msg("biometric login requested without a callback sink")
		return
	}

	go func() {
		if s.GetBiometricEnabled() != "true" {
			sink(callbackID, failure("biometric login is disabled"))
			return
		}

		raw := s.getSetting(settingLastUserID)
		uid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || uid == 0 {
			sink(callbackID, failure("no previous login"))
			return
		}

		var user model.User
		if err := s.db.First(&user, uint(uid)).Error; err != nil {
			sink(callbackID, failure("no previous login"))
			return
		}

		token, err := s.generateJWT(user.ID)
		if err != nil {
			sink(callbackID, failure(err.Error()))
			return
		}

		s.mu.Lock()
		s.sessionToken = token
		s.sessionUser = user.ID
		s.mu.Unlock()

		sink(callbackID, reply(map[string]any{"success": true, "token": token, "user": user}))
	}()
}
