package host

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pazhonic/panel-manager/internal/model"
)

// Default tuning
const (
	DefaultSerialTimeout = 5 * time.Second
	SessionLifetime      = 24 * time.Hour
)

// setting is a host-side key/value record (jwt secret, biometric flag, ...)
type setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Keys in the setting table
const (
	settingJWTSecret        = "jwt_secret"
	settingBiometricEnabled = "biometric_enabled"
	settingLastUserID       = "last_user_id"
)

// Service implements bridge.Host backed by GORM/SQLite
type Service struct {
	db            *gorm.DB
	log           zerolog.Logger
	jwtSecret     []byte
	serialTimeout time.Duration

	// sink delivers asynchronous replies to the bridge adapter
	sink func(callbackID, payload string)

	mu           sync.Mutex
	sessionToken string
	sessionUser  uint
}

// Open opens (or creates) the host database and migrates its schema
func Open(path string) (*Service, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{}, &model.Panel{}, &model.Folder{}, &model.Location{}, &setting{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &Service{
		db:            db,
		log:           zerolog.New(os.Stdout).With().Timestamp().Str("component", "host").Logger(),
		serialTimeout: DefaultSerialTimeout,
	}

	secret, err := s.loadOrCreateSecret()
	if err != nil {
		return nil, err
	}
	s.jwtSecret = secret

	s.log.Info().Str("path", path).Msg("host database opened")
	return s, nil
}

// SetCallbackSink wires the delivery function for asynchronous operations.
// Must be set before any async call is issued.
func (s *Service) SetCallbackSink(sink func(callbackID, payload string)) {
	s.sink = sink
}

// SetSerialTimeout overrides the TCP timeout for device queries
func (s *Service) SetSerialTimeout(d time.Duration) {
	if d > 0 {
		s.serialTimeout = d
	}
}

// loadOrCreateSecret returns the persistent JWT signing key, generating
// one on first run
func (s *Service) loadOrCreateSecret() ([]byte, error) {
	var row setting
	err := s.db.First(&row, "key = ?", settingJWTSecret).Error
	if err == nil {
		return []byte(row.Value), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("loading jwt secret: %w", err)
	}

	row = setting{Key: settingJWTSecret, Value: uuid.NewString()}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("storing jwt secret: %w", err)
	}
	return []byte(row.Value), nil
}

func (s *Service) getSetting(key string) string {
	var row setting
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		return ""
	}
	return row.Value
}

func (s *Service) putSetting(key, value string) {
	row := setting{Key: key, Value: value}
	s.db.Save(&row)
}

// reply marshals a value into the JSON string handed back over the bridge
func reply(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{"error":"reply encoding failed"}`
	}
	return string(b)
}

func errorReply(msg string) string {
	return reply(map[string]string{"error": msg})
}

func failure(msg string) string {
	return reply(map[string]any{"success": false, "error": msg})
}

func success() string {
	return reply(map[string]any{"success": true})
}

func successWithID(id uint) string {
	return reply(map[string]any{"success": true, "id": id})
}
