package auth

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pier41/crabhouse/internal/config"
)

// ErrInvalidPIN indicates the PIN matched no staff member.
var ErrInvalidPIN = errors.New("invalid pin")

// Service authenticates staff by their four digit PIN. The roster is
// small enough that scanning every bcrypt hash per attempt is fine.
type Service struct {
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewService wires a new PIN authentication service.
func NewService(cfg config.AuthConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger}
}

// Login compares the PIN against every roster hash and returns the
// matched staff member's name. PINs are not unique identifiers by
// construction; the first matching entry wins.
func (s *Service) Login(pin string) (string, error) {
	for name, hash := range s.cfg.StaffRoster {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err == nil {
			s.logger.Info("staff login", zap.String("name", name))
			return name, nil
		}
	}

	s.logger.Warn("login attempt with unknown pin")
	return "", ErrInvalidPIN
}

// SessionTTLHours exposes the configured cookie lifetime.
func (s *Service) SessionTTLHours() int {
	return s.cfg.SessionTTLHours
}
