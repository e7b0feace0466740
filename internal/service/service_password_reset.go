package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/adapter"
	"github.com/MKhiriev/go-recipe-share/internal/crypto"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
)

type passwordResetService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         crypto.TokenGenerator
	mailer         adapter.Mailer

	// tokenDuration is the validity window of a freshly issued reset token.
	tokenDuration time.Duration

	now func() time.Time

	// deliver hands a token to the mailer. It runs the send in its own
	// goroutine; tests replace it to observe the send synchronously.
	deliver func(ctx context.Context, email, token string)

	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenGenerator,
	mailer adapter.Mailer,
	tokenDuration time.Duration,
	logger *logger.Logger,
) PasswordResetService {
	s := &passwordResetService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		mailer:         mailer,
		tokenDuration:  tokenDuration,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
	s.deliver = s.deliverAsync
	return s
}

// RequestReset issues a new reset token for email and mails it. A second
// request replaces the previous token.
//
// Unknown emails yield ErrEmailNotFound. Mail delivery does not block the
// caller and its failures are only logged.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrEmailNotFound
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		log.Err(err).Msg("reset token generation failed")
		return fmt.Errorf("%w: %w", ErrGeneratingResetToken, err)
	}

	if err = s.userRepository.SetResetToken(ctx, user.UserID, token, s.now().Add(s.tokenDuration)); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	s.deliver(ctx, user.Email, token)
	return nil
}

// VerifyToken returns ErrInvalidOrExpiredToken unless token is stored and
// still inside its validity window.
func (s *passwordResetService) VerifyToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidOrExpiredToken
	}

	if _, err := s.userRepository.FindUserByResetToken(ctx, token, s.now()); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	return nil
}

// ChangePassword replaces the password of the token's owner and clears the
// token in one guarded update, so a token can be consumed only once.
func (s *passwordResetService) ChangePassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := s.VerifyToken(ctx, token); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	if err = s.userRepository.ConsumeResetToken(ctx, token, s.now(), hash); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		log.Err(err).Msg("consuming reset token failed")
		return fmt.Errorf("consuming reset token failed: %w", err)
	}

	return nil
}

func (s *passwordResetService) deliverAsync(ctx context.Context, email, token string) {
	log := logger.FromContext(ctx)
	// the request context is cancelled once the response is written
	ctx = context.WithoutCancel(ctx)

	go func() {
		if err := s.mailer.SendResetToken(ctx, email, token); err != nil {
			log.Err(err).Msg("reset token delivery failed")
			return
		}
		log.Info().Msg("reset token delivered")
	}()
}
