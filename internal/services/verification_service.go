package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"studysimplifier/internal/models"
	"studysimplifier/internal/repositories"
)

var (
	ErrAlreadyVerified = errors.New("email already verified")
	ErrCodeMismatch    = errors.New("verification code invalid")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrUserNotFound    = errors.New("user not found")
)

// Codes expire exactly one hour after they were issued.
const verificationCodeTTL = time.Hour

// VerificationService gates account activation behind proof of email
// ownership via a short-lived 6-digit code stored on the user document.
type VerificationService struct {
	users  repositories.UserRepository
	emails EmailService
	auth   AuthService

	now func() time.Time
}

func NewVerificationService(users repositories.UserRepository, emails EmailService, auth AuthService) *VerificationService {
	return &VerificationService{
		users:  users,
		emails: emails,
		auth:   auth,
		now:    time.Now,
	}
}

// generateCode returns a uniformly random 6-digit code as a fixed-width
// string. Leading zeros are preserved ("003456" stays "003456").
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueCode generates a fresh code, persists code and expiry together on the
// user and attempts to email the code. A failed send is logged but does not
// fail the caller: the user can always request a resend.
func (s *VerificationService) IssueCode(ctx context.Context, user *models.User) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	expires := s.now().Add(verificationCodeTTL)

	if err := s.users.SetVerificationCode(ctx, user.ID, code, expires); err != nil {
		return err
	}
	user.VerificationCode = &code
	user.VerificationCodeExpires = &expires

	if err := s.emails.SendVerificationEmail(user, code); err != nil {
		log.Printf("[verify][issue] failed to send code to %s: %v", user.Email, err)
	}
	return nil
}

// ValidateCode checks the submitted code against the stored one. On success
// the user becomes verified (one-way, there is no unverify), both code
// fields are cleared in the same update, and a session token is returned.
// Comparison is exact string equality: "012345" does not match "12345".
func (s *VerificationService) ValidateCode(ctx context.Context, user *models.User, submitted string) (string, error) {
	if user.Verified {
		return "", ErrAlreadyVerified
	}
	if user.VerificationCode == nil || *user.VerificationCode != submitted {
		return "", ErrCodeMismatch
	}
	if user.VerificationCodeExpires == nil || !s.now().Before(*user.VerificationCodeExpires) {
		return "", ErrCodeExpired
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return "", err
	}
	user.Verified = true
	user.VerificationCode = nil
	user.VerificationCodeExpires = nil

	token, err := s.auth.GenerateSessionToken(user)
	if err != nil {
		return "", err
	}
	log.Printf("[verify][validate] user %s verified", user.ID.Hex())
	return token, nil
}

// ResendCode issues a fresh code for a still-unverified user. The previous
// code is overwritten and stops being valid: there is never more than one
// valid code per user.
func (s *VerificationService) ResendCode(ctx context.Context, user *models.User) error {
	if user.Verified {
		return ErrAlreadyVerified
	}
	return s.IssueCode(ctx, user)
}
