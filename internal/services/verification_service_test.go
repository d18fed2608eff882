package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
)

func newTestUser() *models.User {
	return &models.User{
		ID:        primitive.NewObjectID(),
		Email:     "anna@example.com",
		FirstName: "Anna",
	}
}

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestIssueCodePersistsCodeAndExpiryTogether(t *testing.T) {
	user := newTestUser()
	repo := newFakeUserRepo(user)
	emails := newFakeEmailService()
	svc := NewVerificationService(repo, emails, fakeAuthService{})

	issued := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	require.NoError(t, svc.IssueCode(context.Background(), user))

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationCode)
	require.NotNil(t, stored.VerificationCodeExpires)
	assert.Equal(t, issued.Add(time.Hour), *stored.VerificationCodeExpires)

	mails := emails.sentTo(user.Email)
	require.Len(t, mails, 1)
	assert.Equal(t, *stored.VerificationCode, mails[0].Text)
}

func TestIssueCodeSurvivesMailFailure(t *testing.T) {
	user := newTestUser()
	repo := newFakeUserRepo(user)
	emails := newFakeEmailService()
	emails.failFor[user.Email] = errors.New("smtp down")
	svc := NewVerificationService(repo, emails, fakeAuthService{})

	require.NoError(t, svc.IssueCode(context.Background(), user))

	// the code is persisted even though the mail never went out
	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.VerificationCode)
}

func TestValidateCodeSuccessIsOneWay(t *testing.T) {
	user := newTestUser()
	repo := newFakeUserRepo(user)
	svc := NewVerificationService(repo, newFakeEmailService(), fakeAuthService{})

	require.NoError(t, svc.IssueCode(context.Background(), user))
	code := *user.VerificationCode

	token, err := svc.ValidateCode(context.Background(), user, code)
	require.NoError(t, err)
	assert.Equal(t, "token-"+user.ID.Hex(), token)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Nil(t, stored.VerificationCode)
	assert.Nil(t, stored.VerificationCodeExpires)

	// a second attempt with the same code hits the verified guard
	_, err = svc.ValidateCode(context.Background(), user, code)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestValidateCodeExactMatchOnly(t *testing.T) {
	user := newTestUser()
	repo := newFakeUserRepo(user)
	svc := NewVerificationService(repo, newFakeEmailService(), fakeAuthService{})

	require.NoError(t, repo.SetVerificationCode(context.Background(), user.ID, "012345", time.Now().Add(time.Hour)))
	stored, _ := repo.GetByID(context.Background(), user.ID)

	// "12345" is not "012345": no numeric normalization
	_, err := svc.ValidateCode(context.Background(), stored, "12345")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	_, err = svc.ValidateCode(context.Background(), stored, "012345")
	assert.NoError(t, err)
}

func TestValidateCodeExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"just before expiry", issued.Add(time.Hour - time.Second), nil},
		{"exactly at expiry", issued.Add(time.Hour), ErrCodeExpired},
		{"after expiry", issued.Add(2 * time.Hour), ErrCodeExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := newTestUser()
			repo := newFakeUserRepo(user)
			svc := NewVerificationService(repo, newFakeEmailService(), fakeAuthService{})

			svc.now = func() time.Time { return issued }
			require.NoError(t, svc.IssueCode(context.Background(), user))
			code := *user.VerificationCode

			svc.now = func() time.Time { return tc.at }
			_, err := svc.ValidateCode(context.Background(), user, code)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResendCodeReplacesPreviousCode(t *testing.T) {
	user := newTestUser()
	repo := newFakeUserRepo(user)
	svc := NewVerificationService(repo, newFakeEmailService(), fakeAuthService{})

	issued := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	require.NoError(t, svc.IssueCode(context.Background(), user))
	oldCode := *user.VerificationCode

	svc.now = func() time.Time { return issued.Add(30 * time.Minute) }
	require.NoError(t, svc.ResendCode(context.Background(), user))

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationCodeExpires)
	// expiry runs from the resend, not from the original issue
	assert.Equal(t, issued.Add(90*time.Minute), *stored.VerificationCodeExpires)

	if oldCode != *stored.VerificationCode {
		_, err = svc.ValidateCode(context.Background(), stored, oldCode)
		assert.ErrorIs(t, err, ErrCodeMismatch)
	}

	_, err = svc.ValidateCode(context.Background(), stored, *stored.VerificationCode)
	assert.NoError(t, err)
}

func TestResendCodeRejectsVerifiedUser(t *testing.T) {
	user := newTestUser()
	user.Verified = true
	repo := newFakeUserRepo(user)
	svc := NewVerificationService(repo, newFakeEmailService(), fakeAuthService{})

	err := svc.ResendCode(context.Background(), user)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}
