package service

import (
	"context"

	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/redis"
)

type emailCodeStore interface {
	SetPendingCode(ctx context.Context, scope, email, code string) error
	ConfirmPendingCode(ctx context.Context, scope, email string) error
	DeletePendingCode(ctx context.Context, scope, email string) error
	GetConfirmedCode(ctx context.Context, scope, email string) (string, error)
	DeleteConfirmedCode(ctx context.Context, scope, email string) error
}

type mailSender func(cfg pkg.SMTPConfig, to, subject, htmlBody string) error

type EmailService struct {
	cfg   pkg.SMTPConfig
	codes emailCodeStore
	send  mailSender
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{
		cfg:   cfg,
		codes: &redis.EmailCodeRepository{},
		send:  pkg.SendEmail,
	}
}

var codeSubjects = map[string]string{
	"register": "sign-up verification",
	"reset":    "password reset",
}

// SendCode mails a verification code for the given scope. The code becomes
// verifiable only after the mail went out: pending is written first, then
// promoted to confirmed, and rolled back if promotion fails.
func (s *EmailService) SendCode(ctx context.Context, scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.codes.SetPendingCode(ctx, scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(codeSubjects[scope], code, redis.DefaultEmailCodeTTL)
	if err = s.send(s.cfg, email, "Your verification code", html); err != nil {
		return err
	}

	if err = s.codes.ConfirmPendingCode(ctx, scope, email); err != nil {
		_ = s.codes.DeletePendingCode(ctx, scope, email)
		return err
	}
	return nil
}

// VerifyCode checks a submitted code against the confirmed one and consumes
// it on success (single use).
func (s *EmailService) VerifyCode(ctx context.Context, scope, email, code string) (bool, error) {
	val, err := s.codes.GetConfirmedCode(ctx, scope, email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.codes.DeleteConfirmedCode(ctx, scope, email); err != nil {
		return false, err
	}
	return true, nil
}
