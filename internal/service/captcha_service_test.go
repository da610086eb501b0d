package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/ecat-taratra/backend/internal/config"
)

func TestCaptchaServiceDisabledPassesThrough(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: false})
	if err := svc.Verify(CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled captcha should pass, got %v", err)
	}
	if _, err := svc.GenerateImageChallenge(); !errors.Is(err, ErrCaptchaDisabled) {
		t.Fatalf("want ErrCaptchaDisabled got %v", err)
	}
}

func TestCaptchaServiceImageChallenge(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: true})

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || !strings.HasPrefix(challenge.ImageBase64, "data:image/png;base64,") {
		t.Fatalf("unexpected challenge: %+v", challenge.CaptchaID)
	}

	if err := svc.Verify(CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID}); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("want ErrCaptchaRequired got %v", err)
	}

	answer := svc.store.Get(challenge.CaptchaID, false)
	if answer == "" {
		t.Fatalf("answer should be stored")
	}
	if err := svc.Verify(CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: answer + "x"}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("want ErrCaptchaInvalid got %v", err)
	}
}

func TestCaptchaServiceAnswerIsSingleUse(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: true, Length: 4})
	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	answer := svc.store.Get(challenge.CaptchaID, false)

	payload := CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: answer}
	if err := svc.Verify(payload); err != nil {
		t.Fatalf("correct answer should verify: %v", err)
	}
	if err := svc.Verify(payload); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("second use should fail, got %v", err)
	}
}

func TestNormalizeCaptchaConfig(t *testing.T) {
	cfg := normalizeCaptchaConfig(config.CaptchaConfig{Length: 20, Width: 10, ExpireSeconds: 1})
	if cfg.Length != 5 || cfg.Width != 240 || cfg.Height != 80 || cfg.ExpireSeconds != 300 || cfg.MaxStore != 10240 {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
