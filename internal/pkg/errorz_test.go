package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFieldErrorMatchesValidation(t *testing.T) {
	err := RequireNonEmpty("subject", "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation match, got %v", err)
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatal("expected a *FieldError")
	}
	if fe.Field != "subject" || fe.Reason != "required" {
		t.Fatalf("unexpected field error: %+v", fe)
	}
}

func TestFieldErrorDoesNotMatchOtherClasses(t *testing.T) {
	err := RequireNonEmpty("content", " ")
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotFound) {
		t.Fatalf("field error leaked into another class: %v", err)
	}
}

func TestRequireNonEmpty(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"hello", true},
		{" padded ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, c := range cases {
		err := RequireNonEmpty("subject", c.value)
		if c.ok && err != nil {
			t.Errorf("RequireNonEmpty(%q) = %v, want nil", c.value, err)
		}
		if !c.ok && err == nil {
			t.Errorf("RequireNonEmpty(%q) = nil, want error", c.value)
		}
	}
}

func TestFieldErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create question: %w", RequireNonEmpty("subject", ""))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("wrapped field error lost its class: %v", err)
	}
}

func TestAnswerAnchorPath(t *testing.T) {
	if got := AnswerAnchorPath(12, 34); got != "/questions/12#answer_34" {
		t.Fatalf("AnswerAnchorPath = %q", got)
	}
}
