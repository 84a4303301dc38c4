package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_AllPass(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Name", "value").
		Positive("Count", 3).
		NonNegative("Offset", 0).
		MinInt("Layers", 2, 2).
		RangeInt("Digit", 5, 0, 9).
		OrderedRange("Items", 2, 4).
		Probability("Rate", 0.5).
		OneOf("Format", "csv", []string{"csv", "json"})

	if cv.HasErrors() {
		t.Fatalf("expected no errors, got %v", cv.Errors())
	}
	if err := cv.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Name", "").
		Positive("Count", 0).
		RangeInt("Digit", 12, 0, 9).
		OrderedRange("Items", 5, 2)

	if got := len(cv.Errors()); got != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", got, cv.Errors())
	}
	err := cv.Validate()
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !strings.Contains(err.Error(), "4 errors") {
		t.Errorf("combined error should report count, got %q", err)
	}
}

func TestConfigValidator_SingleErrorUnwrapped(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Positive("Count", -1)

	err := cv.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "TestConfig.Count") {
		t.Errorf("error should name the field, got %q", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Positive("Skipped", -1)
	}).When(true, func(v *ConfigValidator) {
		v.Positive("Applied", -1)
	})

	errs := cv.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "Applied") {
		t.Errorf("wrong branch validated: %v", errs[0])
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("boom")
	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return sentinel })

	err := cv.Validate()
	if !errors.Is(err, sentinel) {
		t.Fatalf("custom error should wrap the cause, got %v", err)
	}
}

type validConfig struct{}

func (validConfig) Validate() error { return nil }

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(validConfig{}); err != nil {
		t.Fatalf("ValidateConfig(valid) = %v", err)
	}
	if err := ValidateConfig(nil); err == nil {
		t.Fatal("nil config should be rejected")
	}
}
