package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidAlignment, "unknown alignment: %s", "middle")
	want := "INVALID_ALIGNMENT: unknown alignment: middle"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeInvalidLayout, cause, "failed to read %s", "cols.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "INVALID_LAYOUT: failed to read cols.toml: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidSymbol, "unknown symbol")
	if !Is(err, ErrCodeInvalidSymbol) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidWidth) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidSymbol) {
		t.Error("Is should not match plain errors")
	}

	// Code survives fmt wrapping
	wrapped := fmt.Errorf("columns: %w", err)
	if !Is(wrapped, ErrCodeInvalidSymbol) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFileNotFound, "gone")); got != ErrCodeFileNotFound {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidWidth, "width must be positive")); got != "width must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
