package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCodeOfWrapped(t *testing.T) {
	base := New(CodeInvalidColor, "parse color \"#zz\"", nil)
	wrapped := fmt.Errorf("load theme: %w", base)

	if got := CodeOf(wrapped); got != CodeInvalidColor {
		t.Fatalf("CodeOf = %q, want %q", got, CodeInvalidColor)
	}
	if !IsCode(wrapped, CodeInvalidColor) {
		t.Fatalf("IsCode should match through fmt.Errorf wrapping")
	}
	if IsCode(wrapped, CodeUnknownTheme) {
		t.Fatalf("IsCode matched the wrong code")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(stderrors.New("boom")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("CodeOf(nil) = %q, want %q", got, CodeUnknown)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	cause := stderrors.New("disk full")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"message wins", New(CodeCatalogFailed, "save theme", cause), "save theme"},
		{"cause when no message", New(CodeCatalogFailed, "", cause), "disk full"},
		{"code when empty", New(CodeNotFound, "", nil), "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !stderrors.Is(New(CodeCatalogFailed, "x", cause), cause) {
		t.Fatalf("Unwrap should expose the cause")
	}
}
