package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "negative count at index %d", 2),
			want: "INVALID_INPUT: negative count at index 2",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeDataSource, stderrors.New("no such file"), "open workbook data.xlsx"),
			want: "DATA_SOURCE: open workbook data.xlsx: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDivisionByZero, "sample size is zero")

	if !Is(err, ErrCodeDivisionByZero) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeExport) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeExport) {
		t.Error("Is() = true for plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeExport, "write Figure3_Barriers.pdf")
	outer := fmt.Errorf("render barriers: %w", inner)

	if !Is(outer, ErrCodeExport) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeExport {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeExport)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDataSource, "missing sheet")); got != ErrCodeDataSource {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeDataSource)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeExport, cause, "write output")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFigure, "unknown figure: funnel2")
	if got := UserMessage(err); strings.Contains(got, "INVALID_FIGURE") {
		t.Errorf("UserMessage() = %q, should not contain the code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
