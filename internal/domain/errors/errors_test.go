package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"empty order", ErrEmptyOrder},
		{"item not found", ErrItemNotFound},
		{"order not deletable", ErrOrderNotDeletable},
		{"invalid quantity", ErrInvalidQuantity},
		{"name required", ErrNameRequired},
		{"label required", ErrLabelRequired},
		{"invalid price", ErrInvalidPrice},
		{"client required", ErrClientRequired},
		{"no consign items", ErrNoConsignItems},
		{"exceeds outstanding", ErrExceedsOutstanding},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
