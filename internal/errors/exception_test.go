package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"sentinel", ErrTaskNotFound, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("update: %w", ErrCommentEditForbidden), http.StatusForbidden},
		{"conflict", Conflict("task %s exists", "T-1"), http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStore_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Store("failed to write task log", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if err.Error() != "failed to write task log: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
