package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"express/internal/repository"
	"express/internal/service"
)

func TestMapErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidWeight, http.StatusBadRequest},
		{service.ErrInvalidDistance, http.StatusBadRequest},
		{service.ErrAssignmentRejected, http.StatusConflict},
		{fmt.Errorf("assign: %w", service.ErrAssignmentRejected), http.StatusConflict},
		{service.ErrNamesExhausted, http.StatusServiceUnavailable},
		{repository.ErrNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapErrorToHTTPStatus(tt.err); got != tt.want {
			t.Errorf("mapErrorToHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
