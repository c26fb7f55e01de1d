package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		notFound bool
		invalid  bool
		noData   bool
	}{
		{"not found", NewNotFoundError("plant", "PLANT_099"), "NOT_FOUND", true, false, false},
		{"invalid input", NewInvalidInputError("bad severity"), "INVALID_INPUT", false, true, false},
		{"no data", NewNoDataError(), "NO_DATA", false, false, true},
		{"internal", NewInternalError(errors.New("disk gone")), "INTERNAL_ERROR", false, false, false},
		{"plain error", errors.New("something"), "INTERNAL_ERROR", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.code {
				t.Errorf("Code = %q, want %q", got, tt.code)
			}
			if IsNotFound(tt.err) != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", IsNotFound(tt.err), tt.notFound)
			}
			if IsInvalidInput(tt.err) != tt.invalid {
				t.Errorf("IsInvalidInput = %v, want %v", IsInvalidInput(tt.err), tt.invalid)
			}
			if IsNoData(tt.err) != tt.noData {
				t.Errorf("IsNoData = %v, want %v", IsNoData(tt.err), tt.noData)
			}
		})
	}
}

func TestDomainErrorWrapping(t *testing.T) {
	err := NewNotFoundError("plant", "PLANT_099")

	// Works through further wrapping.
	wrapped := fmt.Errorf("listing anomalies: %w", err)
	if !IsNotFound(wrapped) {
		t.Error("classification should survive wrapping")
	}
	if Code(wrapped) != "NOT_FOUND" {
		t.Errorf("Code through wrap = %q, want NOT_FOUND", Code(wrapped))
	}

	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatal("expected a DomainError")
	}
	if de.UserMessage() != "plant 'PLANT_099' not found" {
		t.Errorf("user message = %q", de.UserMessage())
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityRank("low") >= SeverityRank("critical") {
		t.Error("low must rank below critical")
	}
	if SeverityRank("nonsense") != -1 {
		t.Error("unknown severity should rank -1")
	}
}
