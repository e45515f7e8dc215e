package validation

import (
	"testing"
)

type sample struct {
	Name  string `validate:"notblank"`
	Count int    `validate:"min=2,max=4"`
	Email string `validate:"omitempty,email"`
}

func TestValidator_Struct(t *testing.T) {
	validator := NewValidator()
	ranges := map[string][2]int{"count": {2, 4}}

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantType  ValidationErrorType
	}{
		{"valid", sample{Name: "ok", Count: 3}, "", ""},
		{"blank name", sample{Name: "  ", Count: 3}, "name", ErrorTypeRequired},
		{"count too low", sample{Name: "ok", Count: 1}, "count", ErrorTypeInvalidRange},
		{"count too high", sample{Name: "ok", Count: 5}, "count", ErrorTypeInvalidRange},
		{"other tag", sample{Name: "ok", Count: 3, Email: "nope"}, "email", ErrorTypeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := validator.Struct(tt.input, ranges)
			if tt.wantField == "" {
				if verr != nil {
					t.Errorf("expected no error, got %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected error on %s", tt.wantField)
			}
			if len(verr.Errors) != 1 || verr.Errors[0].Field != tt.wantField {
				t.Fatalf("expected 1 error on %s, got %v", tt.wantField, verr.Errors)
			}
			if verr.Errors[0].Type != tt.wantType {
				t.Errorf("expected type %v, got %v", tt.wantType, verr.Errors[0].Type)
			}
		})
	}
}

func TestValidator_Struct_RangeMessage(t *testing.T) {
	verr := NewValidator().Struct(sample{Name: "ok", Count: 9}, map[string][2]int{"count": {2, 4}})
	if verr == nil {
		t.Fatal("expected error")
	}
	if verr.GetUserFriendlyMessage() != "Count must be between 2 and 4" {
		t.Errorf("unexpected message %q", verr.GetUserFriendlyMessage())
	}
}
