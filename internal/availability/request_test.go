package availability

import (
	"errors"
	"strings"
	"testing"

	"slot-availability/pkg/validator"
)

func validParams() map[string]string {
	return map[string]string{
		"aid":       "123",
		"fid":       "456",
		"date_from": "2025-12-08",
		"date_to":   "2025-12-09",
	}
}

func validate(t *testing.T, params map[string]string) (*Request, []string) {
	t.Helper()
	req, err := NewRequestValidator(validator.NewValidator()).Validate(params)
	if err == nil {
		return req, nil
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return nil, validationErr.Errors
}

func TestRequestValidator_ValidParams(t *testing.T) {
	req, errs := validate(t, validParams())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if req.ProviderID != "123" || req.FacilityID != "456" {
		t.Fatalf("unexpected ids: %+v", req)
	}
	if req.DateFrom.Format(DateLayout) != "2025-12-08" || req.DateTo.Format(DateLayout) != "2025-12-09" {
		t.Fatalf("unexpected dates: %s %s", req.DateFrom, req.DateTo)
	}
	if req.DurationMinutes != 15 {
		t.Fatalf("expected default duration 15, got %d", req.DurationMinutes)
	}
}

func TestRequestValidator_Duration(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		message string
	}{
		{"20", 20, ""},
		{"15", 15, ""},
		{"", 15, ""},
		{"14", 0, "at least 15"},
		{"17", 0, "multiple of 5"},
		{"-15", 0, "must be an integer"},
		{"abc", 0, "must be an integer"},
		{"1.5", 0, "must be an integer"},
		{"+20", 0, "must be an integer"},
		{"99999999999999999999", 0, "multiple of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			params := validParams()
			params["duration_in_min"] = tt.value

			req, errs := validate(t, params)
			if tt.message == "" {
				if errs != nil {
					t.Fatalf("unexpected errors: %v", errs)
				}
				if req.DurationMinutes != tt.want {
					t.Fatalf("expected duration %d, got %d", tt.want, req.DurationMinutes)
				}
				return
			}

			if len(errs) != 1 || !strings.Contains(errs[0], tt.message) {
				t.Fatalf("expected one error containing %q, got %v", tt.message, errs)
			}
		})
	}
}

func TestRequestValidator_DurationBelowMinimumAndNotMultiple(t *testing.T) {
	params := validParams()
	params["duration_in_min"] = "12"

	_, errs := validate(t, params)
	want := []string{"duration_in_min must be at least 15.", "duration_in_min must be a multiple of 5."}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRequestValidator_MissingRequiredParam(t *testing.T) {
	params := validParams()
	delete(params, "fid")

	_, errs := validate(t, params)
	want := []string{"Missing required parameter: fid"}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRequestValidator_AllMissing(t *testing.T) {
	_, errs := validate(t, map[string]string{"duration_in_min": "abc"})
	want := []string{
		"Missing required parameter: aid",
		"Missing required parameter: fid",
		"Missing required parameter: date_from",
		"Missing required parameter: date_to",
	}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRequestValidator_InvalidDateFormat(t *testing.T) {
	params := validParams()
	params["date_from"] = "08-12-2025"
	params["date_to"] = "09.12.2025"

	_, errs := validate(t, params)
	want := []string{
		"Invalid date format dateFrom: 08-12-2025 Expected 'YYYY-MM-DD'.",
		"Invalid date format dateTo: 09.12.2025 Expected 'YYYY-MM-DD'.",
	}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRequestValidator_DateFromAfterDateTo(t *testing.T) {
	params := validParams()
	params["date_from"] = "2025-12-10"
	params["date_to"] = "2025-12-09"

	_, errs := validate(t, params)
	want := []string{"date_from must be earlier than date_to."}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRequestValidator_SameDayRange(t *testing.T) {
	params := validParams()
	params["date_to"] = params["date_from"]

	if _, errs := validate(t, params); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRequestValidator_CollectsAllErrors(t *testing.T) {
	params := validParams()
	params["duration_in_min"] = "abc"
	params["date_to"] = "tomorrow"

	_, errs := validate(t, params)
	want := []string{
		"duration_in_min must be an integer.",
		"Invalid date format dateTo: tomorrow Expected 'YYYY-MM-DD'.",
	}
	if !equalStrings(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}
