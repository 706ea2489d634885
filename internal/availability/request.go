package availability

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"slot-availability/pkg/validator"
)

// Query parameter names accepted by the availability endpoint.
const (
	ParamProviderID = "aid"
	ParamFacilityID = "fid"
	ParamDateFrom   = "date_from"
	ParamDateTo     = "date_to"
	ParamDuration   = "duration_in_min"
)

type rawRequest struct {
	ProviderID string `param:"aid" validate:"required"`
	FacilityID string `param:"fid" validate:"required"`
	Duration   string `param:"duration_in_min" validate:"omitempty,number"`
	DateFrom   string `param:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo     string `param:"date_to" validate:"required,datetime=2006-01-02"`
}

// RequestValidator turns raw query parameters into a Request.
type RequestValidator struct {
	validator *validator.CustomValidator
}

func NewRequestValidator(v *validator.CustomValidator) *RequestValidator {
	return &RequestValidator{validator: v}
}

// Validate returns a *ValidationError listing every problem found. Missing
// required parameters are reported on their own since nothing else can be
// checked without them.
func (rv *RequestValidator) Validate(params map[string]string) (*Request, error) {
	raw := rawRequest{
		ProviderID: params[ParamProviderID],
		FacilityID: params[ParamFacilityID],
		Duration:   params[ParamDuration],
		DateFrom:   params[ParamDateFrom],
		DateTo:     params[ParamDateTo],
	}

	failed := make(map[string]bool)
	var missing []string
	for _, v := range rv.validator.Violations(rv.validator.Validate(&raw)) {
		if v.Tag == "required" {
			missing = append(missing, fmt.Sprintf("Missing required parameter: %s", v.Field))
			continue
		}
		failed[v.Field] = true
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Errors: missing}
	}

	var errs []string

	duration := DefaultDurationMinutes
	if raw.Duration != "" {
		n, err := strconv.Atoi(raw.Duration)
		// Digit strings beyond int range saturate to the maximum int.
		if errors.Is(err, strconv.ErrRange) {
			err = nil
		}
		if failed[ParamDuration] || err != nil {
			errs = append(errs, "duration_in_min must be an integer.")
		} else {
			duration = n
			if n < MinDurationMinutes {
				errs = append(errs, fmt.Sprintf("duration_in_min must be at least %d.", MinDurationMinutes))
			}
			if n%DurationStepMinutes != 0 {
				errs = append(errs, fmt.Sprintf("duration_in_min must be a multiple of %d.", DurationStepMinutes))
			}
		}
	}

	dateFrom, fromErr := time.Parse(DateLayout, raw.DateFrom)
	if failed[ParamDateFrom] || fromErr != nil {
		errs = append(errs, fmt.Sprintf("Invalid date format dateFrom: %s Expected 'YYYY-MM-DD'.", raw.DateFrom))
	}
	dateTo, toErr := time.Parse(DateLayout, raw.DateTo)
	if failed[ParamDateTo] || toErr != nil {
		errs = append(errs, fmt.Sprintf("Invalid date format dateTo: %s Expected 'YYYY-MM-DD'.", raw.DateTo))
	}
	if fromErr == nil && toErr == nil && dateFrom.After(dateTo) {
		errs = append(errs, "date_from must be earlier than date_to.")
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &Request{
		ProviderID:      raw.ProviderID,
		FacilityID:      raw.FacilityID,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		DurationMinutes: duration,
	}, nil
}
