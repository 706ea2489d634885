package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"slot-availability/internal/availability"
	"slot-availability/internal/delivery/http/middleware"
	"slot-availability/internal/domain/entity"
	"slot-availability/internal/service"
	"slot-availability/internal/usecase"
	"slot-availability/pkg/response"

	"github.com/sirupsen/logrus"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	requestValidator    *availability.RequestValidator
	auditService        service.AuditService
	log                 *logrus.Logger
}

func NewAvailabilityHandler(
	availabilityUsecase usecase.AvailabilityUsecase,
	requestValidator *availability.RequestValidator,
	auditService service.AuditService,
	log *logrus.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		requestValidator:    requestValidator,
		auditService:        auditService,
		log:                 log,
	}
}

// GetAvailableSlots handles GET /available_slots
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.audit(ctx, true, fmt.Sprintf("%s request: %s", r.URL.Path, r.URL.RawQuery), nil)

	req, err := h.requestValidator.Validate(queryParams(r))
	if err != nil {
		var validationErr *availability.ValidationError
		if errors.As(err, &validationErr) {
			response.ValidationError(w, validationErr.Errors)
			return
		}
		h.fail(ctx, w, r, err)
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(ctx, req)
	if err != nil {
		h.fail(ctx, w, r, err)
		return
	}

	h.audit(ctx, true, fmt.Sprintf("%s response", r.URL.Path), entity.JSON{"response": slots})
	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *AvailabilityHandler) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithField("request_id", middleware.GetRequestIDFromContext(ctx)).
		Errorf("Failed to get available slots: %+v", err)
	h.audit(ctx, false, fmt.Sprintf("%s error: %s", r.URL.Path, err.Error()), nil)
	response.InternalServerError(w, "", err.Error())
}

// audit records the event; a failed audit write never fails the request.
func (h *AvailabilityHandler) audit(ctx context.Context, success bool, comments string, metadata entity.JSON) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok || user == "" {
		user = "system"
	}
	group, ok := middleware.GetGroupFromContext(ctx)
	if !ok || group == "" {
		group = "Default"
	}

	_ = h.auditService.LogEvent(ctx, service.AuditEntry{
		Event:     entity.AuditEventAPI,
		User:      user,
		Group:     group,
		Success:   success,
		Comments:  comments,
		RequestID: middleware.GetRequestIDFromContext(ctx),
		Metadata:  metadata,
	})
}

// queryParams keeps the first value of each query parameter.
func queryParams(r *http.Request) map[string]string {
	values := r.URL.Query()
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}
