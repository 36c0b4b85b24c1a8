package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	billingdomain "github.com/hirelane/hirelane/internal/billing/domain"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
	meetingdomain "github.com/hirelane/hirelane/internal/meeting/domain"
	settingsdomain "github.com/hirelane/hirelane/internal/settings/domain"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts domain sentinel errors collected on the
// context into a JSON error envelope with the right status code.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Code:    err.Error(),
			Message: "validation error",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Code:    err.Error(),
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Code:    err.Error(),
			Message: "conflict",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, jobdomain.ErrInvalidTitle),
		errors.Is(err, jobdomain.ErrInvalidEmploymentType),
		errors.Is(err, jobdomain.ErrInvalidStatus),
		errors.Is(err, applicantdomain.ErrInvalidStage),
		errors.Is(err, meetingdomain.ErrInvalidType),
		errors.Is(err, meetingdomain.ErrInvalidStatus),
		errors.Is(err, meetingdomain.ErrInvalidSchedule),
		errors.Is(err, teamdomain.ErrInvalidName),
		errors.Is(err, teamdomain.ErrInvalidMemberStatus),
		errors.Is(err, teamdomain.ErrInvalidPermission),
		errors.Is(err, billingdomain.ErrInvalidCard),
		errors.Is(err, settingsdomain.ErrInvalidProvider):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, jobdomain.ErrNotFound),
		errors.Is(err, applicantdomain.ErrNotFound),
		errors.Is(err, meetingdomain.ErrNotFound),
		errors.Is(err, teamdomain.ErrMemberNotFound),
		errors.Is(err, teamdomain.ErrRoleNotFound),
		errors.Is(err, billingdomain.ErrPaymentMethodNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, meetingdomain.ErrMeetingFinished),
		errors.Is(err, meetingdomain.ErrInvalidTransition),
		errors.Is(err, teamdomain.ErrRoleProtected),
		errors.Is(err, teamdomain.ErrRoleInUse):
		return true
	default:
		return false
	}
}
