package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"event-intake/internal/models"
)

// init teaches the binding validator to report json tag names instead of
// Go field names, so validation details match the wire format.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldError is one entry in the details list of a validation failure.
type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// bindErrorDetails maps a binding error to field-level details.
// Returns nil when the error carries no per-field information,
// for example malformed JSON.
func bindErrorDetails(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			reason := "failed " + fe.Tag() + " validation"
			if fe.Tag() == "required" {
				reason = "field is required"
			}
			out = append(out, fieldError{Field: fe.Field(), Reason: reason})
		}
		return out
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		reason := "invalid type"
		switch ute.Type.Kind() {
		case reflect.Map:
			reason = "must be a JSON object"
		case reflect.String:
			reason = "must be a string"
		}
		return []fieldError{{Field: ute.Field, Reason: reason}}
	}

	return nil
}

// RegisterEventRoutes registers the intake endpoint on the /events group.
//
// POST /events/
//   - Validates the Event payload at the binding boundary
//   - Invalid payloads are rejected with field-level details; the handler
//     body never runs for them
//   - Valid payloads are acknowledged with a fixed 202 response
//
// Each invocation is stateless and independent: nothing is persisted and
// duplicates are not detected.
func RegisterEventRoutes(r gin.IRoutes) {
	intake := func(c *gin.Context) {
		var req models.Event
		if err := c.ShouldBindJSON(&req); err != nil {
			if details := bindErrorDetails(err); details != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "validation failed",
					"details": details,
				})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Diagnostic echo of the accepted payload; not part of the contract.
		// Binding guarantees both pointers are non-nil here.
		log.Info().
			Str("event_id", *req.EventID).
			Str("event_type", *req.EventType).
			Interface("event_data", req.EventData).
			Msg("event received")

		c.JSON(http.StatusAccepted, models.Ack{Message: "Data received!"})
	}

	// Register both forms so callers are not bounced through a 307
	// trailing-slash redirect.
	r.POST("", intake)
	r.POST("/", intake)
}
