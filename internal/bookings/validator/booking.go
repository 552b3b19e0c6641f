package validator

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	apperrors "tably/pkg/errors"
	"tably/pkg/logger"
	"tably/pkg/model"
)

// BookingValidator decides whether a booking request is admissible: the
// fields must be well-formed and the start time must fall inside the
// operating window. Capacity is checked separately by the service, against
// repository state.
type BookingValidator struct {
	validate    *validator.Validate
	openMinutes int
	lastMinutes int
	log         *logger.Logger
}

// NewBookingValidator builds a validator for an operating window expressed
// in minutes since midnight. The window is half-open: a booking may start at
// openMinutes and strictly before lastMinutes.
func NewBookingValidator(openMinutes, lastMinutes int, log *logger.Logger) *BookingValidator {
	v := validator.New()

	// LocalDateTime is a custom struct, which validator treats as a nested
	// struct to traverse rather than a value to check; expose the underlying
	// time.Time so required rejects the zero value.
	v.RegisterCustomTypeFunc(localDateTimeValue, model.LocalDateTime{})

	return &BookingValidator{
		validate:    v,
		openMinutes: openMinutes,
		lastMinutes: lastMinutes,
		log:         log,
	}
}

func localDateTimeValue(field reflect.Value) any {
	if dt, ok := field.Interface().(model.LocalDateTime); ok {
		return dt.Time
	}
	return nil
}

// Validate returns nil when the request may proceed to the capacity check.
// Field violations map to MalformedRequest, operating-window violations to
// OutOfHours.
func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			v.log.Warn("Booking request failed field validation", "error", validationErrs.Error())
			return apperrors.MalformedRequest(apperrors.MsgInvalidBooking)
		}
		return apperrors.Internal("Failed to validate booking request", err)
	}

	minutes := req.DateTime.MinutesOfDay()
	if minutes < v.openMinutes || minutes >= v.lastMinutes {
		v.log.Warn("Booking start outside operating window",
			"date_time", req.DateTime.String(),
			"customer_name", req.CustomerName,
		)
		return apperrors.OutOfHours()
	}

	return nil
}
