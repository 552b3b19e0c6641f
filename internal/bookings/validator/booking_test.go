package validator

import (
	"testing"

	apperrors "tably/pkg/errors"
	"tably/pkg/logger"
	"tably/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func dt(t *testing.T, s string) model.LocalDateTime {
	t.Helper()
	parsed, err := model.ParseLocalDateTime(s)
	if err != nil {
		t.Fatalf("ParseLocalDateTime(%q): %v", s, err)
	}
	return parsed
}

func TestValidate_OperatingWindow(t *testing.T) {
	v := NewBookingValidator(9*60, 19*60, testLogger())

	tests := []struct {
		name     string
		dateTime string
		wantCode string
	}{
		{"exactly at opening", "2024-05-01T09:00:00", ""},
		{"one minute before opening", "2024-05-01T08:59:00", apperrors.CodeOutOfHours},
		{"last admissible minute", "2024-05-01T18:59:00", ""},
		{"exactly at last booking time", "2024-05-01T19:00:00", apperrors.CodeOutOfHours},
		{"late evening", "2024-05-01T22:30:00", apperrors.CodeOutOfHours},
		{"midnight", "2024-05-01T00:00:00", apperrors.CodeOutOfHours},
		{"midday", "2024-05-01T12:30:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &model.BookingRequest{
				CustomerName: "Alice",
				TableSize:    2,
				DateTime:     dt(t, tt.dateTime),
			}

			err := v.Validate(req)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidate_Fields(t *testing.T) {
	v := NewBookingValidator(9*60, 19*60, testLogger())
	noon := dt(t, "2024-05-01T12:00:00")

	tests := []struct {
		name string
		req  *model.BookingRequest
	}{
		{"missing customer name", &model.BookingRequest{TableSize: 2, DateTime: noon}},
		{"zero table size", &model.BookingRequest{CustomerName: "Alice", DateTime: noon}},
		{"negative table size", &model.BookingRequest{CustomerName: "Alice", TableSize: -1, DateTime: noon}},
		{"missing date time", &model.BookingRequest{CustomerName: "Alice", TableSize: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeMalformedRequest {
				t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeMalformedRequest)
			}
			if appErr.Message != apperrors.MsgInvalidBooking {
				t.Errorf("message = %q, want %q", appErr.Message, apperrors.MsgInvalidBooking)
			}
		})
	}
}

func TestValidate_LargePartyStillInWindow(t *testing.T) {
	// A single request for more seats than the restaurant holds passes
	// field and window validation; the capacity check rejects it later.
	v := NewBookingValidator(9*60, 19*60, testLogger())
	req := &model.BookingRequest{CustomerName: "Greta", TableSize: 11, DateTime: dt(t, "2024-05-01T12:00:00")}
	if err := v.Validate(req); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
