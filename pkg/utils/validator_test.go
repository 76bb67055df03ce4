package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	Name          string `validate:"required,min=2"`
	Phone         string `validate:"required,phone"`
	Email         string `validate:"omitempty,email"`
	Vehicle       string `validate:"required,min=3"`
	Service       string `validate:"required,oneof=oil-change battery brakes engine cooling emergency other"`
	Location      string `validate:"required,min=5"`
	PreferredDate string `validate:"required,datetime=2006-01-02"`
	PreferredTime string `validate:"required,datetime=15:04"`
}

func validPayload() bookingPayload {
	return bookingPayload{
		Name:          "Jo Lee",
		Phone:         "5551234567",
		Email:         "jo@example.com",
		Vehicle:       "Civic",
		Service:       "oil-change",
		Location:      "123 Main St, City",
		PreferredDate: "2026-09-15",
		PreferredTime: "09:00",
	}
}

func TestValidateStruct_Pass(t *testing.T) {
	assert.Nil(t, ValidateStruct(validPayload()))
}

func TestValidateStruct_ReportsEveryViolation(t *testing.T) {
	p := bookingPayload{
		Phone:         "abc",
		Email:         "not-an-email",
		Vehicle:       "ab",
		Service:       "welding",
		Location:      "x",
		PreferredDate: "15/09/2026",
		PreferredTime: "25:00",
	}

	errs := ValidateStruct(p)

	for _, field := range []string{"Name", "Phone", "Email", "Vehicle", "Service", "Location", "PreferredDate", "PreferredTime"} {
		assert.Contains(t, errs, field)
	}
	assert.Len(t, errs, 8)
}

func TestValidateStruct_MissingSingleField(t *testing.T) {
	p := validPayload()
	p.Location = ""

	errs := ValidateStruct(p)

	assert.Len(t, errs, 1)
	assert.Equal(t, "This field is required", errs["Location"])
}

func TestValidateStruct_OptionalEmail(t *testing.T) {
	p := validPayload()
	p.Email = ""

	assert.Nil(t, ValidateStruct(p))
}

func TestValidateStruct_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain digits", "5551234567", true},
		{"with country code", "+15551234567", true},
		{"with separators", "(555) 123-4567", true},
		{"dotted", "555.123.4567", true},
		{"letters", "abc", false},
		{"too short", "55512", false},
		{"digits with letters", "555123456a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.Phone = tt.phone

			errs := ValidateStruct(p)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, errs, "Phone")
				assert.Equal(t, "Invalid phone number", errs["Phone"])
			}
		})
	}
}

func TestValidateStruct_DateAndTime(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		time  string
		valid bool
	}{
		{"valid", "2026-09-15", "08:00", true},
		{"last slot", "2026-12-31", "17:00", true},
		{"bad month", "2026-13-01", "08:00", false},
		{"wrong date format", "09/15/2026", "08:00", false},
		{"hour out of range", "2026-09-15", "24:00", false},
		{"minute out of range", "2026-09-15", "10:60", false},
		{"no colon", "2026-09-15", "0800", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.PreferredDate = tt.date
			p.PreferredTime = tt.time

			errs := ValidateStruct(p)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Phone": "Invalid phone number"})
	assert.Equal(t, "Phone: Invalid phone number", out)
}
