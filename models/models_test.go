package models

import (
	"strings"
	"testing"
	"time"
)

func validContact() ContactMessageCreate {
	return ContactMessageCreate{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi",
		Message: "Hello",
	}
}

// Test ContactMessageCreate validation
func TestContactMessageCreateValidation(t *testing.T) {
	valid := validContact()
	if errors := valid.Validate(); errors.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	tests := []struct {
		name   string
		mutate func(f *ContactMessageCreate)
		field  string
	}{
		{"empty name", func(f *ContactMessageCreate) { f.Name = "" }, "name"},
		{"name too long", func(f *ContactMessageCreate) { f.Name = strings.Repeat("a", 101) }, "name"},
		{"malformed email", func(f *ContactMessageCreate) { f.Email = "not-an-email" }, "email"},
		{"missing email", func(f *ContactMessageCreate) { f.Email = "" }, "email"},
		{"subject too long", func(f *ContactMessageCreate) { f.Subject = strings.Repeat("s", 201) }, "subject"},
		{"missing message", func(f *ContactMessageCreate) { f.Message = "" }, "message"},
		{"message too long", func(f *ContactMessageCreate) { f.Message = strings.Repeat("m", 5001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validContact()
			tt.mutate(&form)

			errors := form.Validate()
			if len(errors) != 1 {
				t.Fatalf("Expected exactly 1 error, got: %v", errors)
			}
			if errors[0].Field != tt.field {
				t.Errorf("Expected error on field %s, got %s", tt.field, errors[0].Field)
			}
		})
	}
}

// Length bounds count characters rather than bytes
func TestContactMessageCreateCountsCharacters(t *testing.T) {
	form := validContact()
	form.Name = strings.Repeat("é", 100)

	if errors := form.Validate(); errors.HasErrors() {
		t.Errorf("Expected 100 two-byte characters to be accepted, got: %v", errors)
	}
}

func TestContactMessageCreateBoundaries(t *testing.T) {
	form := validContact()
	form.Name = strings.Repeat("n", 100)
	form.Subject = strings.Repeat("s", 200)
	form.Message = strings.Repeat("m", 5000)

	if errors := form.Validate(); errors.HasErrors() {
		t.Errorf("Expected upper bounds to be inclusive, got: %v", errors)
	}
}

func TestStatusCheckCreateValidation(t *testing.T) {
	valid := StatusCheckCreate{ClientName: "portfolio-frontend"}
	if errors := valid.Validate(); errors.HasErrors() {
		t.Errorf("Expected no errors, got: %v", errors)
	}

	invalid := StatusCheckCreate{}
	errors := invalid.Validate()
	if len(errors) != 1 || errors[0].Field != "client_name" {
		t.Errorf("Expected a client_name error, got: %v", errors)
	}
	if errors.Error() != "client_name is required" {
		t.Errorf("Unexpected message: %s", errors.Error())
	}
}

func TestNewContactMessageDefaults(t *testing.T) {
	in := validContact()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	msg := NewContactMessage(&in, now)
	other := NewContactMessage(&in, now)

	if msg.ID == "" || msg.ID == other.ID {
		t.Errorf("Expected fresh unique ids, got %q and %q", msg.ID, other.ID)
	}
	if msg.IsRead {
		t.Error("Expected is_read to default to false")
	}
	if msg.CreatedAt.Location() != time.UTC || !msg.CreatedAt.Equal(now) {
		t.Errorf("Expected created_at in UTC equal to %v, got %v", now, msg.CreatedAt)
	}
	if msg.Name != in.Name || msg.Email != in.Email || msg.Subject != in.Subject || msg.Message != in.Message {
		t.Errorf("Expected caller fields to be copied, got %+v", msg)
	}
}

func TestNewResumeDownloadOptionalFields(t *testing.T) {
	now := time.Now()

	empty := NewResumeDownload(&ResumeDownloadCreate{}, now)
	if empty.UserAgent != nil || empty.IPAddress != nil {
		t.Errorf("Expected nil optional fields, got %+v", empty)
	}

	filled := NewResumeDownload(&ResumeDownloadCreate{UserAgent: "curl/8.0", IPAddress: "10.0.0.1"}, now)
	if filled.UserAgent == nil || *filled.UserAgent != "curl/8.0" {
		t.Errorf("Expected user agent to be set, got %v", filled.UserAgent)
	}
	if filled.IPAddress == nil || *filled.IPAddress != "10.0.0.1" {
		t.Errorf("Expected ip address to be set, got %v", filled.IPAddress)
	}
}

// Test timestamp serialization
func TestTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2025, 10, 6, 8, 30, 15, 123456000, time.UTC)

	formatted := FormatTimestamp(ts)
	if formatted != "2025-10-06T08:30:15.123456Z" {
		t.Errorf("Unexpected format: %s", formatted)
	}

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("Expected %v, got %v", ts, parsed)
	}
}

func TestParseTimestampAcceptsOffsets(t *testing.T) {
	parsed, err := ParseTimestamp("2025-10-06T10:30:15.5+02:00")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	want := time.Date(2025, 10, 6, 8, 30, 15, 500000000, time.UTC)
	if !parsed.Equal(want) || parsed.Location() != time.UTC {
		t.Errorf("Expected %v in UTC, got %v", want, parsed)
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("Expected an error for a non ISO-8601 value")
	}
}

// Stored strings must sort the same way as the instants they encode
func TestFormatTimestampOrdersLexically(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 5, 0, time.UTC)
	earlier := FormatTimestamp(base)
	later := FormatTimestamp(base.Add(100 * time.Millisecond))

	if !(earlier < later) {
		t.Errorf("Expected %s < %s", earlier, later)
	}
}

// Creation times are kept at the precision the store persists
func TestNewStatusCheckTruncatesToMicroseconds(t *testing.T) {
	now := time.Date(2025, 10, 6, 8, 30, 15, 123456789, time.UTC)

	check := NewStatusCheck(&StatusCheckCreate{ClientName: "web"}, now)

	want := time.Date(2025, 10, 6, 8, 30, 15, 123456000, time.UTC)
	if !check.Timestamp.Equal(want) {
		t.Errorf("Expected %v, got %v", want, check.Timestamp)
	}
	parsed, err := ParseTimestamp(FormatTimestamp(check.Timestamp))
	if err != nil || !parsed.Equal(check.Timestamp) {
		t.Errorf("Expected stored form to round trip, got %v (%v)", parsed, err)
	}
}
