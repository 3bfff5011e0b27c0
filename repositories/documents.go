package repositories

import (
	"fmt"
	"time"

	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/models"
)

// Documents are decoded field by field: known fields are read, anything else
// (store-internal ids, fields added by newer writers) is skipped so that old
// and new documents can share a collection.

// stringField reads a required string field
func stringField(doc database.Document, key string) (string, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, value)
	}
	return s, nil
}

// optionalStringField reads a string field that may be absent or null
func optionalStringField(doc database.Document, key string) (*string, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("field %q: expected string, got %T", key, value)
	}
	return &s, nil
}

// boolField reads a boolean field, falling back when it is absent
func boolField(doc database.Document, key string, fallback bool) (bool, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return fallback, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("field %q: expected bool, got %T", key, value)
	}
	return b, nil
}

// timeField re-hydrates a temporal field. Documents written by this service
// hold ISO-8601 strings; native timestamps from other writers are accepted
// too.
func timeField(doc database.Document, key string) (time.Time, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return time.Time{}, fmt.Errorf("missing field %q", key)
	}

	switch v := value.(type) {
	case string:
		t, err := models.ParseTimestamp(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("field %q: %w", key, err)
		}
		return t, nil
	case time.Time:
		return v.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("field %q: expected timestamp, got %T", key, value)
	}
}

// optionalValue stores nil pointers as null
func optionalValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
