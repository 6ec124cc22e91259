package settings

import (
	"fmt"
	"strconv"
	"time"
)

// Typed accessors convert the resolved value. Conversion failures surface as
// plain errors; a missing key still reports ErrNotFound through the wrapped
// Get call.

// GetString resolves key as a string.
func (s *Settings) GetString(key string) (string, error) {
	value, err := s.Get(key)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// GetBool resolves key as a bool, accepting string forms like "true".
func (s *Settings) GetBool(key string) (bool, error) {
	value, err := s.Get(key)
	if err != nil {
		return false, err
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("settings: %s is not a bool: %q", key, v)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("settings: %s is not a bool: %T", key, value)
	}
}

// GetInt resolves key as an int, accepting the numeric types decoders
// commonly produce.
func (s *Settings) GetInt(key string) (int, error) {
	value, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("settings: %s is not an int: %q", key, v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("settings: %s is not an int: %T", key, value)
	}
}

// GetFloat resolves key as a float64.
func (s *Settings) GetFloat(key string) (float64, error) {
	value, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("settings: %s is not a float: %q", key, v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("settings: %s is not a float: %T", key, value)
	}
}

// GetDuration resolves key as a time.Duration, accepting strings in
// time.ParseDuration form and integers as nanoseconds.
func (s *Settings) GetDuration(key string) (time.Duration, error) {
	value, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case int64:
		return time.Duration(v), nil
	case int:
		return time.Duration(v), nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("settings: %s is not a duration: %q", key, v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("settings: %s is not a duration: %T", key, value)
	}
}
