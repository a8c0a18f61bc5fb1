package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time-of-day value ("HH:MM").
// All comparisons and arithmetic are done on minutes since midnight,
// never on the string form. The string form exists only for JSON,
// logging and the database boundary.
type TimeString string

const (
	// MinutesPerDay число минут в сутках, верхняя граница для конца интервала
	MinutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит время из строки
// Поддерживает форматы "HH:MM" и "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
// Значение 1440 ("24:00") допустимо как исключительная граница интервала
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// parseMinutes разбирает "HH:MM" или "HH:MM:SS" в минуты с начала суток
func parseMinutes(s string) (int, error) {
	var hours, minutes, seconds int

	switch len(s) {
	case 5: // HH:MM
		if _, err := fmt.Sscanf(s, "%2d:%2d", &hours, &minutes); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	case 8: // HH:MM:SS
		if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &hours, &minutes, &seconds); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	total := hours*60 + minutes
	if total > MinutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return total, nil
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Для некорректного значения возвращает 0 (валидация выполняется отдельно)
func (t TimeString) Minutes() int {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return 0
	}
	return minutes
}

// AddMinutes возвращает время, сдвинутое на указанное число минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}

	total := base + minutes
	if total < 0 || total > MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return FromMinutes(total), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the canonical "HH:MM" form.
// Constructors keep values canonical, so no re-normalization happens here.
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer, stored as TIME ("HH:MM:00").
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String() + ":00", nil
}

// Scan implements sql.Scanner, accepts TIME columns in string, []byte
// or time.Time representation.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
