package numerology

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
)

// Validation errors returned to callers before the engine runs.
var (
	ErrEmptyName   = errors.New(config.ErrEmptyName)
	ErrInvalidDate = errors.New(config.ErrInvalidDate)
	ErrFutureDate  = errors.New(config.ErrFutureDate)
	ErrDateTooOld  = errors.New(config.ErrDateTooOld)
)

// BirthDate is a validated calendar date.
type BirthDate struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// NewBirthDate rejects dates that do not exist on the calendar (31/04, 29/02
// in a non-leap year).
func NewBirthDate(day, month, year int) (BirthDate, error) {
	if month < 1 || month > 12 || day < 1 {
		return BirthDate{}, fmt.Errorf("%w: %02d/%02d/%04d", ErrInvalidDate, day, month, year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return BirthDate{}, fmt.Errorf("%w: %02d/%02d/%04d", ErrInvalidDate, day, month, year)
	}
	return BirthDate{Day: day, Month: month, Year: year}, nil
}

// ParseBirthDate reads a DD/MM/YYYY string. Single-digit day and month are
// accepted.
func ParseBirthDate(s string) (BirthDate, error) {
	t, err := time.Parse(config.DateFormatInput, strings.TrimSpace(s))
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
	}
	return FromTime(t), nil
}

// FromTime takes the calendar date of t.
func FromTime(t time.Time) BirthDate {
	return BirthDate{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Validate checks the date is not after today and not before minYear.
func (b BirthDate) Validate(today time.Time, minYear int) error {
	if _, err := NewBirthDate(b.Day, b.Month, b.Year); err != nil {
		return err
	}
	if b.Year < minYear {
		return fmt.Errorf("%w: %d < %d", ErrDateTooOld, b.Year, minYear)
	}
	ty, tm, td := today.Date()
	if b.Time().After(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: %s", ErrFutureDate, b)
	}
	return nil
}

// Time returns midnight UTC of the date.
func (b BirthDate) Time() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as DD/MM/YYYY.
func (b BirthDate) String() string {
	return b.Time().Format(config.DateFormatDisplay)
}

// LastBirthdayYear returns the year of the most recent birthday on or before
// today. A 29/02 birthday compares as the (month, day) pair, so in non-leap
// years it is considered reached on 01/03.
func LastBirthdayYear(b BirthDate, today time.Time) int {
	y, m, d := today.Date()
	if int(m) > b.Month || (int(m) == b.Month && d >= b.Day) {
		return y
	}
	return y - 1
}

// Person is the input to every calculator. Both names must be non-empty.
type Person struct {
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	Birth     BirthDate `json:"birth" yaml:"birth"`
}

// FullName joins first and last name with a space.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Validate performs the caller-side checks on names and birth date.
func (p Person) Validate(today time.Time, minYear int) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return ErrEmptyName
	}
	return p.Birth.Validate(today, minYear)
}
