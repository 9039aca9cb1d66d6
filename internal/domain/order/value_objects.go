package order

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidFullName = errors.New("full name is required and must be at most 100 characters")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrNoteTooLong     = errors.New("note must be at most 500 characters")
	ErrInvalidCode     = errors.New("invalid order code")
)

const (
	maxFullNameLen = 100
	maxNoteLen     = 500
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

type Contact struct {
	fullName string
	phone    string
}

func NewContact(fullName, phone string) (Contact, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" || utf8.RuneCountInString(fullName) > maxFullNameLen {
		return Contact{}, ErrInvalidFullName
	}
	phone = strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.TrimSpace(phone))
	if !phoneRegex.MatchString(phone) {
		return Contact{}, ErrInvalidPhone
	}
	return Contact{fullName: fullName, phone: phone}, nil
}

func (c Contact) FullName() string { return c.fullName }
func (c Contact) Phone() string    { return c.phone }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxNoteLen {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Code is the external order code handed to the payment collaborator.
type Code int64

// NewCode derives a code from the staging time in milliseconds with three
// random trailing digits.
func NewCode(now time.Time) Code {
	return Code(now.UnixMilli()*1000 + rand.Int64N(1000))
}

func ParseCode(v int64) (Code, error) {
	if v <= 0 {
		return 0, ErrInvalidCode
	}
	return Code(v), nil
}

func (c Code) Int64() int64 {
	return int64(c)
}

type Amounts struct {
	Original int64
	Discount int64
	Final    int64
}
