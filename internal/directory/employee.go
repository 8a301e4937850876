package directory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Status is the employment status of a record.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

// ErrInvalidStatus is returned when a status is not one of the known values.
var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus maps a stored status string onto the enumerated set.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	case StatusOnLeave:
		return StatusOnLeave, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Employee is one row of the directory.
type Employee struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Department string `yaml:"department"`
	Position   string `yaml:"position"`
	Salary     int    `yaml:"salary"`
	HireDate   string `yaml:"hire_date"` // YYYY-MM-DD
	Status     Status `yaml:"status"`
}

// Field names a sortable employee attribute.
type Field string

const (
	FieldID         Field = "id"
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldDepartment Field = "department"
	FieldPosition   Field = "position"
	FieldSalary     Field = "salary"
	FieldHireDate   Field = "hireDate"
	FieldStatus     Field = "status"
)

// Fields lists every field in record order.
var Fields = []Field{
	FieldID, FieldName, FieldEmail, FieldDepartment,
	FieldPosition, FieldSalary, FieldHireDate, FieldStatus,
}

// Valid reports whether f names a known field.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Value returns the string representation of field f, the same text the
// search stage matches against.
func (e Employee) Value(f Field) string {
	switch f {
	case FieldID:
		return strconv.Itoa(e.ID)
	case FieldName:
		return e.Name
	case FieldEmail:
		return e.Email
	case FieldDepartment:
		return e.Department
	case FieldPosition:
		return e.Position
	case FieldSalary:
		return strconv.Itoa(e.Salary)
	case FieldHireDate:
		return e.HireDate
	case FieldStatus:
		return string(e.Status)
	}
	return ""
}

// Initials returns the first letter of each word of the name.
func (e Employee) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(e.Name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}
