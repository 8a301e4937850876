// Package form implements validated input fields and the registration form
// built from them.
//
// A field's errors are always recomputed from its value, its required flag
// and its rule list; they are never edited directly.
package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind selects how a field is edited and displayed.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindTextarea Kind = "textarea"
)

// Rule is a single validation predicate with the message reported when it fails.
type Rule struct {
	Test    func(string) bool
	Message string
}

// Status is the indicator shown next to a field.
type Status int

const (
	StatusNeutral Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "neutral"
	}
}

// StatusOf derives the indicator. Untouched or empty fields stay neutral.
func StatusOf(touched, empty bool, errCount int) Status {
	if !touched || empty {
		return StatusNeutral
	}
	if errCount > 0 {
		return StatusError
	}
	return StatusSuccess
}

// Validate runs the required check and then every rule, collecting all
// messages. Rules are skipped for an empty value.
func Validate(label, value string, required bool, rules []Rule) []string {
	var errs []string
	if required && strings.TrimSpace(value) == "" {
		errs = append(errs, fmt.Sprintf("%s is required", label))
	}
	if value == "" {
		return errs
	}
	for _, r := range rules {
		if !r.Test(value) {
			errs = append(errs, r.Message)
		}
	}
	return errs
}

// IsValid combines the collected messages with the required flag.
func IsValid(errs []string, required bool, value string) bool {
	return len(errs) == 0 && (!required || strings.TrimSpace(value) != "")
}

// Option configures a Field.
type Option func(*Field)

func WithKind(k Kind) Option { return func(f *Field) { f.kind = k } }

func WithPlaceholder(s string) Option { return func(f *Field) { f.placeholder = s } }

func WithHelperText(s string) Option { return func(f *Field) { f.helper = s } }

// Required marks the field as mandatory.
func Required() Option { return func(f *Field) { f.required = true } }

// WithMaxLength limits the value to n runes and enables the counter.
func WithMaxLength(n int) Option { return func(f *Field) { f.maxLength = n } }

// WithRows sets the visible height of a textarea.
func WithRows(n int) Option { return func(f *Field) { f.rows = n } }

func WithRules(rules ...Rule) Option {
	return func(f *Field) { f.rules = append(f.rules, rules...) }
}

// Field is one input with its validation state.
type Field struct {
	name        string
	label       string
	kind        Kind
	placeholder string
	helper      string
	required    bool
	maxLength   int
	rows        int
	rules       []Rule

	value        string
	touched      bool
	focused      bool
	showPassword bool
	errors       []string
	valid        bool
}

// NewField builds a pristine field and validates its empty value.
func NewField(name, label string, opts ...Option) *Field {
	f := &Field{name: name, label: label, kind: KindText, rows: 4}
	for _, opt := range opts {
		opt(f)
	}
	f.validate()
	return f
}

func (f *Field) validate() {
	f.errors = Validate(f.label, f.value, f.required, f.rules)
	f.valid = IsValid(f.errors, f.required, f.value)
}

func (f *Field) Name() string        { return f.name }
func (f *Field) Label() string       { return f.label }
func (f *Field) Kind() Kind          { return f.kind }
func (f *Field) Placeholder() string { return f.placeholder }
func (f *Field) HelperText() string  { return f.helper }
func (f *Field) IsRequired() bool    { return f.required }
func (f *Field) MaxLength() int      { return f.maxLength }
func (f *Field) Rows() int           { return f.rows }
func (f *Field) Value() string       { return f.value }
func (f *Field) Touched() bool       { return f.touched }
func (f *Field) Focused() bool       { return f.focused }
func (f *Field) Valid() bool         { return f.valid }

// Errors returns a copy of the current messages.
func (f *Field) Errors() []string {
	return append([]string(nil), f.errors...)
}

// SetValue records an edit: the value is truncated to the max length, the
// field becomes touched and is revalidated.
func (f *Field) SetValue(v string) {
	if f.maxLength > 0 && utf8.RuneCountInString(v) > f.maxLength {
		v = string([]rune(v)[:f.maxLength])
	}
	f.value = v
	f.touched = true
	f.validate()
}

// SetRules replaces the rule list and revalidates the current value.
func (f *Field) SetRules(rules ...Rule) {
	f.rules = append([]Rule(nil), rules...)
	f.validate()
}

// Focus marks the field as having input focus.
func (f *Field) Focus() { f.focused = true }

// Blur removes focus; a blurred field counts as touched.
func (f *Field) Blur() {
	f.focused = false
	f.touched = true
}

// Touch marks the field as touched without changing its value.
func (f *Field) Touch() { f.touched = true }

// Status returns the indicator for the current state.
func (f *Field) Status() Status {
	return StatusOf(f.touched, f.value == "", len(f.errors))
}

// ShowHelper reports whether helper text should be displayed.
func (f *Field) ShowHelper() bool { return f.helper != "" && !f.touched }

// ShowErrors reports whether error messages should be displayed.
func (f *Field) ShowErrors() bool { return f.touched && len(f.errors) > 0 }

// ShowSuccess reports whether the "looks good" confirmation is displayed.
func (f *Field) ShowSuccess() bool { return f.touched && f.valid && f.value != "" }

// TogglePassword flips password visibility. It has no effect on validity.
func (f *Field) TogglePassword() {
	if f.kind == KindPassword {
		f.showPassword = !f.showPassword
	}
}

// PasswordVisible reports whether a password field shows its value.
func (f *Field) PasswordVisible() bool { return f.showPassword }

// Counter renders "n/max", or "" when the field has no max length.
func (f *Field) Counter() string {
	if f.maxLength <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(f.value), f.maxLength)
}

// Reset returns the field to its pristine state.
func (f *Field) Reset() {
	f.value = ""
	f.touched = false
	f.focused = false
	f.showPassword = false
	f.validate()
}
