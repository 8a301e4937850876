package form

import "errors"

// Registration field names.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldPhone           = "phone"
	FieldBirthDate       = "birthDate"
	FieldAddress         = "address"
	FieldBio             = "bio"
)

// Phase is the submission lifecycle of a form.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

var (
	// ErrInvalid is returned when submitting a form with failing fields.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrBusy is returned when a submission is already in flight or shown.
	ErrBusy = errors.New("form is not accepting input")
	// ErrUnknownField is returned for names the form does not define.
	ErrUnknownField = errors.New("unknown field")
)

// Form is an ordered set of fields plus the submission phase.
type Form struct {
	fields    []*Field
	byName    map[string]*Field
	phase     Phase
	reference string
}

// New builds a form from fields in display order.
func New(fields ...*Field) *Form {
	f := &Form{byName: make(map[string]*Field, len(fields))}
	for _, fld := range fields {
		f.fields = append(f.fields, fld)
		f.byName[fld.Name()] = fld
	}
	return f
}

// NewRegistration returns the user registration form.
func NewRegistration() *Form {
	return New(
		NewField(FieldFirstName, "First Name",
			Required(),
			WithPlaceholder("Enter your first name"),
			WithHelperText("Your given name as it appears on official documents")),
		NewField(FieldLastName, "Last Name",
			Required(),
			WithPlaceholder("Enter your last name"),
			WithHelperText("Your family name or surname")),
		NewField(FieldEmail, "Email Address",
			Required(),
			WithKind(KindEmail),
			WithRules(EmailRules()...),
			WithPlaceholder("Enter your email address"),
			WithHelperText("We'll use this to send you important updates")),
		NewField(FieldPassword, "Password",
			Required(),
			WithKind(KindPassword),
			WithRules(PasswordRules()...),
			WithPlaceholder("Create a strong password"),
			WithHelperText("Must be at least 8 characters with mixed case, numbers")),
		NewField(FieldConfirmPassword, "Confirm Password",
			Required(),
			WithKind(KindPassword),
			WithRules(ConfirmRules("")...),
			WithPlaceholder("Confirm your password"),
			WithHelperText("Re-enter your password to confirm")),
		NewField(FieldPhone, "Phone Number",
			WithKind(KindTel),
			WithRules(PhoneRules()...),
			WithPlaceholder("+1 (555) 123-4567"),
			WithHelperText("Include country code for international numbers")),
		NewField(FieldBirthDate, "Date of Birth",
			WithKind(KindDate),
			WithRules(DateRules()...),
			WithPlaceholder("YYYY-MM-DD"),
			WithHelperText("Used for age verification purposes")),
		NewField(FieldAddress, "Address",
			WithMaxLength(200),
			WithPlaceholder("Enter your full address"),
			WithHelperText("Street address, city, state, and postal code")),
		NewField(FieldBio, "Bio",
			WithKind(KindTextarea),
			WithMaxLength(500),
			WithRows(4),
			WithPlaceholder("Tell us a little about yourself..."),
			WithHelperText("Optional: Share your interests, hobbies, or professional background")),
	)
}

// Fields returns the fields in display order.
func (f *Form) Fields() []*Field { return f.fields }

// Field looks a field up by name.
func (f *Form) Field(name string) (*Field, bool) {
	fld, ok := f.byName[name]
	return fld, ok
}

// Set edits one field. Fields that depend on it are revalidated.
func (f *Form) Set(name, value string) error {
	fld, ok := f.byName[name]
	if !ok {
		return ErrUnknownField
	}
	fld.SetValue(value)
	if name == FieldPassword {
		if confirm, ok := f.byName[FieldConfirmPassword]; ok {
			confirm.SetRules(ConfirmRules(fld.Value())...)
		}
	}
	return nil
}

// Valid reports whether every field is valid.
func (f *Form) Valid() bool {
	for _, fld := range f.fields {
		if !fld.Valid() {
			return false
		}
	}
	return true
}

// TouchAll marks every field touched so pending errors become visible.
func (f *Form) TouchAll() {
	for _, fld := range f.fields {
		fld.Touch()
	}
}

// Values returns the current value of every field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.Name()] = fld.Value()
	}
	return out
}

// Phase returns the submission phase.
func (f *Form) Phase() Phase { return f.phase }

// Reference is the receipt of the last completed submission.
func (f *Form) Reference() string { return f.reference }

// BeginSubmit moves an editing, valid form into the submitting phase. All
// fields are touched first so an invalid form shows its errors.
func (f *Form) BeginSubmit() error {
	if f.phase != PhaseEditing {
		return ErrBusy
	}
	f.TouchAll()
	if !f.Valid() {
		return ErrInvalid
	}
	f.phase = PhaseSubmitting
	return nil
}

// CompleteSubmit records the receipt of a submission in flight.
func (f *Form) CompleteSubmit(reference string) error {
	if f.phase != PhaseSubmitting {
		return ErrBusy
	}
	f.phase = PhaseSubmitted
	f.reference = reference
	return nil
}

// Reset clears every field and returns to editing.
func (f *Form) Reset() {
	for _, fld := range f.fields {
		fld.Reset()
	}
	if confirm, ok := f.byName[FieldConfirmPassword]; ok {
		confirm.SetRules(ConfirmRules("")...)
	}
	f.phase = PhaseEditing
	f.reference = ""
}
