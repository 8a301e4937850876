package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/showcase/internal/form"
)

const inputWidth = 48

// editor pairs a validated field with the widget that edits it.
type editor struct {
	field *form.Field
	input textinput.Model
	area  textarea.Model
}

func newEditor(f *form.Field) *editor {
	e := &editor{field: f}
	if e.multiline() {
		ta := textarea.New()
		ta.Placeholder = f.Placeholder()
		ta.CharLimit = f.MaxLength()
		ta.ShowLineNumbers = false
		ta.SetWidth(inputWidth + 12)
		ta.SetHeight(f.Rows())
		e.area = ta
		return e
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = f.Placeholder()
	ti.CharLimit = f.MaxLength()
	ti.Width = inputWidth
	if f.Kind() == form.KindPassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	e.input = ti
	return e
}

func (e *editor) multiline() bool { return e.field.Kind() == form.KindTextarea }

func (e *editor) value() string {
	if e.multiline() {
		return e.area.Value()
	}
	return e.input.Value()
}

func (e *editor) setValue(v string) {
	if e.multiline() {
		e.area.SetValue(v)
		return
	}
	e.input.SetValue(v)
}

func (e *editor) focus() tea.Cmd {
	e.field.Focus()
	if e.multiline() {
		return e.area.Focus()
	}
	return e.input.Focus()
}

func (e *editor) blur() {
	e.field.Blur()
	if e.multiline() {
		e.area.Blur()
		return
	}
	e.input.Blur()
}

func (e *editor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.multiline() {
		e.area, cmd = e.area.Update(msg)
	} else {
		e.input, cmd = e.input.Update(msg)
	}
	return cmd
}

func (e *editor) reset() {
	if e.multiline() {
		e.area.Reset()
		e.area.Blur()
		return
	}
	e.input.Reset()
	e.input.Blur()
	if e.field.Kind() == form.KindPassword {
		e.input.EchoMode = textinput.EchoPassword
	}
}

func (e *editor) view() string {
	if e.multiline() {
		return e.area.View()
	}
	return e.input.View()
}

type formView struct {
	form      *form.Form
	editors   []*editor
	focus     int // -1 while no field is being edited
	lastFocus int
}

func newFormView() *formView {
	f := form.NewRegistration()
	v := &formView{form: f, focus: -1}
	for _, fld := range f.Fields() {
		v.editors = append(v.editors, newEditor(fld))
	}
	return v
}

func (v *formView) editing() bool {
	return v.focus >= 0 && v.form.Phase() == form.PhaseEditing
}

func (v *formView) focused() *editor {
	if v.focus < 0 {
		return nil
	}
	return v.editors[v.focus]
}

// focusField blurs the current field, which touches it, and focuses field i.
func (v *formView) focusField(i int) tea.Cmd {
	n := len(v.editors)
	i = (i%n + n) % n
	if ed := v.focused(); ed != nil {
		ed.blur()
	}
	v.focus = i
	v.lastFocus = i
	return v.editors[i].focus()
}

func (v *formView) blurField() {
	if ed := v.focused(); ed != nil {
		ed.blur()
		v.lastFocus = v.focus
	}
	v.focus = -1
}

// updateFocused forwards msg to the focused widget and records any change in
// its value as an edit.
func (v *formView) updateFocused(msg tea.Msg) tea.Cmd {
	ed := v.focused()
	if ed == nil {
		return nil
	}
	cmd := ed.update(msg)
	if val := ed.value(); val != ed.field.Value() {
		_ = v.form.Set(ed.field.Name(), val)
		if ed.field.Value() != val {
			ed.setValue(ed.field.Value())
		}
	}
	return cmd
}

func (v *formView) togglePassword() {
	ed := v.focused()
	if ed == nil || ed.field.Kind() != form.KindPassword {
		return
	}
	ed.field.TogglePassword()
	if ed.field.PasswordVisible() {
		ed.input.EchoMode = textinput.EchoNormal
	} else {
		ed.input.EchoMode = textinput.EchoPassword
	}
}

func (v *formView) reset() {
	v.form.Reset()
	for _, ed := range v.editors {
		ed.reset()
	}
	v.focus = -1
	v.lastFocus = 0
}

func (a *App) handleFormKey(k tea.KeyMsg, b *Binding) tea.Cmd {
	v := a.formv
	if v.form.Phase() != form.PhaseEditing {
		return nil
	}
	if !v.editing() {
		if b == nil {
			return nil
		}
		switch b.Action {
		case actionFocus:
			return v.focusField(v.lastFocus)
		case actionPrevField:
			return v.focusField(v.lastFocus - 1)
		case actionSubmit:
			return a.submit()
		}
		return nil
	}

	ed := v.focused()
	if ed.multiline() {
		switch k.String() {
		case "up", "down", "enter":
			return v.updateFocused(k)
		}
	}
	if b == nil {
		if k.String() == "enter" {
			return v.focusField(v.focus + 1)
		}
		return v.updateFocused(k)
	}
	switch b.Action {
	case actionNextField:
		return v.focusField(v.focus + 1)
	case actionPrevField:
		return v.focusField(v.focus - 1)
	case actionTogglePass:
		v.togglePassword()
	case actionSubmit:
		return a.submit()
	case actionBlur:
		v.blurField()
	}
	return nil
}

// submit starts the simulated submission when every field is valid.
func (a *App) submit() tea.Cmd {
	v := a.formv
	err := v.form.BeginSubmit()
	if errors.Is(err, form.ErrInvalid) {
		n := 0
		for _, fld := range v.form.Fields() {
			if !fld.Valid() {
				n++
			}
		}
		if n == 1 {
			a.status = "1 field needs attention"
		} else {
			a.status = fmt.Sprintf("%d fields need attention", n)
		}
		a.log.Debug("submit refused", "invalid_fields", n)
		return nil
	}
	if err != nil {
		return nil
	}
	v.blurField()
	a.status = "Submitting..."
	a.log.Debug("submit started", "delay", a.cfg.Form.SubmitDelay)
	return tea.Tick(a.cfg.Form.SubmitDelay, func(time.Time) tea.Msg {
		return submitDoneMsg{reference: uuid.NewString()}
	})
}

func (a *App) completeSubmit(reference string) tea.Cmd {
	if err := a.formv.form.CompleteSubmit(reference); err != nil {
		return nil
	}
	values := a.formv.form.Values()
	a.log.Info("registration submitted",
		"reference", reference,
		"email", values[form.FieldEmail],
		"name", strings.TrimSpace(values[form.FieldFirstName]+" "+values[form.FieldLastName]))
	a.status = "Form submitted successfully"
	return tea.Tick(a.cfg.Form.ResetDelay, func(time.Time) tea.Msg {
		return formResetMsg{}
	})
}

func (a *App) resetForm() tea.Cmd {
	if a.formv.form.Phase() != form.PhaseSubmitted {
		return nil
	}
	a.formv.reset()
	a.status = ""
	if a.active != componentForm {
		return nil
	}
	return a.formv.focusField(0)
}

func (a *App) renderForm() string {
	v := a.formv
	var b strings.Builder
	b.WriteString(titleStyle.Render("User Registration Form") + "\n")
	b.WriteString(descStyle.Render("Experience our advanced input field component with real-time validation") + "\n\n")

	if v.form.Phase() == form.PhaseSubmitted {
		banner := successStyle.Render("✓ Form Submitted Successfully!") + "\n" +
			"Thank you for testing our input field component.\n" +
			mutedStyle.Render("Reference: "+v.form.Reference())
		b.WriteString(successBannerStyle.Render(banner))
		return b.String()
	}

	for i, ed := range v.editors {
		b.WriteString(renderField(ed, i == v.focus))
		b.WriteString("\n")
	}
	if v.form.Phase() == form.PhaseSubmitting {
		b.WriteString(warningStyle.Render("Submitting..."))
	} else {
		b.WriteString(helpKeyStyle.Render("ctrl+s") + " " + helpDescStyle.Render("Submit Registration"))
	}
	return b.String()
}

func renderField(ed *editor, focused bool) string {
	f := ed.field
	marker := "  "
	if focused {
		marker = cursorStyle.Render("› ")
	}
	label := labelStyle.Render(f.Label())
	if f.IsRequired() {
		label += requiredStyle.Render(" *")
	}
	switch f.Status() {
	case form.StatusSuccess:
		label += " " + successStyle.Render("✓")
	case form.StatusError:
		label += " " + errorStyle.Render("✗")
	}
	if c := f.Counter(); c != "" {
		label += "  " + counterStyle.Render(c)
	}
	if f.Kind() == form.KindPassword {
		toggle := "show"
		if f.PasswordVisible() {
			toggle = "hide"
		}
		label += "  " + mutedStyle.Render("ctrl+p "+toggle)
	}

	lines := []string{marker + label}
	for _, l := range strings.Split(ed.view(), "\n") {
		lines = append(lines, "  "+l)
	}
	switch {
	case f.ShowErrors():
		for _, msg := range f.Errors() {
			lines = append(lines, "  "+errorStyle.Render("• "+msg))
		}
	case f.ShowSuccess():
		lines = append(lines, "  "+successStyle.Render("✓ Looks good!"))
	}
	if f.ShowHelper() {
		lines = append(lines, "  "+helperStyle.Render(f.HelperText()))
	}
	if f.Kind() == form.KindEmail {
		if s, ok := form.SuggestEmail(f.Value()); ok {
			lines = append(lines, "  "+hintStyle.Render("Did you mean "+s+"?"))
		}
	}
	return strings.Join(lines, "\n")
}
