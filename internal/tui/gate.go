package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-event-gate/internal/app"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/service"
	"github.com/MKhiriev/go-event-gate/internal/validators"
	"github.com/MKhiriev/go-event-gate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldDesignation
	fieldLocation
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldEmail:       "Company email",
	fieldCompany:     "Company",
	fieldDesignation: "Designation",
	fieldLocation:    "Location",
}

// GateModel is the Bubble Tea model for the registration form. It renders five
// text inputs, validates the email on every keystroke and dispatches the
// registration pipeline as an async command.
//
// On success the form is cleared, a success toast is shown and the root is
// asked to navigate to the unlocked page, which then downloads the companion
// document. On failure the fields are kept and an error toast is shown.
type GateModel struct {
	ctx    context.Context
	svc    service.ClientRegistrationService
	logger *logger.Logger

	inputs [fieldCount]textinput.Model
	focus  int

	email        validators.EmailValidation
	emailTouched bool
	errMsg       string
	alert        *alertOverlayModel

	submitting bool
	submitted  bool
}

// NewGateModel creates a [GateModel] with five empty inputs; the name field
// receives focus immediately.
func NewGateModel(ctx context.Context, svc service.ClientRegistrationService, log *logger.Logger) *GateModel {
	m := &GateModel{
		ctx:    ctx,
		svc:    svc,
		logger: log,
		email:  validators.ValidateEmail(""),
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = strings.ToLower(fieldLabels[i])
		in.CharLimit = 128
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldEmail].Placeholder = "you@company.com"
	m.inputs[fieldName].Focus()

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *GateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerResultMsg: clears the busy state, then toasts and unlocks on
//     success or toasts the failure and keeps the fields.
//   - loggedOutMsg: the device was forgotten, the form may be submitted again.
//   - tab / down, shift+tab / up: move focus between inputs.
//   - enter: submits the form.
//
// While the alert overlay is shown only enter and esc are handled; they close it.
// All other key events are forwarded to the focused input widget.
func (m *GateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		return m, m.handleRegisterResult(msg)
	case loggedOutMsg:
		m.submitted = false
		m.submitting = false
		return m, tea.Batch(m.focusField(fieldName), successToast(app.MsgLoggedOut))
	case tea.KeyMsg:
		if m.alert != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.alert = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab, keys.down):
			return m, m.focusField((m.focus + 1) % fieldCount)
		case key.Matches(msg, keys.backtab, keys.up):
			return m, m.focusField((m.focus - 1 + fieldCount) % fieldCount)
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	prev := m.inputs[fieldEmail].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldEmail && m.inputs[fieldEmail].Value() != prev {
		m.onEmailChange(m.inputs[fieldEmail].Value())
	}
	return m, cmd
}

// View implements [tea.Model]. Renders the form as a two-column table, the
// inline email message, the submit button with its busy label and the alert
// overlay when one is open.
func (m *GateModel) View() string {
	var b strings.Builder
	b.WriteString("Register to read the book.\n\n")
	b.WriteString("Field          │ Value\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(padLabel(fieldLabels[i], 15))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
		if i == fieldEmail && m.emailTouched && !m.email.Valid {
			b.WriteString(padLabel("", 15))
			b.WriteString("│ ")
			b.WriteString(errorStyle.Render(m.email.Message))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[" + app.MsgSubmitting + "]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	page := renderPage("EVENT REGISTRATION", strings.TrimRight(b.String(), "\n"), "tab: next field │ shift+tab: previous field │ enter: submit")
	if m.alert != nil {
		return page + "\n\n" + m.alert.View()
	}
	return page
}

// Record returns the trimmed form values.
func (m *GateModel) Record() models.RegistrationRecord {
	return models.RegistrationRecord{
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:       strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Company:     strings.TrimSpace(m.inputs[fieldCompany].Value()),
		Designation: strings.TrimSpace(m.inputs[fieldDesignation].Value()),
		Location:    strings.TrimSpace(m.inputs[fieldLocation].Value()),
	}
}

// onEmailChange validates the email the way it will be submitted, so
// surrounding blanks never flip the inline message.
func (m *GateModel) onEmailChange(value string) {
	m.emailTouched = true
	m.email = validators.ValidateEmail(strings.TrimSpace(value))
}

// submit runs the synchronous checks and returns the registration command.
// It returns nil while a submission is in flight.
func (m *GateModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true

	record := m.Record()
	if !record.IsComplete() {
		m.errMsg = app.MsgAllFieldsRequired
		m.submitting = false
		return nil
	}

	m.email = validators.ValidateEmail(record.Email)
	if !m.email.Valid {
		m.emailTouched = true
		m.errMsg = ""
		m.alert = &alertOverlayModel{message: app.MsgFixErrorBeforeSubmitting}
		m.submitting = false
		return nil
	}

	m.errMsg = ""
	return m.cmdRegister(record)
}

func (m *GateModel) cmdRegister(record models.RegistrationRecord) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		return registerResultMsg{err: svc.Register(ctx, record)}
	}
}

func (m *GateModel) handleRegisterResult(msg registerResultMsg) tea.Cmd {
	m.submitting = false

	if msg.err != nil {
		m.logger.Err(msg.err).Str("func", "GateModel.handleRegisterResult").Msg("registration failed")
		return errorToast(app.MsgRegistrationFailed)
	}

	m.submitted = true
	m.resetForm()
	return tea.Batch(
		successToast(app.MsgRegistrationSubmitted),
		func() tea.Msg {
			return NavigateTo{Page: pageUnlocked, Payload: downloadRequestMsg{}}
		},
	)
}

func (m *GateModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.email = validators.ValidateEmail("")
	m.emailTouched = false
	m.errMsg = ""
	m.focus = fieldName
	m.inputs[m.focus].Focus()
}

func (m *GateModel) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
