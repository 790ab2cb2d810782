package auth

import "github.com/go-authgate/authsync/internal/core"

// Ensure callbacks implement the expected capabilities at compile time
var (
	_ core.Callback    = (*NameCallback)(nil)
	_ core.Callback    = (*PasswordCallback)(nil)
	_ core.Callback    = (*TextInputCallback)(nil)
	_ core.ValueSetter = (*TextInputCallback)(nil)
	_ core.Callback    = (*TextOutputCallback)(nil)
)

// NameCallback asks for the login identifier.
type NameCallback struct {
	PromptText string
	name       string
	set        bool
}

func NewNameCallback(prompt string) *NameCallback {
	return &NameCallback{PromptText: prompt}
}

func (c *NameCallback) Prompt() string { return c.PromptText }

func (c *NameCallback) SetName(name string) {
	c.name = name
	c.set = true
}

// Name returns the supplied name and whether one was supplied.
func (c *NameCallback) Name() (string, bool) { return c.name, c.set }

// PasswordCallback asks for the secret. The secret is kept as bytes so
// backends can wipe it after use.
type PasswordCallback struct {
	PromptText string
	password   []byte
}

func NewPasswordCallback(prompt string) *PasswordCallback {
	return &PasswordCallback{PromptText: prompt}
}

func (c *PasswordCallback) Prompt() string { return c.PromptText }

// SetPassword stores a copy of password.
func (c *PasswordCallback) SetPassword(password []byte) {
	c.password = append([]byte(nil), password...)
}

// Password returns the stored secret, or nil when none was supplied.
func (c *PasswordCallback) Password() []byte { return c.password }

// ClearPassword zeroes and drops the stored secret.
func (c *PasswordCallback) ClearPassword() {
	for i := range c.password {
		c.password[i] = 0
	}
	c.password = nil
}

// TextInputCallback asks for backend specific free-form input.
type TextInputCallback struct {
	PromptText string
	value      string
}

func NewTextInputCallback(prompt string) *TextInputCallback {
	return &TextInputCallback{PromptText: prompt}
}

func (c *TextInputCallback) Prompt() string { return c.PromptText }

func (c *TextInputCallback) SetValue(value string) { c.value = value }

func (c *TextInputCallback) Value() string { return c.value }

// TextOutputCallback carries an informational message from the backend.
// It accepts no input.
type TextOutputCallback struct {
	Message string
}

func (c *TextOutputCallback) Prompt() string { return c.Message }
