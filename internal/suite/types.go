package suite

import (
	"fmt"
	"math"
)

type TestSuite struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Version     string                `yaml:"version"`
	Templates   []*ExpressionTemplate `yaml:"templates,omitempty"`
	Cases       []Case                `yaml:"cases"`
}

// Case is one expression with its expected outcome. Valid defaults to true.
// Error, when set, is matched against the error kind or, for rejected
// expressions, the validation reason.
type Case struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description,omitempty"`
	Expression  string         `yaml:"expression"`
	Template    string         `yaml:"template,omitempty"`
	Params      TemplateParams `yaml:"params,omitempty"`
	Valid       *bool          `yaml:"valid,omitempty"`
	Value       *float64       `yaml:"value,omitempty"`
	Error       string         `yaml:"error,omitempty"`
	Tolerance   float64        `yaml:"tolerance,omitempty"`
}

func (c *Case) WantValid() bool {
	return c.Valid == nil || *c.Valid
}

func (c *Case) validate() error {
	if c.Expression != "" && c.Template != "" {
		return fmt.Errorf("case %q sets both expression and template", c.ID)
	}
	if c.Value != nil && c.Error != "" {
		return fmt.Errorf("case %q expects both a value and an error", c.ID)
	}
	if c.Value != nil && !c.WantValid() {
		return fmt.Errorf("case %q expects a value from an invalid expression", c.ID)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("case %q has negative tolerance", c.ID)
	}
	return nil
}

// Matches reports whether got equals the expected value within the case tolerance.
// NaN matches NaN and infinities match by sign.
func (c *Case) Matches(got float64) bool {
	if c.Value == nil {
		return true
	}
	want := *c.Value
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	default:
		return math.Abs(got-want) <= c.Tolerance
	}
}
