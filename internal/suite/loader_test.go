package suite

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
version: "1.0"
cases:
  - id: c1
    expression: "1 + 2"
    value: 3
  - id: c2
    expression: "1 +"
    valid: false
    error: trailing_operator
`
		loaded, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", loaded.Suite.Name)
		require.Len(t, loaded.Suite.Cases, 2)
		assert.Equal(t, 3.0, *loaded.Suite.Cases[0].Value)
		assert.True(t, loaded.Suite.Cases[0].WantValid())
		assert.False(t, loaded.Suite.Cases[1].WantValid())
	})

	t.Run("non-finite values", func(t *testing.T) {
		yaml := `
name: test
cases:
  - id: inf
    expression: "1/0"
    value: .inf
  - id: nan
    expression: "0/0"
    value: .nan
`
		loaded, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.True(t, math.IsInf(*loaded.Suite.Cases[0].Value, 1))
		assert.True(t, math.IsNaN(*loaded.Suite.Cases[1].Value))
	})

	t.Run("templated case is rendered", func(t *testing.T) {
		yaml := `
name: test
templates:
  - id: sum
    expression: "{{a}} + {{b}}"
cases:
  - id: c1
    template: sum
    params: { a: 1.5, b: x }
`
		loaded, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "1.5 + x", loaded.Suite.Cases[0].Expression)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			yaml string
			want string
		}{
			{name: "no cases", yaml: "name: test\ncases: []\n", want: "no cases"},
			{name: "missing id", yaml: "name: test\ncases:\n  - expression: \"1\"\n", want: "has no id"},
			{name: "duplicate id", yaml: "name: test\ncases:\n  - id: a\n    expression: \"1\"\n  - id: a\n    expression: \"2\"\n", want: "duplicate case id"},
			{name: "value and error", yaml: "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    value: 1\n    error: x\n", want: "both a value and an error"},
			{name: "value on invalid", yaml: "name: test\ncases:\n  - id: a\n    expression: \"1+\"\n    valid: false\n    value: 1\n", want: "invalid expression"},
			{name: "negative tolerance", yaml: "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    tolerance: -1\n", want: "negative tolerance"},
			{name: "unknown template", yaml: "name: test\ncases:\n  - id: a\n    template: nope\n", want: "not found"},
			{name: "missing params", yaml: "name: test\ntemplates:\n  - id: t\n    expression: \"{{a}}+{{b}}\"\ncases:\n  - id: a\n    template: t\n    params: { a: 1 }\n", want: "missing params"},
			{name: "expression and template", yaml: "name: test\ntemplates:\n  - id: t\n    expression: \"1\"\ncases:\n  - id: a\n    expression: \"1\"\n    template: t\n", want: "both expression and template"},
			{name: "malformed yaml", yaml: "name: [", want: "parse suite YAML"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse([]byte(tt.yaml))
				assert.ErrorContains(t, err, tt.want)
			})
		}
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("testdata suite", func(t *testing.T) {
		loaded, err := LoadFromFile(filepath.Join("testdata", "basics.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "basics", loaded.Suite.Name)
		assert.Equal(t, "testdata", loaded.Dir)
		assert.NotEmpty(t, loaded.Suite.Cases)
	})

	t.Run("written file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: tmp\ncases:\n  - id: a\n    expression: \"1\"\n"), 0644))

		loaded, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, dir, loaded.Dir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read suite file")
	})
}

func TestCase_Matches(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.True(t, (&Case{}).Matches(42))
	assert.True(t, (&Case{Value: f(3)}).Matches(3))
	assert.False(t, (&Case{Value: f(3)}).Matches(3.0001))
	assert.True(t, (&Case{Value: f(3), Tolerance: 0.01}).Matches(3.0001))
	assert.True(t, (&Case{Value: f(math.Inf(1))}).Matches(math.Inf(1)))
	assert.False(t, (&Case{Value: f(math.Inf(1))}).Matches(math.Inf(-1)))
	assert.True(t, (&Case{Value: f(math.NaN())}).Matches(math.NaN()))
	assert.False(t, (&Case{Value: f(math.NaN())}).Matches(0))
}
