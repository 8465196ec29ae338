package suite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TestdataSuitePasses(t *testing.T) {
	loaded, err := LoadFromFile(filepath.Join("testdata", "basics.yaml"))
	require.NoError(t, err)

	r, err := Run(context.Background(), loaded, eval.NewDefaultCalculator(eval.Options{}))
	require.NoError(t, err)

	for _, c := range r.Failures() {
		t.Errorf("case %s failed: %s", c.ID, c.Message)
	}
	assert.True(t, r.OK())
	assert.Equal(t, len(loaded.Suite.Cases), r.Summary.Total)
	assert.Equal(t, "basics", r.Suite.Name)
}

func TestRun_ReportsFailures(t *testing.T) {
	yaml := `
name: failing
cases:
  - id: wrong_value
    expression: "1 + 1"
    value: 3
  - id: wrong_validity
    expression: "1 +"
  - id: missing_error
    expression: "1"
    error: unknown_variable
  - id: wrong_error
    expression: "q"
    error: stack_underflow
  - id: unexpected_error
    expression: "q"
`
	loaded, err := Parse([]byte(yaml))
	require.NoError(t, err)

	r, err := Run(context.Background(), loaded, eval.NewDefaultCalculator(eval.Options{}))
	require.NoError(t, err)

	assert.Equal(t, 5, r.Summary.Failed)
	messages := map[string]string{}
	for _, c := range r.Cases {
		messages[c.ID] = c.Message
	}
	assert.Contains(t, messages["wrong_value"], "expected 3, got 2")
	assert.Contains(t, messages["wrong_validity"], "expected valid=true")
	assert.Contains(t, messages["missing_error"], "got none")
	assert.Contains(t, messages["wrong_error"], `expected error "stack_underflow"`)
	assert.Contains(t, messages["unexpected_error"], "unexpected error")
}

func TestRun_WantAndGot(t *testing.T) {
	yaml := `
name: columns
cases:
  - id: value
    expression: "2 * 3"
    value: 6
  - id: reason
    expression: "*1"
    valid: false
    error: leading_operator
  - id: invalid
    expression: ""
    valid: false
`
	loaded, err := Parse([]byte(yaml))
	require.NoError(t, err)

	r, err := Run(context.Background(), loaded, eval.NewDefaultCalculator(eval.Options{}))
	require.NoError(t, err)
	require.True(t, r.OK())

	assert.Equal(t, "6", r.Cases[0].Want)
	assert.Equal(t, "6", r.Cases[0].Got)
	assert.Equal(t, "leading_operator", r.Cases[1].Want)
	assert.Equal(t, "leading_operator", r.Cases[1].Got)
	assert.Equal(t, "invalid", r.Cases[2].Want)
	assert.Equal(t, "empty_expression", r.Cases[2].Got)
}

func TestRun_WithStorer(t *testing.T) {
	loaded, err := LoadFromFile(filepath.Join("testdata", "basics.yaml"))
	require.NoError(t, err)

	store := in_mem.NewStore()
	_, err = Run(context.Background(), loaded, eval.NewDefaultCalculator(eval.Options{}), WithStorer(store))
	require.NoError(t, err)

	page, err := store.List(context.Background(), pagination.OffsetRequest{Page: 1, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(len(loaded.Suite.Cases)), page.Total)
	for _, ev := range page.Items {
		assert.Equal(t, Source("basics"), ev.Source)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	loaded, err := LoadFromFile(filepath.Join("testdata", "basics.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := Run(ctx, loaded, eval.NewDefaultCalculator(eval.Options{}))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Summary.Total)
}
