package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoFaults(t *testing.T) {
	assert := assert.New(t)
	var root V
	root.Init()

	_ = root.Sub("scenarios").Sub("0")
	root.FailWhen(false, "capacity", "never reported")

	assert.Equal(0, root.Count())
	assert.Equal("", root.Report())
	assert.NoError(root.ToError())
}

func TestFlatValidation(t *testing.T) {
	assert := assert.New(t)
	var root V
	root.Init()

	root.Fail("name", "must not be empty")
	root.FailF("capacity", "must not be negative, got %d", -2)

	assert.Equal(2, root.Count())
	assert.Equal(
		`name: must not be empty
capacity: must not be negative, got -2
`,
		root.Report(),
	)
}

func TestNestedValidation(t *testing.T) {
	assert := assert.New(t)
	var root V
	root.Init()

	scenarios := root.Sub("scenarios")
	first := scenarios.IndexedSub(0)
	firstSteps := first.Sub("steps")
	second := scenarios.IndexedSub(1)
	_ = scenarios.Sub("empty")
	_ = firstSteps.Sub("empty")

	firstSteps.IndexFailF(2, "op %s is not valid for a %s", "enqueue", "stack")
	root.Fail("scenarios", "names must be unique")
	first.Fail("capacity", "must not be negative")
	second.FailFWhen(true, "container", "unknown kind %q", "deque")
	// Same section is returned for the same name
	scenarios.Sub("1").Fail("steps", "at least one step must be specified")

	assert.Equal(5, root.Count())
	assert.Equal(
		`scenarios: names must be unique
scenarios:
  0:
    capacity: must not be negative
    steps:
      2: op enqueue is not valid for a stack
  1:
    container: unknown kind "deque"
    steps: at least one step must be specified
`,
		root.Report(),
	)
}

func TestToError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	var root V
	root.Init()

	root.Sub("scenarios").Fail("0", "broken")

	err := root.ToError()
	require.Error(err)

	var validationErr *ValidationError
	require.True(errors.As(err, &validationErr))
	assert.Equal(1, validationErr.Count())
	assert.Equal("scenarios:\n  0: broken\n", validationErr.Report())
	assert.Equal(
		"validation failed with 1 fault(s):\nscenarios:\n  0: broken\n",
		err.Error(),
	)
}

func TestDeepTreeReport(t *testing.T) {
	assert := assert.New(t)
	var root V
	root.Init()

	v := &root
	for range 100 {
		v = v.Sub("x")
	}
	v.Fail("leaf", "deep")

	report := root.Report()
	assert.Contains(report, "leaf: deep\n")
	assert.Equal(1, root.Count())
}
