package scenario

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepovirta.org/boundq/internal/envvar"
	"go.lepovirta.org/boundq/internal/matcher"
	"go.lepovirta.org/boundq/internal/validation"
)

const goodScenariosJson = `
{
  "scenarios": [
    {
      "name": "small-stack",
      "container": "stack",
      "capacity": ${STACK_CAPACITY},
      "steps": [
        { "op": "push", "value": 10 },
        { "op": "push", "value": 11 },
        { "op": "push", "value": 12, "fails": true },
        { "op": "pop", "want": 11 },
        { "op": "pop" },
        { "op": "pop", "fails": true }
      ]
    },
    {
      "name": "small-queue",
      "container": "FIFO",
      "capacity": 1,
      "steps": [
        { "op": "Enqueue", "value": -5 },
        { "op": "dequeue", "want": -5 }
      ]
    }
  ]
}
`

func want(i int) *int {
	return &i
}

var goodScenarios = File{
	Scenarios: []Scenario{
		{
			Name:      "small-stack",
			Container: KindStack,
			Capacity:  2,
			Steps: []Step{
				{Op: OpPush, Value: 10},
				{Op: OpPush, Value: 11},
				{Op: OpPush, Value: 12, Fails: true},
				{Op: OpPop, Want: want(11)},
				{Op: OpPop},
				{Op: OpPop, Fails: true},
			},
		},
		{
			Name:      "small-queue",
			Container: KindQueue,
			Capacity:  1,
			Steps: []Step{
				{Op: OpEnqueue, Value: -5},
				{Op: OpDequeue, Want: want(-5)},
			},
		},
	},
}

func testEnvVars() envvar.Vars {
	var vars envvar.Vars
	vars.FromMap(map[string]string{"STACK_CAPACITY": "2"})
	return vars
}

func TestParse(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var file File
	require.NoError(file.Parse(testEnvVars(), strings.NewReader(goodScenariosJson)))
	assert.Equal(goodScenarios, file)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		json string
		err  string
	}{
		{"not json", `scenarios`, "failed to parse scenarios"},
		{"unknown field", `{"scenarios": [], "extra": 1}`, `unknown field "extra"`},
		{"unknown kind", `{"scenarios": [{"container": "deque"}]}`, "unknown container kind 'deque'"},
		{"unknown op", `{"scenarios": [{"steps": [{"op": "peek"}]}]}`, "unknown operation 'peek'"},
		{"trailing data", `{"scenarios": []} {}`, "unexpected data after the scenario document"},
		{"empty", `{"scenarios": []}`, "at least one scenario must be specified"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var file File
			err := file.Parse(testEnvVars(), strings.NewReader(tc.json))
			assert.ErrorContains(t, err, tc.err)
			assert.Empty(t, file.Scenarios)
		})
	}
}

func TestParseValidationReport(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	input := `
{
  "scenarios": [
    {
      "name": "dup",
      "container": "stack",
      "capacity": -1,
      "steps": [
        { "op": "enqueue", "value": 1 },
        { "op": "push", "value": 1, "want": 1 },
        { "op": "pop", "value": 3, "fails": true, "want": 2 }
      ]
    },
    {
      "name": "dup",
      "container": "queue",
      "steps": []
    },
    {
      "steps": [ {} ]
    }
  ]
}
`

	var file File
	err := file.Parse(testEnvVars(), strings.NewReader(input))
	require.Error(err)

	var validationErr *validation.ValidationError
	require.ErrorAs(err, &validationErr)
	assert.Equal(10, validationErr.Count())
	assert.Equal(
		`scenarios:
  0:
    capacity: capacity must not be negative, got -1
    steps:
      0:
        op: operation enqueue cannot be used with a stack
      1:
        want: operation push does not return a value
      2:
        want: a failing operation does not return a value
        value: operation pop does not take a value
  1:
    steps: at least one step must be specified
    name: name dup is already used by scenario 0
  2:
    name: name must not be empty
    container: container must be either stack or queue
    steps:
      0:
        op: operation must be specified
`,
		validationErr.Report(),
	)
}

func TestBuiltinIsValid(t *testing.T) {
	assert := assert.New(t)

	builtin := Builtin()
	assert.NoError(builtin.Validate())
	assert.Len(builtin.Scenarios, 5)

	names := make([]string, 0, len(builtin.Scenarios))
	for _, s := range builtin.Scenarios {
		names = append(names, s.Name)
	}
	assert.Equal(
		[]string{
			"stack-end-to-end",
			"queue-end-to-end",
			"queue-wraparound",
			"stack-zero-capacity",
			"queue-zero-capacity",
		},
		names,
	)
}

func TestBuiltinRoundTrip(t *testing.T) {
	require := require.New(t)

	builtin := Builtin()
	data, err := json.Marshal(&builtin)
	require.NoError(err)

	var parsed File
	require.NoError(parsed.Parse(envvar.Vars{}, strings.NewReader(string(data))))
	require.Equal(builtin, parsed)
}

func TestSelect(t *testing.T) {
	assert := assert.New(t)

	builtin := Builtin()

	all := builtin.Select(matcher.M{})
	assert.Len(all, len(builtin.Scenarios))

	queues := builtin.Select(must(matcher.FromString("/^queue-/")))
	assert.Len(queues, 3)
	for _, s := range queues {
		assert.Equal(KindQueue, s.Container)
	}

	exact := builtin.Select(must(matcher.FromString("queue-wraparound")))
	assert.Len(exact, 1)

	none := builtin.Select(must(matcher.FromString("deque")))
	assert.Empty(none)
}

func must(m matcher.M, err error) matcher.M {
	if err != nil {
		panic(err)
	}
	return m
}

func TestStepString(t *testing.T) {
	assert := assert.New(t)

	steps := []Step{
		insert(OpPush, 3),
		rejected(OpEnqueue, 8),
		remove(OpPop, 7),
		empty(OpDequeue),
		{Op: OpPop},
	}
	strs := make([]string, 0, len(steps))
	for i := range steps {
		strs = append(strs, steps[i].String())
	}

	assert.Equal(
		[]string{"push 3", "enqueue 8 -> fails", "pop -> 7", "dequeue -> fails", "pop"},
		strs,
	)
}

func TestKindAndOpJson(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	data, err := json.Marshal([]Kind{KindUndefined, KindStack, KindQueue})
	require.NoError(err)
	assert.Equal(`[null,"stack","queue"]`, string(data))

	data, err = json.Marshal([]Op{OpUndefined, OpPush, OpPop, OpEnqueue, OpDequeue})
	require.NoError(err)
	assert.Equal(`[null,"push","pop","enqueue","dequeue"]`, string(data))

	var kinds []Kind
	require.NoError(json.Unmarshal([]byte(`["LIFO", " queue ", null]`), &kinds))
	assert.Equal([]Kind{KindStack, KindQueue, KindUndefined}, kinds)

	_, err = json.Marshal(Kind(42))
	assert.Error(err)
	_, err = json.Marshal(Op(42))
	assert.Error(err)
	assert.Error(json.Unmarshal([]byte(`3`), new(Op)))

	assert.Equal(KindStack, OpPop.Kind())
	assert.Equal(KindQueue, OpEnqueue.Kind())
	assert.Equal(KindUndefined, OpUndefined.Kind())
	assert.True(OpEnqueue.IsInsert())
	assert.False(OpDequeue.IsInsert())
}
