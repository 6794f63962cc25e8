package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.lepovirta.org/boundq/internal/envsubst"
	"go.lepovirta.org/boundq/internal/envvar"
	"go.lepovirta.org/boundq/internal/matcher"
	"go.lepovirta.org/boundq/internal/validation"
)

// File is a collection of scenarios, usually read from a JSON file.
type File struct {
	// Scenarios are run in the order they are listed.
	Scenarios []Scenario `json:"scenarios"`
}

// Scenario is a scripted sequence of operations against a single,
// freshly constructed container.
type Scenario struct {
	// Name identifies the scenario in reports. Must be unique within a file.
	Name string `json:"name"`

	// Container specifies which container to construct.
	Container Kind `json:"container"`

	// Capacity is the fixed capacity of the container.
	// Zero capacity gives a container that is always full and always empty.
	Capacity int `json:"capacity"`

	// Steps are executed in order.
	Steps []Step `json:"steps"`
}

// Step is one operation and its expected outcome.
type Step struct {
	// Op is the operation to run.
	Op Op `json:"op"`

	// Value is the input for push and enqueue operations.
	Value int `json:"value,omitempty"`

	// Want is the value pop or dequeue is expected to return.
	// When nil, any value is accepted.
	Want *int `json:"want,omitempty"`

	// When Fails is set to `true`, the operation is expected to be
	// rejected because the container is full or empty.
	Fails bool `json:"fails,omitempty"`
}

func (this *Step) String() string {
	s := this.Op.String()
	if this.Op.IsInsert() {
		s += " " + strconv.Itoa(this.Value)
	}
	switch {
	case this.Fails:
		s += " -> fails"
	case this.Want != nil:
		s += " -> " + strconv.Itoa(*this.Want)
	}
	return s
}

// Select returns the scenarios whose name matches m.
func (this *File) Select(m matcher.M) []Scenario {
	selected := make([]Scenario, 0, len(this.Scenarios))
	for _, s := range this.Scenarios {
		if m.MatchString(s.Name) {
			selected = append(selected, s)
		}
	}
	return selected
}

/////////////////////////////////////////////////
// Validation
/////////////////////////////////////////////////

func (this *File) validate(v *validation.V) {
	v.FailWhen(
		len(this.Scenarios) == 0,
		"scenarios",
		"at least one scenario must be specified",
	)

	seen := make(map[string]int, len(this.Scenarios))
	scenariosV := v.Sub("scenarios")
	for i := range this.Scenarios {
		s := &this.Scenarios[i]
		scenarioV := scenariosV.IndexedSub(i)
		s.validate(scenarioV)

		if first, ok := seen[s.Name]; ok && s.Name != "" {
			scenarioV.FailF("name", "name %s is already used by scenario %d", s.Name, first)
		} else {
			seen[s.Name] = i
		}
	}
}

func (this *Scenario) validate(v *validation.V) {
	v.FailWhen(this.Name == "", "name", "name must not be empty")
	v.FailWhen(
		this.Container == KindUndefined,
		"container",
		"container must be either stack or queue",
	)
	v.FailFWhen(
		this.Capacity < 0,
		"capacity",
		"capacity must not be negative, got %d",
		this.Capacity,
	)
	v.FailWhen(len(this.Steps) == 0, "steps", "at least one step must be specified")

	stepsV := v.Sub("steps")
	for i := range this.Steps {
		this.Steps[i].validate(stepsV.IndexedSub(i), this.Container)
	}
}

func (this *Step) validate(v *validation.V, kind Kind) {
	if this.Op == OpUndefined {
		v.Fail("op", "operation must be specified")
		return
	}
	v.FailFWhen(
		kind != KindUndefined && this.Op.Kind() != kind,
		"op",
		"operation %s cannot be used with a %s",
		this.Op, kind,
	)
	v.FailFWhen(
		this.Op.IsInsert() && this.Want != nil,
		"want",
		"operation %s does not return a value",
		this.Op,
	)
	v.FailWhen(
		this.Fails && this.Want != nil,
		"want",
		"a failing operation does not return a value",
	)
	v.FailFWhen(
		!this.Op.IsInsert() && this.Value != 0,
		"value",
		"operation %s does not take a value",
		this.Op,
	)
}

/////////////////////////////////////////////////
// Parsing
/////////////////////////////////////////////////

// Parse reads a scenario file in JSON format from r. Environment
// variable references like ${NAME} are substituted before decoding.
func (this *File) Parse(envVars envvar.Vars, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read scenarios: %w", err)
	}

	text, err := envsubst.Replace(string(raw), envVars.ToMap())
	if err != nil {
		log.Warn().Err(err).Msg("environment variable substitution failed")
	}

	var temp File
	if err := decodeStrict(text, &temp); err != nil {
		return fmt.Errorf("failed to parse scenarios: %w", err)
	}

	if err := temp.Validate(); err != nil {
		return err
	}

	*this = temp
	return nil
}

// Validate checks scenarios that were not read through Parse.
func (this *File) Validate() error {
	var v validation.V
	v.Init()
	this.validate(&v)
	return v.ToError()
}

func decodeStrict(text string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected data after the scenario document")
	}
	return nil
}
