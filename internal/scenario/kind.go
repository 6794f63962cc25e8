package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind specifies which container a scenario runs against.
type Kind int

const (
	// KindUndefined means that no container was specified.
	KindUndefined Kind = iota

	// KindStack is the bounded LIFO container.
	KindStack

	// KindQueue is the bounded FIFO container.
	KindQueue
)

func (this Kind) String() string {
	switch this {
	case KindUndefined:
		return "undefined"
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	default:
		return fmt.Sprintf("Kind(%d)", int(this))
	}
}

func (this Kind) MarshalJSON() ([]byte, error) {
	switch this {
	case KindUndefined:
		return json.Marshal(nil)
	case KindStack, KindQueue:
		return json.Marshal(this.String())
	default:
		return nil, fmt.Errorf("unknown container kind '%s'", this)
	}
}

func (this *Kind) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*this = KindUndefined
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(*s)) {
	case "stack", "lifo":
		*this = KindStack
	case "queue", "fifo":
		*this = KindQueue
	default:
		return fmt.Errorf("unknown container kind '%s'", *s)
	}
	return nil
}

// Op is a single container operation.
type Op int

const (
	// OpUndefined means that no operation was specified.
	OpUndefined Op = iota

	// OpPush adds a value on top of a stack.
	OpPush

	// OpPop removes the top value of a stack.
	OpPop

	// OpEnqueue adds a value to the back of a queue.
	OpEnqueue

	// OpDequeue removes the front value of a queue.
	OpDequeue
)

var opNames = map[Op]string{
	OpPush:    "push",
	OpPop:     "pop",
	OpEnqueue: "enqueue",
	OpDequeue: "dequeue",
}

func (this Op) String() string {
	if this == OpUndefined {
		return "undefined"
	}
	if name, ok := opNames[this]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(this))
}

// Kind returns the container the operation applies to.
func (this Op) Kind() Kind {
	switch this {
	case OpPush, OpPop:
		return KindStack
	case OpEnqueue, OpDequeue:
		return KindQueue
	default:
		return KindUndefined
	}
}

// IsInsert reports whether the operation takes an input value.
func (this Op) IsInsert() bool {
	return this == OpPush || this == OpEnqueue
}

func (this Op) MarshalJSON() ([]byte, error) {
	if this == OpUndefined {
		return json.Marshal(nil)
	}
	name, ok := opNames[this]
	if !ok {
		return nil, fmt.Errorf("unknown operation '%s'", this)
	}
	return json.Marshal(name)
}

func (this *Op) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*this = OpUndefined
		return nil
	}
	name := strings.ToLower(strings.TrimSpace(*s))
	for op, opName := range opNames {
		if opName == name {
			*this = op
			return nil
		}
	}
	return fmt.Errorf("unknown operation '%s'", *s)
}
