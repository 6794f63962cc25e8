package validation

import (
	"fmt"
	"strconv"
	"strings"

	"go.lepovirta.org/boundq/internal/container"
)

// V collects validation faults into a tree of named sections.
// Use Init on the root and Sub to descend into nested sections.
type V struct {
	id     int
	parent int
	name   string
	depth  int
	faults []fault
	subs   []*V
	tree   *tree
}

// tree is shared by all the sections under one root.
// Every section is registered in nodes under its id.
type tree struct {
	nodes      []*V
	faultCount int
}

type fault struct {
	name        string
	description string
}

func (this *V) Init() {
	this.id = 0
	this.parent = -1
	this.depth = 0
	this.faults = nil
	this.subs = nil
	this.tree = &tree{nodes: []*V{this}}
}

///////////////////////////////////
// Adding faults
///////////////////////////////////

func (this *V) Fail(name, description string) {
	this.faults = append(this.faults, fault{
		name:        name,
		description: description,
	})
	this.tree.faultCount += 1
}

func (this *V) FailF(name, descriptionFormat string, a ...any) {
	this.Fail(name, fmt.Sprintf(descriptionFormat, a...))
}

func (this *V) FailWhen(condition bool, name, description string) {
	if condition {
		this.Fail(name, description)
	}
}

func (this *V) FailFWhen(condition bool, name, descriptionFormat string, a ...any) {
	if condition {
		this.FailF(name, descriptionFormat, a...)
	}
}

func (this *V) IndexFailF(index int, descriptionFormat string, a ...any) {
	this.FailF(strconv.Itoa(index), descriptionFormat, a...)
}

///////////////////////////////////
// Sub validator
///////////////////////////////////

// Sub returns the named section under this one, creating it on first use.
func (this *V) Sub(name string) *V {
	for _, sub := range this.subs {
		if sub.name == name {
			return sub
		}
	}

	child := &V{
		id:     len(this.tree.nodes),
		parent: this.id,
		name:   name,
		depth:  this.depth + 1,
		tree:   this.tree,
	}
	this.tree.nodes = append(this.tree.nodes, child)
	this.subs = append(this.subs, child)
	return child
}

func (this *V) IndexedSub(index int) *V {
	return this.Sub(strconv.Itoa(index))
}

///////////////////////////////////
// Report
///////////////////////////////////

func (this *V) Count() int {
	return this.tree.faultCount
}

// Report renders the faults as an indented tree. Sections without any
// faults in them or below them are left out.
func (this *V) Report() string {
	if this.Count() == 0 {
		return ""
	}

	nodes := this.tree.nodes

	// Children always have a higher id than their parent,
	// so walking backwards sums the totals bottom up.
	totals := make([]int, len(nodes))
	for id := len(nodes) - 1; id >= 0; id -= 1 {
		totals[id] += len(nodes[id].faults)
		if parent := nodes[id].parent; parent >= 0 {
			totals[parent] += totals[id]
		}
	}

	var b strings.Builder
	b.Grow(1024)

	var stack container.Stack
	stack.Init(len(nodes))
	stack.Push(this.id)

	for {
		id, hasNext := stack.Pop()
		if !hasNext {
			break
		}
		if totals[id] == 0 {
			continue
		}

		v := nodes[id]
		if v.depth > this.depth {
			indent(&b, v.depth-this.depth-1)
			_, _ = b.WriteString(v.name)
			_, _ = b.WriteString(":\n")
		}
		for _, f := range v.faults {
			indent(&b, v.depth-this.depth)
			_, _ = b.WriteString(f.name)
			_, _ = b.WriteString(": ")
			_, _ = b.WriteString(f.description)
			_ = b.WriteByte('\n')
		}

		// Push in reverse so that sections are reported in creation order
		for i := len(v.subs) - 1; i >= 0; i -= 1 {
			stack.Push(v.subs[i].id)
		}
	}

	return b.String()
}

func indent(b *strings.Builder, n int) {
	for range n * 2 {
		_ = b.WriteByte(' ')
	}
}

///////////////////////////////////
// Errors
///////////////////////////////////

func (this *V) ToError() error {
	if this.Count() <= 0 {
		return nil
	}
	return &ValidationError{
		report: this.Report(),
		count:  this.Count(),
	}
}

type ValidationError struct {
	report string
	count  int
}

func (this *ValidationError) Report() string {
	return this.report
}

func (this *ValidationError) Count() int {
	return this.count
}

func (this *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d fault(s):\n%s", this.count, this.report)
}
