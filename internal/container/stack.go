package container

// Stack is a fixed-capacity LIFO container of integers.
// A zero value Stack has no capacity: every push and pop fails.
type Stack struct {
	nextIndex int
	elements  []int
}

func NewStack(capacity int) *Stack {
	var stack Stack
	stack.Init(capacity)
	return &stack
}

// Init allocates a buffer for capacity elements and empties the stack.
// Negative capacity is treated as zero.
func (this *Stack) Init(capacity int) {
	this.nextIndex = 0
	this.elements = make([]int, max(capacity, 0))
}

// InitWithBuf empties the stack and uses buf as its storage.
// The stack capacity is the length of buf.
func (this *Stack) InitWithBuf(buf []int) {
	this.nextIndex = 0
	this.elements = buf
}

// Push adds i on top of the stack. Returns false when the stack is full.
func (this *Stack) Push(i int) bool {
	if this.nextIndex >= len(this.elements) {
		return false
	}
	this.elements[this.nextIndex] = i
	this.nextIndex += 1
	return true
}

// Pop removes the top element of the stack.
// Returns false and a zero value when the stack is empty.
func (this *Stack) Pop() (int, bool) {
	if this.nextIndex <= 0 {
		return 0, false
	}
	this.nextIndex -= 1
	return this.elements[this.nextIndex], true
}

func (this *Stack) Len() int {
	return this.nextIndex
}

func (this *Stack) Cap() int {
	return len(this.elements)
}
