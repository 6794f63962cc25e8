package container

// Queue is a fixed-capacity FIFO container of integers backed by a
// circular buffer. A zero value Queue has no capacity: every enqueue
// and dequeue fails.
type Queue struct {
	head     int // index of the oldest element
	tail     int // index where the next element is written
	count    int
	elements []int
}

func NewQueue(capacity int) *Queue {
	var queue Queue
	queue.Init(capacity)
	return &queue
}

// Init allocates a buffer for capacity elements and empties the queue.
// Negative capacity is treated as zero.
func (this *Queue) Init(capacity int) {
	this.InitWithBuf(make([]int, max(capacity, 0)))
}

// InitWithBuf empties the queue and uses buf as its storage.
// The queue capacity is the length of buf.
func (this *Queue) InitWithBuf(buf []int) {
	this.head = 0
	this.tail = 0
	this.count = 0
	this.elements = buf
}

// Enqueue adds i to the back of the queue. Returns false when the queue is full.
func (this *Queue) Enqueue(i int) bool {
	if this.count >= len(this.elements) {
		return false
	}
	this.elements[this.tail] = i
	this.tail = this.next(this.tail)
	this.count += 1
	return true
}

// Dequeue removes the element at the front of the queue.
// Returns false and a zero value when the queue is empty.
func (this *Queue) Dequeue() (int, bool) {
	if this.count <= 0 {
		return 0, false
	}
	i := this.elements[this.head]
	this.head = this.next(this.head)
	this.count -= 1
	return i, true
}

func (this *Queue) Len() int {
	return this.count
}

func (this *Queue) Cap() int {
	return len(this.elements)
}

// next returns the index following index, wrapping at the end of the buffer.
// Only called with a non-empty buffer.
func (this *Queue) next(index int) int {
	index += 1
	if index >= len(this.elements) {
		return 0
	}
	return index
}
