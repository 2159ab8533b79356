package queue

import "errors"

// Sentinel errors for bounded queue operations.
var (
	// ErrBadCapacity indicates a non-positive capacity was requested.
	ErrBadCapacity = errors.New("queue: capacity must be positive")

	// ErrFull indicates an enqueue on a queue already holding capacity items.
	ErrFull = errors.New("queue: queue is full")

	// ErrEmpty indicates a dequeue on a queue holding no items.
	ErrEmpty = errors.New("queue: queue is empty")
)

// None is the sentinel returned by Dequeue on an empty queue.
// Vertex indices are non-negative, so None never collides with a valid item.
const None = -1

// Queue is a fixed-capacity FIFO of vertex indices.
//
// front == -1 signals an empty queue; when non-empty, front <= rear and
// the held items occupy items[front..rear].
type Queue struct {
	items []int
	front int
	rear  int
}

// New allocates a queue able to hold up to capacity items.
// Returns ErrBadCapacity if capacity is not positive.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Queue{
		items: make([]int, capacity),
		front: None,
		rear:  None,
	}, nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue) IsEmpty() bool {
	return q.front == None || q.front > q.rear
}

// IsFull reports whether the queue holds capacity items.
func (q *Queue) IsFull() bool {
	return q.rear == len(q.items)-1
}

// Len returns the number of items currently held.
func (q *Queue) Len() int {
	if q.IsEmpty() {
		return 0
	}

	return q.rear - q.front + 1
}

// Cap returns the fixed capacity chosen at creation.
func (q *Queue) Cap() int {
	return len(q.items)
}

// Enqueue appends item at the rear.
// Returns ErrFull and leaves the queue unchanged if no room remains.
func (q *Queue) Enqueue(item int) error {
	if q.IsFull() {
		return ErrFull
	}

	if q.front == None {
		q.front = 0
	}
	q.rear++
	q.items[q.rear] = item

	return nil
}

// Dequeue removes and returns the front item.
// Returns (None, ErrEmpty) if the queue holds no items.
func (q *Queue) Dequeue() (int, error) {
	if q.IsEmpty() {
		return None, ErrEmpty
	}

	item := q.items[q.front]
	q.front++

	// Reset indices once the queue drains.
	if q.front > q.rear {
		q.front, q.rear = None, None
	}

	return item, nil
}
