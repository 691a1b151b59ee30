package queue

// node is a single cell of the singly linked list backing a queue.
type node[T any] struct {
	value T
	next  *node[T]
}

// link appends a node holding v after tail and returns it as the new tail.
// The caller must hold the enqueue lock.
func link[T any](tail *node[T], v T) *node[T] {
	n := &node[T]{value: v}
	tail.next = n
	return n
}

// unlink removes the first item after the sentinel head and returns it along
// with the new sentinel. The caller must hold the dequeue lock and know that
// head.next is non-nil.
func unlink[T any](head *node[T]) (T, *node[T]) {
	var zero T

	first := head.next
	v := first.value
	first.value = zero // the new sentinel must not pin a delivered item
	head.next = nil

	return v, first
}
