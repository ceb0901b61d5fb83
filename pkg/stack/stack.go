package stack

// Stack is a last-in first-out list.  The zero value is an empty stack.
type Stack[T any] []T

func New[T any](n int) Stack[T] {
	return make(Stack[T], 0, n)
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s *Stack[T]) Push(x T) {
	*s = append(*s, x)
}

// Pop removes and returns the top of the stack.  The boolean is false if the
// stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	var x T
	if len(*s) == 0 {
		return x, false
	}
	n := len(*s) - 1
	x, (*s)[n] = (*s)[n], x
	*s = (*s)[:n]
	return x, true
}
