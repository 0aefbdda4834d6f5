package stack

// Stack is a simple LIFO. It backs the iterative subtree traversals
// (notably node teardown), which must not recurse on document depth.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := len(*s)
	if l == 0 {
		return zero, false
	}
	v := (*s)[l-1]
	(*s)[l-1] = zero
	*s = (*s)[:l-1]
	return v, true
}

func (s Stack[T]) Len() int {
	return len(s)
}
