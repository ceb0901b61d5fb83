package stack

import "testing"

func TestPushPop(t *testing.T) {
	s := New[int](0)
	for i, x := range []int{1, 69, 420} {
		s.Push(x)
		if s.Len() != i+1 {
			t.Fatalf("Expected %d items but got %d", i+1, s.Len())
		}
	}

	for _, x := range []int{420, 69, 1} {
		y, ok := s.Pop()
		if !ok || x != y {
			t.Fatalf("Expected to pop ‘%d’ but got ‘%d’ (%t)", x, y, ok)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Expected popping an empty stack to fail")
	}
	if s.Len() != 0 {
		t.Fatalf("Expected an empty stack but got %d items", s.Len())
	}
}

func TestZeroStack(t *testing.T) {
	var s Stack[string]
	if _, ok := s.Pop(); ok {
		t.Fatalf("Expected popping an empty stack to fail")
	}
	s.Push("x")
	if x, ok := s.Pop(); !ok || x != "x" {
		t.Fatalf("Expected to pop ‘x’ but got ‘%s’ (%t)", x, ok)
	}
}
