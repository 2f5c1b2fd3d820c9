package stack

import "testing"

func TestPushPopIsLIFO(t *testing.T) {
	s, err := New[string](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, v := range []string{"a", "b", "c"} {
		if err := s.Push(v); err != nil {
			t.Fatalf("Push(%q): %v", v, err)
		}
	}
	want := []string{"c", "b", "a"}
	for _, w := range want {
		peeked, err := s.Peek()
		if err != nil {
			t.Fatalf("Peek: %v", err)
		}
		if peeked != w {
			t.Fatalf("Peek() = %q, want %q", peeked, w)
		}
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != w {
			t.Fatalf("Pop() = %q, want %q", got, w)
		}
	}
	if !s.IsEmpty() {
		t.Fatalf("IsEmpty() = false after draining stack")
	}
}
