package stack

import (
	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/value"
	"github.com/edwingeng/deque"
)

// Stack is a LIFO of tagged values. It is not safe for concurrent use;
// each evaluation owns its own stacks.
type Stack struct {
	items deque.Deque
}

func New() *Stack {
	return &Stack{items: deque.NewDeque()}
}

func (s *Stack) Push(v value.Value) {
	s.items.PushBack(v)
}

// Pop removes and returns the top value. It fails with apperr.ErrEmptyStack.
func (s *Stack) Pop() (value.Value, error) {
	if s.items.Empty() {
		return value.Value{}, apperr.ErrEmptyStack
	}
	return s.items.PopBack().(value.Value), nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (value.Value, error) {
	if s.items.Empty() {
		return value.Value{}, apperr.ErrEmptyStack
	}
	return s.items.Back().(value.Value), nil
}

func (s *Stack) IsEmpty() bool {
	return s.items.Empty()
}

func (s *Stack) Size() int {
	return s.items.Len()
}

// Reset releases every element.
func (s *Stack) Reset() {
	s.items = deque.NewDeque()
}
