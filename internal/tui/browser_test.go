package tui

import (
	"testing"
)

func TestListState_NavigateWrapsAround(t *testing.T) {
	s := NewListState(5)
	s.SetLength(3)

	s.Navigate(-1)
	if got := s.Index(); got != 2 {
		t.Errorf("Index after up from top = %d, want 2", got)
	}
	s.Navigate(1)
	if got := s.Index(); got != 0 {
		t.Errorf("Index after down from bottom = %d, want 0", got)
	}
}

func TestListState_PagingClamps(t *testing.T) {
	s := NewListState(10)
	s.SetLength(25)

	s.Page(1)
	if got := s.Index(); got != 10 {
		t.Errorf("Index after page down = %d, want 10", got)
	}
	s.Page(5)
	if got := s.Index(); got != 24 {
		t.Errorf("Index after overshoot = %d, want 24", got)
	}
	s.Page(-5)
	if got := s.Index(); got != 0 {
		t.Errorf("Index after page up past top = %d, want 0", got)
	}

	s.HalfPage(1)
	if got := s.Index(); got != 5 {
		t.Errorf("Index after half page = %d, want 5", got)
	}
}

func TestListState_WindowFollowsCursor(t *testing.T) {
	s := NewListState(5)
	s.SetLength(20)

	s.SetIndex(9)
	start, end := s.Window()
	if start != 5 || end != 10 {
		t.Errorf("Window = [%d, %d), want [5, 10)", start, end)
	}

	s.SetIndex(2)
	start, end = s.Window()
	if start != 2 || end != 7 {
		t.Errorf("Window = [%d, %d), want [2, 7)", start, end)
	}
}

func TestListState_ShrinkClampsCursor(t *testing.T) {
	s := NewListState(5)
	s.SetLength(10)
	s.Bottom()

	s.SetLength(3)
	if got := s.Index(); got != 2 {
		t.Errorf("Index after shrink = %d, want 2", got)
	}

	s.SetLength(0)
	if got := s.Index(); got != 0 {
		t.Errorf("Index after empty = %d, want 0", got)
	}
	s.Navigate(1) // must not panic on empty list
}

func TestListState_ScrollPercent(t *testing.T) {
	s := NewListState(5)
	s.SetLength(3)
	if got := s.ScrollPercent(); got != "100%" {
		t.Errorf("ScrollPercent short list = %q", got)
	}

	s.SetLength(10)
	s.Top()
	if got := s.ScrollPercent(); got != "50%" {
		t.Errorf("ScrollPercent at top = %q", got)
	}
	s.Bottom()
	if got := s.ScrollPercent(); got != "100%" {
		t.Errorf("ScrollPercent at bottom = %q", got)
	}
}
