package tui

import (
	"fmt"
	"sync"
)

// ListState holds cursor and scroll position over a filtered item list.
// Single-step navigation wraps around; paging clamps.
type ListState struct {
	mu sync.RWMutex

	length   int
	index    int
	offset   int
	pageSize int
}

// NewListState creates a list state for a window of pageSize rows.
func NewListState(pageSize int) *ListState {
	return &ListState{pageSize: pageSize}
}

// SetLength updates the item count, clamping the cursor when the list
// shrank under it.
func (s *ListState) SetLength(length int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.length = length
	if s.index >= length {
		s.index = length - 1
	}
	if s.index < 0 {
		s.index = 0
	}
	s.scrollIntoView()
}

// SetPageSize updates the window height after a terminal resize.
func (s *ListState) SetPageSize(pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pageSize < 1 {
		pageSize = 1
	}
	s.pageSize = pageSize
	s.scrollIntoView()
}

// Index returns the cursor position.
func (s *ListState) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex moves the cursor to an absolute position.
func (s *ListState) SetIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index >= s.length {
		index = s.length - 1
	}
	s.index = index
	s.scrollIntoView()
}

// Navigate moves the selection by delta, wrapping around the ends.
func (s *ListState) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.length == 0 {
		return
	}

	s.index += delta
	if s.index < 0 {
		s.index = s.length - 1
	} else if s.index >= s.length {
		s.index = 0
	}
	s.scrollIntoView()
}

// Page moves the selection by whole pages without wrapping.
func (s *ListState) Page(pages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveClamped(pages * s.pageSize)
}

// HalfPage moves the selection by half pages without wrapping.
func (s *ListState) HalfPage(halves int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := s.pageSize / 2
	if step < 1 {
		step = 1
	}
	s.moveClamped(halves * step)
}

// Top moves the cursor to the first item.
func (s *ListState) Top() {
	s.SetIndex(0)
}

// Bottom moves the cursor to the last item.
func (s *ListState) Bottom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = s.length - 1
	if s.index < 0 {
		s.index = 0
	}
	s.scrollIntoView()
}

// Window returns the half-open row range [start, end) currently visible.
func (s *ListState) Window() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	end := s.offset + s.pageSize
	if end > s.length {
		end = s.length
	}
	return s.offset, end
}

// ScrollPercent renders the scroll position the way pagers do: the
// percentage of the list above the bottom visible row.
func (s *ListState) ScrollPercent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.length == 0 || s.length <= s.pageSize {
		return "100%"
	}
	bottom := s.offset + s.pageSize
	return fmt.Sprintf("%d%%", bottom*100/s.length)
}

func (s *ListState) moveClamped(delta int) {
	if s.length == 0 {
		return
	}
	s.index += delta
	if s.index < 0 {
		s.index = 0
	}
	if s.index >= s.length {
		s.index = s.length - 1
	}
	s.scrollIntoView()
}

// scrollIntoView adjusts the offset so the cursor stays visible.
// Callers must hold the lock.
func (s *ListState) scrollIntoView() {
	if s.index < s.offset {
		s.offset = s.index
	}
	if s.index >= s.offset+s.pageSize {
		s.offset = s.index - s.pageSize + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
