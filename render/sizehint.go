package render

import "sync/atomic"

// SizeHint remembers the largest output a template has produced so the next
// render can reserve the whole buffer up front. One hint is shared per
// template, typically as a package-level variable next to the generated
// code; concurrent renders may read and update it freely.
type SizeHint struct {
	v atomic.Int64
}

// Get returns the remembered size plus 1/8 headroom, or zero before the
// first Update.
func (h *SizeHint) Get() int {
	v := h.v.Load()
	return int(v + v/8)
}

// Update raises the remembered size to n if n is larger.
func (h *SizeHint) Update(n int) {
	if n < 0 {
		return
	}
	for {
		cur := h.v.Load()
		if int64(n) <= cur {
			return
		}
		if h.v.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}
