package renderer

// Unwind collects cleanups for a multi-step GL allocation. Unwind runs them
// in reverse; Discard forgets them once the allocation succeeded.
type Unwind []func()

func (u *Unwind) Add(cleanup func()) {
	*u = append(*u, cleanup)
}

func (u Unwind) Unwind() {
	for i := len(u) - 1; i >= 0; i-- {
		u[i]()
	}
}

func (u *Unwind) Discard() {
	*u = (*u)[:0]
}
