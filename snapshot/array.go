package snapshot

// Element is one cell of an ArraySnapshot.
type Element struct {
	Value       int
	Highlighted bool
}

// ArraySnapshot is a frame of the sorting and searching tracers.
type ArraySnapshot struct {
	elems  []Element
	status string
}

// NewArray copies values into a new frame, highlighting the given indices.
// Indices outside the array are ignored.
func NewArray(values []int, status string, highlight ...int) *ArraySnapshot {
	elems := make([]Element, len(values))
	for i, v := range values {
		elems[i].Value = v
	}
	for _, i := range highlight {
		if i >= 0 && i < len(elems) {
			elems[i].Highlighted = true
		}
	}
	return &ArraySnapshot{elems: elems, status: status}
}

// Kind implements Snapshot.
func (s *ArraySnapshot) Kind() Kind { return KindArray }

// Status implements Snapshot.
func (s *ArraySnapshot) Status() string { return s.status }

// Len returns the number of elements.
func (s *ArraySnapshot) Len() int { return len(s.elems) }

// At returns the i-th element.
func (s *ArraySnapshot) At(i int) Element { return s.elems[i] }

// Elements returns a copy of all elements.
func (s *ArraySnapshot) Elements() []Element {
	out := make([]Element, len(s.elems))
	copy(out, s.elems)
	return out
}

// Values returns a copy of the element values in order.
func (s *ArraySnapshot) Values() []int {
	out := make([]int, len(s.elems))
	for i, e := range s.elems {
		out[i] = e.Value
	}
	return out
}

// Highlighted returns the highlighted indices in ascending order.
func (s *ArraySnapshot) Highlighted() []int {
	var out []int
	for i, e := range s.elems {
		if e.Highlighted {
			out = append(out, i)
		}
	}
	return out
}
