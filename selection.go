package mytar

// Selection tracks the member names requested for one archive scan and which
// of them have been matched. With no names every entry is selected.
type Selection struct {
	requests []request
}

type request struct {
	name  string
	found bool
}

func NewSelection(names []string) *Selection {
	s := &Selection{requests: make([]request, 0, len(names))}
	for _, n := range names {
		s.requests = append(s.requests, request{name: n})
	}
	return s
}

// All reports whether every entry is selected.
func (s *Selection) All() bool {
	return len(s.requests) == 0
}

// Consume reports whether the entry called name is selected. In named mode
// the first still-unfound request for name is marked found, so each request
// matches at most one entry and later duplicates in the archive are skipped.
func (s *Selection) Consume(name string) bool {
	if s.All() {
		return true
	}
	for i := range s.requests {
		r := &s.requests[i]
		if !r.found && r.name == name {
			r.found = true
			return true
		}
	}
	return false
}

// Unmatched returns the requested names never consumed, in request order.
func (s *Selection) Unmatched() []string {
	var out []string
	for _, r := range s.requests {
		if !r.found {
			out = append(out, r.name)
		}
	}
	return out
}

// Err returns a NotFoundError when any request went unmatched.
func (s *Selection) Err() error {
	if names := s.Unmatched(); len(names) > 0 {
		return &NotFoundError{Names: names}
	}
	return nil
}
