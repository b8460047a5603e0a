package mytar

type BitFlags uint64

// Set sets the specified bit(s) in the flags.
func (f *BitFlags) Set(flag BitFlags) {
	*f |= flag
}

// Clear unsets the specified bit(s) in the flags.
func (f *BitFlags) Clear(flag BitFlags) {
	*f &^= flag // AND NOT
}

// IsSet checks if the specified bit(s) are set.
func (f BitFlags) IsSet(flag BitFlags) bool {
	return f&flag == flag
}

// IsNotSet checks if the specified bit(s) are not set.
func (f BitFlags) IsNotSet(flag BitFlags) bool {
	return f&flag != flag
}

// Names returns the human-readable names of the set options.
func (f BitFlags) Names() []string {
	var out []string
	for x := 0; 1<<x < optTop; x++ {
		if x == 0 {
			continue
		}
		if f.IsSet(1 << x) {
			out = append(out, optNames[x])
		}
	}
	return out
}
