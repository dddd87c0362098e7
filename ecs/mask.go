package ecs

// mask is a fixed-capacity set of 32 bits, indexed by ComponentTypeID or
// GroupID. Capacity matches MaxComponentTypes and MaxGroups.
type mask uint32

// set enables the given bit.
func (m *mask) set(bit uint8) {
	*m |= 1 << bit
}

// unset disables the given bit.
func (m *mask) unset(bit uint8) {
	*m &^= 1 << bit
}

// has reports whether the given bit is set.
func (m mask) has(bit uint8) bool {
	return m&(1<<bit) != 0
}
