package warehouse

// factory implements the factory pattern for constructing core values.
type factory struct{}

// Factory is the global factory instance used to build Worlds, layouts and
// components, mirroring the package-level construction idiom the rest of
// the ecosystem uses.
var Factory factory

// NewWorld creates a new World over the given group layout.
func (f factory) NewWorld(layout *GroupLayout) (*World, error) {
	return NewWorld(layout)
}

// NewGroupLayout creates an empty GroupLayout ready for family declarations.
func (f factory) NewGroupLayout() *GroupLayout {
	return NewGroupLayout()
}

// FactoryRegisterComponent binds T's typed sparse set into storage. Safe to
// call multiple times for the same type.
func FactoryRegisterComponent[T any](s *ComponentStorage) {
	RegisterComponent[T](s)
}

// FactoryNewCache creates a new Cache with the specified capacity.
func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
