package ecs

type factory struct{}

var Factory factory

// NewRegistry builds an empty world.
func (f factory) NewRegistry(opts ...Option) *Registry {
	return newRegistry(opts...)
}

// NewQuery starts a composite query; chain And/Or/Not to build the tree.
func (f factory) NewQuery() Query {
	return newQuery()
}

// NewCursor walks the entities matching a query node against the registry.
func (f factory) NewCursor(query QueryNode, reg *Registry) *Cursor {
	return newCursor(query, reg)
}
