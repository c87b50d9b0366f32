package depot

type factory struct{}

var Factory factory

func (f factory) NewStorage(opts ...Option) Storage {
	return newStorage(opts...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, storage Storage) *Cursor {
	return newCursor(query, storage)
}

func (f factory) NewRegistry() *Registry {
	return NewRegistry()
}
