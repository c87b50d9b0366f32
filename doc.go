/*
Package depot provides an archetype-based entity-component storage engine.

Entities with exactly the same set of component types share an archetype: one
columnar table with a column per component type. Archetypes form a graph whose
edges add or remove one component, so moving an entity after a bind is a single
edge hop once that transition has been seen.

Core Concepts:

  - Entity: An opaque id. All its data lives in components.
  - Component: Any Go type bound to an entity. Each type gets a ComponentID from the storage's Registry.
  - Archetype: The table holding every entity with one exact component signature.
  - Query: The entities whose archetype holds every requested component.

Basic Usage:

	storage := depot.Factory.NewStorage()

	ant := storage.Spawn()
	depot.Bind(storage, ant, Position{X: 3, Y: 4})
	depot.Bind(storage, ant, Direction(0))

	if pos, ok := depot.GetMut[Position](storage, ant); ok {
		pos.X++
	}

	position := depot.FactoryNewComponent[Position]()
	direction := depot.FactoryNewComponent[Direction]()
	for id := range storage.QueryComponents(position, direction) {
		fmt.Println(id, position.GetFromEntity(storage, id))
	}

Invalid entity ids, binding a component twice and empty queries are programming
errors: they panic with an error whose eris.Cause is one of the typed errors of
this package.

A storage is not safe for concurrent use. Pointers returned by GetMut and
GetFromEntity are invalidated by the next Bind, Unbind or Delete.
*/
package depot
