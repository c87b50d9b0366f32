package depot_test

import (
	"fmt"
	"slices"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/components"
)

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic depot usage with entity creation and queries
func Example_basic() {
	// Create storage
	storage := depot.Factory.NewStorage()

	// Define components
	position := depot.FactoryNewComponent[components.Position]()
	direction := depot.FactoryNewComponent[components.Direction]()
	name := depot.FactoryNewComponent[Name]()

	// Create ants, the last one named
	ants := storage.SpawnMany(4)
	for i, ant := range ants {
		position.Bind(storage, ant, components.Position{X: i})
		direction.Bind(storage, ant, components.East)
	}
	name.Bind(storage, ants[3], Name{Value: "Scout"})

	// Create a few map cells
	for range 3 {
		position.Bind(storage, storage.Spawn(), components.Position{})
	}

	// Query for all entities with position and direction
	query := depot.Factory.NewQuery()
	queryNode := query.And(position, direction)
	cursor := depot.Factory.NewCursor(queryNode, storage)

	// Count matching entities
	matchCount := 0
	for cursor.Next() {
		matchCount++
	}
	fmt.Printf("Found %d entities with position and direction\n", matchCount)

	// Query for just the named entity
	query = depot.Factory.NewQuery()
	queryNode = query.And(name)
	cursor = depot.Factory.NewCursor(queryNode, storage)

	// Move the named entity one step forward
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		dir := direction.GetFromCursor(cursor)
		nme := name.GetFromCursor(cursor)

		*pos = pos.Translate(*dir)
		dir.TurnRight()

		fmt.Printf("Moved %s to (%d, %d), now facing %s\n", nme.Value, pos.X, pos.Y, *dir)
	}

	// Output:
	// Found 4 entities with position and direction
	// Moved Scout to (4, 0), now facing SouthEast
}

// Example_queries shows how to use different query operations
func Example_queries() {
	// Create storage
	storage := depot.Factory.NewStorage()

	// Define components
	position := depot.FactoryNewComponent[components.Position]()
	food := depot.FactoryNewComponent[components.FoodContainer]()
	markers := depot.FactoryNewComponent[components.Markers]()

	spawn := func(n int, withFood, withMarkers bool) {
		for _, id := range storage.SpawnMany(n) {
			position.Bind(storage, id, components.Position{})
			if withFood {
				food.Bind(storage, id, components.FoodContainer{Capacity: 5})
			}
			if withMarkers {
				markers.Bind(storage, id, components.Markers{})
			}
		}
	}

	// Create different entity types
	spawn(3, false, false)
	spawn(3, true, false)
	spawn(3, false, true)
	spawn(3, true, true)

	// AND query: entities with position AND food
	query := depot.Factory.NewQuery()
	andQuery := query.And(position, food)

	cursor := depot.Factory.NewCursor(andQuery, storage)
	fmt.Printf("AND query matched %d entities\n", cursor.TotalMatched())

	// OR query: entities with food OR markers
	orQuery := query.Or(food, markers)

	cursor = depot.Factory.NewCursor(orQuery, storage)
	fmt.Printf("OR query matched %d entities\n", cursor.TotalMatched())

	// NOT query: entities with position but NOT food
	notQuery := query.And(position, query.Not(food))

	cursor = depot.Factory.NewCursor(notQuery, storage)
	fmt.Printf("NOT query matched %d entities\n", cursor.TotalMatched())

	// Output:
	// AND query matched 6 entities
	// OR query matched 9 entities
	// NOT query matched 6 entities
}

// Example_storage shows direct access through the generic helpers and the
// component index query.
func Example_storage() {
	storage := depot.Factory.NewStorage(depot.WithConfig(depot.Config{
		RemovePolicy: depot.RemoveSwap,
		LogLevel:     "warn",
	}))

	ant := storage.Spawn()
	depot.Bind(storage, ant, components.Position{X: 2, Y: 3})
	depot.Bind(storage, ant, components.ExecutionContext{Cooldown: 2})

	ctx, _ := depot.GetMut[components.ExecutionContext](storage, ant)
	ctx.Tick()
	fmt.Println("cooldown:", ctx.Cooldown, "ready:", ctx.Ready())

	cell := storage.Spawn()
	depot.Bind(storage, cell, components.Position{})
	depot.Bind(storage, cell, components.CellNest)

	positionID := depot.IDFor[components.Position](storage.Registry())
	fmt.Println("with position:", slices.Collect(storage.Query(positionID)))

	depot.Unbind[components.ExecutionContext](storage, ant)
	fmt.Println("archetypes:", storage.ArchetypeCount())
	fmt.Println("ant has context:", depot.Has[components.ExecutionContext](storage, ant))

	// Output:
	// cooldown: 1 ready: false
	// with position: [0 1]
	// archetypes: 4
	// ant has context: false
}

// Example_deferred shows structural changes requested during iteration.
func Example_deferred() {
	storage := depot.Factory.NewStorage()
	food := depot.FactoryNewComponent[components.FoodContainer]()
	for i := range 4 {
		food.Bind(storage, storage.Spawn(), components.FoodContainer{Holding: uint32(i % 2), Capacity: 1})
	}

	const iterating = 0
	cursor := depot.Factory.NewCursor(depot.Factory.NewQuery().And(food), storage)
	storage.AddLock(iterating)
	for cursor.Next() {
		if food.GetFromCursor(cursor).Full() {
			storage.EnqueueDelete(cursor.CurrentEntity())
		}
	}
	fmt.Println("during iteration:", storage.EntityCount())
	storage.RemoveLock(iterating)
	fmt.Println("after unlock:", storage.EntityCount())

	// Output:
	// during iteration: 4
	// after unlock: 2
}
