package depot

import "github.com/rs/zerolog"

func loadArchetypeIntoEvent(event *zerolog.Event, registry *Registry, a Archetype) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, c := range a.Signature() {
		arrayLogger = arrayLogger.Dict(zerolog.Dict().
			Uint32("component_id", uint32(c)).
			Str("component_name", registry.Name(c)))
	}
	event.Array("components", arrayLogger)
	return event.Uint32("archetype_id", uint32(a.ID()))
}

// LogEntity logs the archetype and components of one entity.
func LogEntity(logger *zerolog.Logger, sto Storage, id EntityID, level zerolog.Level) {
	event := logger.WithLevel(level)
	event.Uint64("entity_id", uint64(id))
	loadArchetypeIntoEvent(event, sto.Registry(), sto.ArchetypeOf(id)).Send()
}

// LogArchetypes logs one event per archetype with its size.
func LogArchetypes(logger *zerolog.Logger, sto Storage, level zerolog.Level) {
	for a := range sto.Archetypes() {
		event := logger.WithLevel(level)
		event.Int("entities", a.Len())
		loadArchetypeIntoEvent(event, sto.Registry(), a).Send()
	}
}
