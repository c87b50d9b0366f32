package depot

type operation struct {
	typ       operationType
	entity    EntityID
	component ComponentID
	value     any
}

type operationType int

const (
	opDestroy operationType = iota
	opAddComponent
	opRemoveComponent
)

// opQueue holds structural changes requested while the storage is locked.
type opQueue struct {
	componentOps   []operation
	destroyOps     []EntityID
	pendingDestroy map[EntityID]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

func (q *opQueue) len() int {
	return len(q.componentOps) + len(q.destroyOps)
}

func (q *opQueue) enqueueDelete(id EntityID) {
	if _, queued := q.pendingDestroy[id]; queued {
		return
	}
	q.pendingDestroy[id] = struct{}{}
	q.destroyOps = append(q.destroyOps, id)
}

// enqueueComponentOp ignores entities already queued for deletion.
func (q *opQueue) enqueueComponentOp(typ operationType, id EntityID, c ComponentID, value any) {
	if _, isDestroyed := q.pendingDestroy[id]; isDestroyed {
		return
	}
	q.componentOps = append(q.componentOps, operation{
		typ:       typ,
		entity:    id,
		component: c,
		value:     value,
	})
}

func (s *storage) apply(op operation) {
	switch op.typ {
	case opAddComponent:
		s.bind(op.entity, op.component, op.value)
	case opRemoveComponent:
		s.unbind(op.entity, op.component)
	case opDestroy:
		s.delete(op.entity)
	}
}

// processOperationQueue runs component operations in order, then deletions.
// Component operations on entities queued for deletion are dropped.
func (s *storage) processOperationQueue() {
	if s.opQueue.len() == 0 {
		return
	}
	// Swap the queue out so operations can enqueue follow-ups safely.
	q := s.opQueue
	s.opQueue = newOpQueue()

	for _, op := range q.componentOps {
		if _, isDestroyed := q.pendingDestroy[op.entity]; isDestroyed {
			continue
		}
		s.apply(op)
	}
	for _, id := range q.destroyOps {
		s.apply(operation{typ: opDestroy, entity: id})
	}

	s.logger.Debug().
		Int("component_ops", len(q.componentOps)).
		Int("destroy_ops", len(q.destroyOps)).
		Msg("flushed operation queue")
}
