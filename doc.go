/*
Package warehouse provides sparse-set based component storage for an
Entity-Component-System (ECS) core, with optional group discipline for
co-sorted dense iteration over frequently-queried component combinations.

Unlike an archetype-based store, every component type lives in its own
sparse set: entity index and generation map through a sparse array into a
densely packed data array. Adding or removing a single component never
touches storage for other component types.

Core Concepts:

  - Entity: a generational (index, generation) pair identifying a set of
    components.
  - ComponentSparseSet[T]: the packed storage for one component type.
  - GroupLayout: declares, up front, which component combinations should be
    kept co-sorted so a query over them can walk a contiguous dense prefix
    instead of probing sparse sets one entity at a time.
  - Query: composes shared Comp views, optional exclusions and
    change-tick filters, and picks a dense or sparse iteration strategy
    based on whether the views' GroupInfo lines up with a declared group.

Basic Usage:

	layout := warehouse.Factory.NewGroupLayout()
	warehouse.Level(layout.NewFamily(), positionType, velocityType).Build()

	world, _ := warehouse.Factory.NewWorld(layout)
	warehouse.FactoryRegisterComponent[Position](world.Storage())
	warehouse.FactoryRegisterComponent[Velocity](world.Storage())

	e := world.NewEntity()
	warehouse.Insert(world.Storage(), e, Position{}, world.Tick())
	warehouse.Insert(world.Storage(), e, Velocity{X: 1}, world.Tick())

	pos, _ := warehouse.GetComp[Position](world.Storage())
	vel, _ := warehouse.GetComp[Velocity](world.Storage())
	defer pos.Release()
	defer vel.Release()

	warehouse.ForEach2(pos, vel, nil, warehouse.ChangeFilter{}, warehouse.ChangeFilter{}, world.Storage().Groups(),
		func(e warehouse.Entity, p *Position, v *Velocity) {
			p.X += v.X
		})
*/
package warehouse
