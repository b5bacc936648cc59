package component

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()

type EndPointTag struct{}

var EndPointTagComponent = NewComponent[EndPointTag]()

// Destroyed marks an entity for removal at the end of the tick.
type Destroyed struct{}

var DestroyedComponent = NewComponent[Destroyed]()
