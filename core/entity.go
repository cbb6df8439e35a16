package core

// Entity is a unique identifier for an entity
// Identifiers are issued by engine.World and never reused within a session
type Entity uint64

// InvalidEntity is the zero value, never issued by the world
const InvalidEntity Entity = 0
