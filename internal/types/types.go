package types

// EntityID identifies an entity inside the ECS. IDs are never reused
// within a session.
type EntityID uint64
