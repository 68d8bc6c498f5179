package types

// EntityID identifies a single entity in the ECS. IDs are assigned
// monotonically and never reused within a session.
type EntityID uint64
