package core

// Entity is an opaque handle into the world's component stores
// Zero is never allocated and reads as "no entity"
type Entity uint64
