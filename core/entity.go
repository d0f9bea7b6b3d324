package core

// Entity is an opaque identity components attach to
// Zero is never issued and marks "no entity"
type Entity uint64
