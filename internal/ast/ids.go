package ast

// NodeID identifies a node in a Tree. IDs are 1-based; 0 means "no node".
type NodeID uint32

const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }
