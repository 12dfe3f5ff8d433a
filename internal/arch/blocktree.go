package arch

// PbTypeID addresses a physical-block-type node inside a BlockTree arena.
type PbTypeID int

// ModeID addresses a mode node inside a BlockTree arena.
type ModeID int

const (
	// NoPbType marks a mode with no enclosing block type (never true for
	// a well-formed tree, kept for symmetry).
	NoPbType PbTypeID = -1
	// NoMode marks a physical-block-type with no parent mode: the
	// hierarchy root.
	NoMode ModeID = -1
)

type pbTypeNode struct {
	name       string
	parentMode ModeID
}

type modeNode struct {
	name         string
	parentPbType PbTypeID
}

// BlockTree holds the physical-block-type/mode hierarchy as two arenas.
// Nodes store only upward links (child to parent mode, mode to parent
// block type); the tree is never traversed top-down by the naming engine.
type BlockTree struct {
	pbTypes []pbTypeNode
	modes   []modeNode
}

// NewBlockTree returns an empty hierarchy.
func NewBlockTree() *BlockTree {
	return &BlockTree{}
}

// AddPbType appends a physical-block-type node. Pass NoMode for the root.
func (t *BlockTree) AddPbType(name string, parent ModeID) PbTypeID {
	id := PbTypeID(len(t.pbTypes))
	t.pbTypes = append(t.pbTypes, pbTypeNode{name: name, parentMode: parent})
	return id
}

// AddMode appends a mode node under its enclosing block type.
func (t *BlockTree) AddMode(name string, parent PbTypeID) ModeID {
	id := ModeID(len(t.modes))
	t.modes = append(t.modes, modeNode{name: name, parentPbType: parent})
	return id
}

// NumPbTypes returns the number of physical-block-type nodes.
func (t *BlockTree) NumPbTypes() int {
	return len(t.pbTypes)
}

// NumModes returns the number of mode nodes.
func (t *BlockTree) NumModes() int {
	return len(t.modes)
}

// PbTypeName returns the name of a physical-block-type node.
func (t *BlockTree) PbTypeName(id PbTypeID) string {
	return t.pbTypes[id].name
}

// ModeName returns the name of a mode node.
func (t *BlockTree) ModeName(id ModeID) string {
	return t.modes[id].name
}

// ParentMode returns the mode enclosing a block type, NoMode for the root.
func (t *BlockTree) ParentMode(id PbTypeID) ModeID {
	return t.pbTypes[id].parentMode
}

// ParentPbType returns the block type enclosing a mode.
func (t *BlockTree) ParentPbType(id ModeID) PbTypeID {
	return t.modes[id].parentPbType
}
