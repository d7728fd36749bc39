package dom

// Op is the mutation operation type.
type Op uint8

const (
	OpCreateElement  Op = 0x01 // New element node
	OpCreateText     Op = 0x02 // New text node
	OpSetAttr        Op = 0x03 // Set/update attribute
	OpRemoveAttr     Op = 0x04 // Remove attribute
	OpAddListener    Op = 0x05 // Install event listener
	OpRemoveListener Op = 0x06 // Remove event listener
	OpInsert         Op = 0x07 // Insert child at index
	OpRemove         Op = 0x08 // Remove child
	OpReplace        Op = 0x09 // Replace child in place
	OpSetText        Op = 0x0A // Update text node data
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpReplace:
		return "Replace"
	case OpSetText:
		return "SetText"
	default:
		return "Unknown"
	}
}

// Mutation is one host-tree change record. Fields beyond Op and Node are
// populated per operation:
//
//	CreateElement:  Tag
//	CreateText:     Value (text data)
//	SetAttr:        Key, Value
//	RemoveAttr:     Key
//	AddListener:    Key (event name)
//	RemoveListener: Key (event name)
//	Insert:         Parent, Index
//	Remove:         Parent, Index
//	Replace:        Parent, Index, Other (node being replaced)
//	SetText:        Value
type Mutation struct {
	Op     Op
	Node   uint64 // Target node id
	Parent uint64
	Other  uint64
	Index  int
	Tag    string
	Key    string
	Value  string
}
