package dom

// Document tracks which element holds native focus. It backs the in-memory
// Node implementation used by the terminal front-ends and by tests.
type Document struct {
	active     *Node
	focusCount int
	nodes      map[string]*Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[string]*Node)}
}

// NewNode creates a node owned by the document. parent may be nil.
func (d *Document) NewNode(id, role string, parent *Node) *Node {
	n := &Node{id: id, role: role, parent: parent, doc: d}
	d.nodes[id] = n
	return n
}

// Lookup returns the node with the given id.
func (d *Document) Lookup(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// ActiveElement returns the focused node, or nil.
func (d *Document) ActiveElement() *Node {
	return d.active
}

// FocusCount returns how many times Focus has been called on any node.
func (d *Document) FocusCount() int {
	return d.focusCount
}

// Node is an in-memory Element.
type Node struct {
	id     string
	role   string
	parent *Node
	doc    *Document
}

// ID returns the node id.
func (n *Node) ID() string {
	return n.id
}

// Role returns the node role.
func (n *Node) Role() string {
	return n.role
}

// Parent returns the parent node or nil.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Focus makes n the document's active element.
func (n *Node) Focus() {
	if n.doc == nil {
		return
	}
	n.doc.active = n
	n.doc.focusCount++
}

// HasFocus reports whether n is the document's active element.
func (n *Node) HasFocus() bool {
	return n.doc != nil && n.doc.active == n
}
