package ir

// Node is one entity of the scene-graph document.
//
// Name and ID are first class: the document stores them as "Name" and
// "UniqueId" properties but they address the node, so they never
// appear in Properties.
type Node struct {
	Class    string
	Name     string
	ID       string
	Parent   *Node
	Children []*Node

	// Properties preserves document order. Names are unique within a
	// node.
	Properties []Property
}

// Property is one named, typed value of a node.
type Property struct {
	Name  string
	Value Value
}

// AddChild appends c to n's children and sets its parent.
func (n *Node) AddChild(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

// Prop returns the named property and whether it exists.
func (n *Node) Prop(name string) (Value, bool) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return n.Properties[i].Value, true
		}
	}
	return Value{}, false
}

// SetProp replaces the named property or appends it.
func (n *Node) SetProp(name string, v Value) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			n.Properties[i].Value = v
			return
		}
	}
	n.Properties = append(n.Properties, Property{Name: name, Value: v})
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	ttl := 1
	for _, c := range n.Children {
		ttl += c.Count()
	}
	return ttl
}
