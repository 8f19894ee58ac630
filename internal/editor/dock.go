package editor

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TabKind tells the viewport tab apart from window tabs.
type TabKind int

const (
	TabViewport TabKind = iota
	TabWindow
)

// Tab is one entry in a pane's tab bar.
type Tab struct {
	Kind   TabKind
	Window WindowID
}

func ViewportTab() Tab {
	return Tab{Kind: TabViewport}
}

func WindowTab(id WindowID) Tab {
	return Tab{Kind: TabWindow, Window: id}
}

// Split is the side of a pane a new pane is placed on.
type Split int

const (
	SplitLeft Split = iota
	SplitRight
	SplitAbove
	SplitBelow
)

func (s Split) String() string {
	switch s {
	case SplitLeft:
		return "left"
	case SplitRight:
		return "right"
	case SplitAbove:
		return "above"
	case SplitBelow:
		return "below"
	default:
		return fmt.Sprintf("Split(%d)", int(s))
	}
}

// NodeIndex addresses a node of the dock tree. Children of node n live at
// 2n+1 and 2n+2.
type NodeIndex int

const RootNode NodeIndex = 0

func (n NodeIndex) Left() NodeIndex  { return 2*n + 1 }
func (n NodeIndex) Right() NodeIndex { return 2*n + 2 }

// Parent returns the parent index; the root has none.
func (n NodeIndex) Parent() (NodeIndex, bool) {
	if n <= 0 {
		return 0, false
	}
	return (n - 1) / 2, true
}

type NodeKind int

const (
	NodeEmpty NodeKind = iota
	NodeLeaf
	NodeHorizontal // children side by side, Fraction is the left share
	NodeVertical   // children stacked, Fraction is the top share
)

// Node is a pane (leaf) or a split.
type Node struct {
	Kind     NodeKind
	Fraction float32
	Tabs     []Tab
	Active   int

	// Rect is the area assigned by the last Layout call.
	Rect rl.Rectangle
}

// NewLeaf builds a pane holding tabs, the first one active.
func NewLeaf(tabs ...Tab) Node {
	return Node{Kind: NodeLeaf, Tabs: append([]Tab(nil), tabs...)}
}

func (n *Node) IsLeaf() bool {
	return n.Kind == NodeLeaf
}

// ActiveTab returns the tab shown in a pane.
func (n *Node) ActiveTab() (Tab, bool) {
	if n.Kind != NodeLeaf || n.Active < 0 || n.Active >= len(n.Tabs) {
		return Tab{}, false
	}
	return n.Tabs[n.Active], true
}

// DockState is the tree of docked panes.
type DockState struct {
	nodes   []Node
	focused NodeIndex
}

// NewDockState creates a tree with a single pane holding tabs.
func NewDockState(tabs ...Tab) *DockState {
	return &DockState{
		nodes:   []Node{NewLeaf(tabs...)},
		focused: -1,
	}
}

func (d *DockState) Len() int {
	return len(d.nodes)
}

func (d *DockState) valid(i NodeIndex) bool {
	return i >= 0 && int(i) < len(d.nodes) && d.nodes[i].Kind != NodeEmpty
}

// Node returns the node at i, or nil for an empty slot.
func (d *DockState) Node(i NodeIndex) *Node {
	if !d.valid(i) {
		return nil
	}
	return &d.nodes[i]
}

// Leaves returns every pane in index order.
func (d *DockState) Leaves() []NodeIndex {
	var leaves []NodeIndex
	for i := range d.nodes {
		if d.nodes[i].Kind == NodeLeaf {
			leaves = append(leaves, NodeIndex(i))
		}
	}
	return leaves
}

// FocusedLeaf returns the pane that last received focus.
func (d *DockState) FocusedLeaf() (NodeIndex, bool) {
	if d.valid(d.focused) && d.nodes[d.focused].Kind == NodeLeaf {
		return d.focused, true
	}
	return 0, false
}

func (d *DockState) SetFocusedNode(i NodeIndex) {
	if d.valid(i) {
		d.focused = i
	}
}

// SetActiveTab makes tab the visible tab of pane node.
func (d *DockState) SetActiveTab(node NodeIndex, tab int) {
	n := d.Node(node)
	if n == nil || !n.IsLeaf() || tab < 0 || tab >= len(n.Tabs) {
		return
	}
	n.Active = tab
}

// PushToFocusedLeaf appends tab to the focused pane and shows it. Without a
// focused pane the first pane is used; an empty tree gets a new root pane.
func (d *DockState) PushToFocusedLeaf(tab Tab) {
	leaf, ok := d.FocusedLeaf()
	if !ok {
		if len(d.nodes) == 0 || d.nodes[RootNode].Kind == NodeEmpty {
			d.setNode(RootNode, NewLeaf(tab))
			d.focused = RootNode
			return
		}
		leaves := d.Leaves()
		if len(leaves) == 0 {
			panic("dock tree has no panes")
		}
		leaf = leaves[0]
	}
	n := &d.nodes[leaf]
	n.Tabs = append(n.Tabs, tab)
	n.Active = len(n.Tabs) - 1
	d.focused = leaf
}

// Split turns parent into a split node. The old content of parent and the
// new node become its children; new ends up on the given side and is focused.
// fraction is always the share of the left or top child.
func (d *DockState) Split(parent NodeIndex, split Split, fraction float32, node Node) [2]NodeIndex {
	if !d.valid(parent) {
		panic(fmt.Sprintf("split of empty dock node %d", parent))
	}
	fraction = clampFraction(fraction)

	old := d.extract(parent)
	kind := NodeHorizontal
	if split == SplitAbove || split == SplitBelow {
		kind = NodeVertical
	}
	d.setNode(parent, Node{Kind: kind, Fraction: fraction})

	var index [2]NodeIndex
	switch split {
	case SplitRight, SplitBelow:
		index = [2]NodeIndex{parent.Left(), parent.Right()}
	default:
		index = [2]NodeIndex{parent.Right(), parent.Left()}
	}
	d.write(index[0], old)
	d.setNode(index[1], node)
	d.focused = index[1]
	return index
}

// FindTab locates the first pane holding tab.
func (d *DockState) FindTab(tab Tab) (NodeIndex, int, bool) {
	for i := range d.nodes {
		if d.nodes[i].Kind != NodeLeaf {
			continue
		}
		for j, t := range d.nodes[i].Tabs {
			if t == tab {
				return NodeIndex(i), j, true
			}
		}
	}
	return 0, 0, false
}

// RemoveTab drops a tab from a pane. A pane left without tabs is removed and
// its sibling takes the parent's place.
func (d *DockState) RemoveTab(node NodeIndex, tab int) (Tab, bool) {
	n := d.Node(node)
	if n == nil || !n.IsLeaf() || tab < 0 || tab >= len(n.Tabs) {
		return Tab{}, false
	}
	removed := n.Tabs[tab]
	n.Tabs = append(n.Tabs[:tab], n.Tabs[tab+1:]...)
	if n.Active >= len(n.Tabs) || n.Active > tab {
		n.Active--
	}
	if n.Active < 0 {
		n.Active = 0
	}
	if len(n.Tabs) == 0 {
		d.removeLeaf(node)
	}
	return removed, true
}

func (d *DockState) removeLeaf(node NodeIndex) {
	parent, ok := node.Parent()
	if !ok {
		d.nodes[RootNode] = NewLeaf()
		d.focused = RootNode
		return
	}
	sibling := parent.Left()
	if sibling == node {
		sibling = parent.Right()
	}
	if d.focused == node {
		d.focused = -1
	}
	keep := d.extract(sibling)
	d.extract(parent)
	d.write(parent, keep)
	if !d.valid(d.focused) || d.nodes[d.focused].Kind != NodeLeaf {
		d.focused = -1
		if leaves := d.Leaves(); len(leaves) > 0 {
			d.focused = leaves[0]
		}
	}
}

// Layout assigns a rectangle to every node, starting with rect at the root.
func (d *DockState) Layout(rect rl.Rectangle) {
	d.layout(RootNode, rect)
}

func (d *DockState) layout(i NodeIndex, rect rl.Rectangle) {
	if !d.valid(i) {
		return
	}
	n := &d.nodes[i]
	n.Rect = rect
	switch n.Kind {
	case NodeHorizontal:
		w := rect.Width * n.Fraction
		d.layout(i.Left(), rl.NewRectangle(rect.X, rect.Y, w, rect.Height))
		d.layout(i.Right(), rl.NewRectangle(rect.X+w, rect.Y, rect.Width-w, rect.Height))
	case NodeVertical:
		h := rect.Height * n.Fraction
		d.layout(i.Left(), rl.NewRectangle(rect.X, rect.Y, rect.Width, h))
		d.layout(i.Right(), rl.NewRectangle(rect.X, rect.Y+h, rect.Width, rect.Height-h))
	}
}

// subtree is a detached branch of the tree, used to move nodes around. Focus
// travels with the node that holds it.
type subtree struct {
	node        Node
	focused     bool
	left, right *subtree
}

func (d *DockState) extract(i NodeIndex) *subtree {
	if !d.valid(i) {
		return nil
	}
	s := &subtree{node: d.nodes[i], focused: d.focused == i}
	if s.focused {
		d.focused = -1
	}
	d.nodes[i] = Node{}
	s.left = d.extract(i.Left())
	s.right = d.extract(i.Right())
	return s
}

func (d *DockState) write(i NodeIndex, s *subtree) {
	if s == nil {
		return
	}
	d.setNode(i, s.node)
	if s.focused {
		d.focused = i
	}
	d.write(i.Left(), s.left)
	d.write(i.Right(), s.right)
}

func (d *DockState) setNode(i NodeIndex, n Node) {
	for int(i) >= len(d.nodes) {
		d.nodes = append(d.nodes, Node{})
	}
	d.nodes[i] = n
}

func clampFraction(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
