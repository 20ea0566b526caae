package huffman

import (
	"container/heap"
	"fmt"
	"io"
	"strings"
)

// NodeID is a handle to a node in a Tree's arena.
type NodeID int32

// NoNode marks a missing node: the root of an empty tree or the children
// of a leaf.
const NoNode NodeID = -1

type node struct {
	freq   uint64
	left   NodeID
	right  NodeID
	symbol byte
}

// Tree is a Huffman prefix tree stored as an arena of nodes.
//
// Leaves occupy the first handles in ascending symbol order, internal
// nodes follow in creation order. A node's handle doubles as its insertion
// sequence number, which is what breaks frequency ties during construction.
type Tree struct {
	nodes []node
	root  NodeID
}

// queueItem is a candidate for merging, ordered by (freq, id)
type queueItem struct {
	freq uint64
	id   NodeID
}

// nodeQueue implements heap.Interface (min-heap by frequency, then handle)
type nodeQueue []queueItem

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].id < q[j].id
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// BuildTree builds the Huffman tree for a frequency table.
//
// The two lowest nodes are repeatedly merged into a new internal node whose
// frequency is their sum; the first one extracted becomes the left child.
// Equal frequencies are resolved in favour of the node inserted earlier, so
// the same table always yields the same tree.
//
// An empty table yields an empty tree and a table with a single symbol
// yields a tree made of one leaf.
func BuildTree(ft *FrequencyTable) *Tree {
	entries := ft.Entries()
	t := &Tree{root: NoNode}
	if len(entries) == 0 {
		return t
	}

	t.nodes = make([]node, 0, 2*len(entries)-1)
	q := make(nodeQueue, 0, len(entries))
	for _, e := range entries {
		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{freq: e.Count, symbol: e.Symbol, left: NoNode, right: NoNode})
		q = append(q, queueItem{freq: e.Count, id: id})
	}
	heap.Init(&q)

	for q.Len() > 1 {
		a := heap.Pop(&q).(queueItem)
		b := heap.Pop(&q).(queueItem)

		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{freq: a.freq + b.freq, left: a.id, right: b.id})
		heap.Push(&q, queueItem{freq: a.freq + b.freq, id: id})
	}

	t.root = q[0].id
	return t
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.root == NoNode }

// Root returns the root handle, or NoNode for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes (leaves and internal nodes).
func (t *Tree) Len() int { return len(t.nodes) }

// IsLeaf reports whether id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].left == NoNode && t.nodes[id].right == NoNode
}

// Left returns the left (bit 0) child of id, or NoNode for a leaf.
func (t *Tree) Left(id NodeID) NodeID { return t.nodes[id].left }

// Right returns the right (bit 1) child of id, or NoNode for a leaf.
func (t *Tree) Right(id NodeID) NodeID { return t.nodes[id].right }

// Symbol returns the symbol held by leaf id.
func (t *Tree) Symbol(id NodeID) byte { return t.nodes[id].symbol }

// Freq returns the frequency of id. For internal nodes it is the sum of
// the children's frequencies.
func (t *Tree) Freq(id NodeID) uint64 { return t.nodes[id].freq }

// Depth returns the length of the longest root-to-leaf path.
// A single-leaf tree has depth 0 and an empty tree -1.
func (t *Tree) Depth() int {
	if t.Empty() {
		return -1
	}
	return t.depth(t.root)
}

func (t *Tree) depth(id NodeID) int {
	if t.IsLeaf(id) {
		return 0
	}
	return 1 + max(t.depth(t.Left(id)), t.depth(t.Right(id)))
}

// Preorder renders the tree in preorder, one node per line. Each level adds
// two spaces of indentation followed by the edge bit leading to the node:
//
//	* (11)
//	  0-* 'a' (5)
//	  1-* (6)
//	  1-  0-* (2)
func (t *Tree) Preorder() string {
	var sb strings.Builder
	if !t.Empty() {
		t.writeNode(&sb, t.root, "")
	}
	return sb.String()
}

// WritePreorder writes the Preorder rendering to w.
func (t *Tree) WritePreorder(w io.Writer) error {
	_, err := io.WriteString(w, t.Preorder())
	return err
}

func (t *Tree) writeNode(sb *strings.Builder, id NodeID, prefix string) {
	if t.IsLeaf(id) {
		fmt.Fprintf(sb, "%s* %s (%d)\n", prefix, SymbolLabel(t.Symbol(id)), t.Freq(id))
		return
	}
	fmt.Fprintf(sb, "%s* (%d)\n", prefix, t.Freq(id))
	t.writeNode(sb, t.Left(id), prefix+"  0-")
	t.writeNode(sb, t.Right(id), prefix+"  1-")
}
