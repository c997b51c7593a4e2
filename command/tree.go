package command

import (
	"fmt"
	"slices"
	"strings"
)

type node struct {
	word     string
	parent   int
	children map[string]int
	cmd      *Command
}

// Tree maps command paths to commands. Nodes live in a single slice and
// refer to each other by index; the root is index 0.
type Tree struct {
	nodes []node
}

func NewTree() *Tree {
	return &Tree{nodes: []node{{parent: -1, children: map[string]int{}}}}
}

// BuildTree inserts each of cmds into a new tree.
func BuildTree(cmds []*Command) (*Tree, error) {
	t := NewTree()
	for _, c := range cmds {
		if err := t.Insert(c.Path, c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree) child(i int, word string) (int, bool) {
	j, ok := t.nodes[i].children[word]
	return j, ok
}

// Insert adds c at path, creating intermediate nodes without a command.
func (t *Tree) Insert(path []string, c *Command) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	i := 0
	for _, w := range path {
		j, ok := t.child(i, w)
		if !ok {
			j = len(t.nodes)
			t.nodes = append(t.nodes, node{word: w, parent: i, children: map[string]int{}})
			t.nodes[i].children[w] = j
		}
		i = j
	}
	if t.nodes[i].cmd != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, strings.Join(path, " "))
	}
	t.nodes[i].cmd = c
	return nil
}

func (t *Tree) Root() Node { return Node{t: t, i: 0} }

// Find follows args down the tree and returns the deepest node reached
// together with the unconsumed args. The walk stops when args run out
// or no child matches the next word.
func (t *Tree) Find(args []string) (Node, []string) {
	i := 0
	for len(args) > 0 {
		j, ok := t.child(i, args[0])
		if !ok {
			break
		}
		i = j
		args = args[1:]
	}
	return Node{t: t, i: i}, args
}

// Node is a position in a Tree.
type Node struct {
	t *Tree
	i int
}

func (n Node) Word() string { return n.t.nodes[n.i].word }

func (n Node) IsRoot() bool { return n.i == 0 }

// Path returns the words leading from the root to n.
func (n Node) Path() []string {
	var path []string
	for i := n.i; i > 0; i = n.t.nodes[i].parent {
		path = append(path, n.t.nodes[i].word)
	}
	slices.Reverse(path)
	return path
}

// Command returns the command at n, or false for nodes which only
// group other commands.
func (n Node) Command() (*Command, bool) {
	c := n.t.nodes[n.i].cmd
	return c, c != nil
}

// Children returns n's children sorted by word.
func (n Node) Children() []Node {
	kids := n.t.nodes[n.i].children
	words := make([]string, 0, len(kids))
	for w := range kids {
		words = append(words, w)
	}
	slices.Sort(words)
	res := make([]Node, len(words))
	for k, w := range words {
		res[k] = Node{t: n.t, i: kids[w]}
	}
	return res
}

func (n Node) String() string { return strings.Join(n.Path(), " ") }
