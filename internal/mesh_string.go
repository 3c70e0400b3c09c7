package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cdt/internal/dbg"
)

// Debug strings. Names come from the dbg package so that elements and edges
// with the same index are easy to tell apart in a dump.

func (k ElementKind) String() string {
	switch k {
	case Tombstone:
		return "tombstone"
	case Stub:
		return "stub"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("ElementKind(%d)", k)
}

func (ref EdgeRef) String() string {
	arrow := "→"
	if !ref.Forward {
		arrow = "←"
	}
	return fmt.Sprintf("%d%s", ref.Edge, arrow)
}

// Features are red, boundary edges cyan, interior edges green.
func (m *Mesh) EdgeDbgName(edge int) string {
	name := dbg.EdgeName(edge)
	e := m.Edges[edge]
	switch {
	case e.Removed:
		return aurora.BrightBlack(name).String()
	case e.Feature:
		return aurora.Red(name).String()
	case e.Boundary:
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (m *Mesh) EdgeString(edge int) string {
	e := m.Edges[edge]
	var parents []string
	for _, p := range e.Parents.Slice() {
		parents = append(parents, dbg.ElementName(p))
	}
	return fmt.Sprintf("Edge %s #%d {%d-%d} parents [%s]",
		m.EdgeDbgName(edge), edge, e.Nodes[0], e.Nodes[1], strings.Join(parents, ", "))
}

func (m *Mesh) ElementString(element int) string {
	e := m.Elements[element]
	var sides []string
	for _, ref := range e.Refs() {
		start, end := m.RefNodes(ref)
		sides = append(sides, fmt.Sprintf("%s(%d→%d)", m.EdgeDbgName(ref.Edge), start, end))
	}
	return fmt.Sprintf("%s %s #%d <%s>", strings.Title(e.Kind.String()), dbg.ElementName(element), element, strings.Join(sides, ", "))
}

func (m *Mesh) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mesh: %d nodes, %d edges, %d elements\n", len(m.Nodes), len(m.Edges), len(m.Elements))
	for i := range m.Elements {
		if m.Elements[i].Kind == Tombstone {
			continue
		}
		b.WriteString("  ")
		b.WriteString(m.ElementString(i))
		b.WriteString("\n")
	}
	return b.String()
}
