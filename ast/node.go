// Package ast defines the uniform tree every diagram parser emits: a
// closed [NodeKind] taxonomy (with an Other escape for grammar-specific
// labels), [AstNode], and the owning [Ast] root.
package ast

import (
	"encoding/json"
	"fmt"

	"github.com/mermaidlint/mermaidlint/location"
)

// NodeKind identifies the role an AstNode plays.
//
// NodeKind is a closed enumeration except for [Other], the sole escape that
// lets a grammar-specific parser label a node without widening this core
// type. Use [OtherKind] to construct one.
type NodeKind struct {
	tag   string
	other string
}

func kindTag(tag string) NodeKind { return NodeKind{tag: tag} }

// OtherKind constructs the escape variant carrying a grammar-specific label.
func OtherKind(label string) NodeKind { return NodeKind{tag: "other", other: label} }

// String returns the node kind's slug: the declared tag, or the label
// carried by an Other kind.
func (k NodeKind) String() string {
	if k.tag == "other" {
		return k.other
	}
	return k.tag
}

// IsOther reports whether k is the Other escape variant.
func (k NodeKind) IsOther() bool {
	return k.tag == "other"
}

// MarshalJSON renders the kind as its slug string.
func (k NodeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a kind from its slug string, falling back to the
// Other escape for unrecognized slugs.
func (k *NodeKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if found, ok := kindsBySlug[s]; ok {
		*k = found
		return nil
	}
	*k = OtherKind(s)
	return nil
}

// MarshalYAML renders the kind as its slug string.
func (k NodeKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML parses a kind from its slug string, falling back to the
// Other escape for unrecognized slugs.
func (k *NodeKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if found, ok := kindsBySlug[s]; ok {
		*k = found
		return nil
	}
	*k = OtherKind(s)
	return nil
}

// Declared node kinds. These correspond to the roles §3/§4.6 of the design
// require: one per statement/element shape shared across the diagram
// families, plus the family-specific roles (Message, Participant, State,
// Relationship, ...) that recur across more than one grammar.
var (
	Root               = kindTag("root")
	DiagramDeclaration = kindTag("diagram_declaration")
	Node               = kindTag("node")
	Edge               = kindTag("edge")
	Subgraph           = kindTag("subgraph")
	Style              = kindTag("style")
	ClassDef           = kindTag("class_def")
	Directive          = kindTag("directive")
	Comment            = kindTag("comment")
	Label              = kindTag("label")
	Identifier         = kindTag("identifier")
	Message            = kindTag("message")
	Participant        = kindTag("participant")
	Activation         = kindTag("activation")
	Note               = kindTag("note")
	Loop               = kindTag("loop")
	Alt                = kindTag("alt")
	State              = kindTag("state")
	Transition         = kindTag("transition")
	Class              = kindTag("class")
	Method             = kindTag("method")
	Attribute          = kindTag("attribute")
	Relationship       = kindTag("relationship")
	Statement          = kindTag("statement")
)

var kindsBySlug = func() map[string]NodeKind {
	all := []NodeKind{
		Root, DiagramDeclaration, Node, Edge, Subgraph, Style, ClassDef, Directive,
		Comment, Label, Identifier, Message, Participant, Activation, Note, Loop,
		Alt, State, Transition, Class, Method, Attribute, Relationship, Statement,
	}
	m := make(map[string]NodeKind, len(all))
	for _, k := range all {
		m[k.String()] = k
	}
	return m
}()

// IsContainer reports whether k is allowed to carry semantic children of
// other kinds beyond primitive tokens: Root, Subgraph, Loop, Alt, State,
// and Class.
func (k NodeKind) IsContainer() bool {
	switch k {
	case Root, Subgraph, Loop, Alt, State, Class:
		return true
	default:
		return false
	}
}

// AstNode is a node in the uniform parse tree.
//
// Children appear in source order. Fields are keyed by role name and are
// not order-sensitive — they hold a single named sub-node (e.g. an Edge's
// "from" node), distinct from Children which holds ordered peers. Properties
// is a flat string bag for scalar attributes (e.g. {"direction": "TB"}).
type AstNode struct {
	Kind       NodeKind          `json:"kind" yaml:"kind"`
	Span       location.Span     `json:"span" yaml:"span"`
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	Children   []*AstNode        `json:"children,omitempty" yaml:"children,omitempty"`
	Fields     map[string]*AstNode `json:"fields,omitempty" yaml:"fields,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewNode creates a node with no text.
func NewNode(kind NodeKind, span location.Span) *AstNode {
	return &AstNode{Kind: kind, Span: span}
}

// NewNodeWithText creates a node carrying raw text.
func NewNodeWithText(kind NodeKind, span location.Span, text string) *AstNode {
	return &AstNode{Kind: kind, Span: span, Text: text}
}

// AddChild appends a child node.
func (n *AstNode) AddChild(child *AstNode) {
	n.Children = append(n.Children, child)
}

// AddField attaches a named sub-node.
func (n *AstNode) AddField(name string, field *AstNode) {
	if n.Fields == nil {
		n.Fields = make(map[string]*AstNode)
	}
	n.Fields[name] = field
}

// AddProperty attaches a scalar string property.
func (n *AstNode) AddProperty(name, value string) {
	if n.Properties == nil {
		n.Properties = make(map[string]string)
	}
	n.Properties[name] = value
}

// ChildrenOfKind returns every child of the given kind, in source order.
func (n *AstNode) ChildrenOfKind(kind NodeKind) []*AstNode {
	var out []*AstNode
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindChild returns the first child of the given kind, or nil.
func (n *AstNode) FindChild(kind NodeKind) *AstNode {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// GetField returns a named field, or nil if absent.
func (n *AstNode) GetField(name string) *AstNode {
	return n.Fields[name]
}

// GetProperty returns a named property and whether it was present.
func (n *AstNode) GetProperty(name string) (string, bool) {
	v, ok := n.Properties[name]
	return v, ok
}

// String renders a short debug form: "kind@span".
func (n *AstNode) String() string {
	return fmt.Sprintf("%s@%s", n.Kind.String(), n.Span.String())
}
