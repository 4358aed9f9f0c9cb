package location

// RelatedInfo is an auxiliary location attached to a Diagnostic, such as
// "previous definition here". Order within a Diagnostic's related list is
// significant: it is the order notes should be presented in.
type RelatedInfo struct {
	Message string
	Span    Span
}
