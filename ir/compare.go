package ir

// Equal reports whether a and b hold the same value. Object members are
// matched by name regardless of order; Array elements are compared in
// order. Names of a and b themselves are ignored.
func Equal(a, b *Node) bool {
	return equal(a, b, 0)
}

func equal(a, b *Node, depth int) bool {
	if a == nil || b == nil {
		return a == b
	}
	if depth > MaxDepth {
		return false
	}
	if a.Type != b.Type || len(a.Values) != len(b.Values) {
		return false
	}
	switch a.Type {
	case ObjectType:
		for _, ac := range a.Values {
			bc := b.Member(ac.Name)
			if bc == nil || !equal(ac, bc, depth+1) {
				return false
			}
		}
		return true
	case ArrayType:
		for i, ac := range a.Values {
			if !equal(ac, b.Values[i], depth+1) {
				return false
			}
		}
		return true
	default:
		return a.Text == b.Text
	}
}
