package gc

// rootStack is the LIFO of references that seeds a collection cycle. The
// mark phase reuses it as the traversal worklist, so by the end of marking
// it is fully drained.
//
// The stack's own storage comes from the ordinary Go heap, never from the
// managed region: collector bookkeeping must not itself become garbage
// needing collection.
type rootStack struct {
	refs []Ref
}

func (s *rootStack) push(ref Ref) {
	s.refs = append(s.refs, ref)
}

func (s *rootStack) pop() (Ref, bool) {
	if len(s.refs) == 0 {
		return NullRef, false
	}
	ref := s.refs[len(s.refs)-1]
	s.refs = s.refs[:len(s.refs)-1]
	return ref, true
}

func (s *rootStack) empty() bool {
	return len(s.refs) == 0
}
