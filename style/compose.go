package style

// Compose resolves `inherit` in child against parent's already-finalised
// style, writing into result (spec §4.9). result may alias child (the
// common in-place case) or be a fresh record (e.g. the root pass, or a
// client computing a style independently of the node it will finally be
// attached to); CopyFrom deep-copies any list-bearing payload whenever
// result is not child, so freeing one later never touches the other.
//
// Compose is idempotent (spec §8, P5): calling it twice with the same
// arguments, writing into the same result, yields byte-equal output.
func Compose(parent, child, result *ComputedStyle) {
	for id := 0; id < NumProperties; id++ {
		pid := PropertyID(id)
		d := Table[pid]

		childState := child.State(pid)
		childTouched := childHasBlock(child, d.Group)

		switch {
		case childState == StateInherit:
			inheritInto(result, parent, pid)
		case d.Group != GroupCommon && !childTouched && parent != nil && parentHasBlock(parent, d.Group):
			// The property lives in an extension block the child never
			// touched, but the parent did: propagate per spec §4.9's
			// second bullet.
			inheritInto(result, parent, pid)
		default:
			if result != child {
				result.CopyFrom(pid, child)
			}
		}
	}
}

func childHasBlock(cs *ComputedStyle, g Group) bool {
	return cs.blockForRead(g) != nil
}

func parentHasBlock(cs *ComputedStyle, g Group) bool {
	return cs != nil && cs.blockForRead(g) != nil
}

func inheritInto(result, parent *ComputedStyle, id PropertyID) {
	if parent == nil {
		// Document root with no parent: an inherited property that
		// nobody set falls through to its initial value (applied by the
		// caller's initial-value pass, spec §4.8), so leave it marked
		// StateInherit here for that pass to catch.
		if result.State(id) != StateInherit {
			result.SetInherit(id)
		}
		return
	}
	result.CopyFrom(id, parent)
}
