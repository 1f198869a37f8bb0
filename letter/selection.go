package letter

import "slices"

// MaxStrengths is the number of strengths a Selection holds at most.
const MaxStrengths = 3

// Selection is an ordered set of strength IDs that is never empty and holds
// at most MaxStrengths entries.
type Selection struct {
	ids []string
}

// DefaultSelection returns the initial selection: initiative and structure.
func DefaultSelection() Selection {
	return Selection{ids: []string{"initiative", "structure"}}
}

// NewSelection returns a selection of ids, keeping the last MaxStrengths
// distinct entries. An empty ids yields DefaultSelection.
func NewSelection(ids ...string) Selection {
	var s Selection
	for _, id := range ids {
		if !s.Contains(id) {
			s = s.Toggle(id)
		}
	}
	if len(s.ids) == 0 {
		return DefaultSelection()
	}
	return s
}

// Toggle removes id when selected, unless it is the only entry, and adds it
// otherwise, evicting the oldest entry when the selection is full.
func (s Selection) Toggle(id string) Selection {
	if i := slices.Index(s.ids, id); i >= 0 {
		if len(s.ids) == 1 {
			return s
		}
		return Selection{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
	}
	ids := slices.Clone(s.ids)
	if len(ids) >= MaxStrengths {
		ids = ids[1:]
	}
	return Selection{ids: append(ids, id)}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected IDs, oldest first.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}
