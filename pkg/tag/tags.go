package tag

import (
	"fmt"
	"sort"
	"strings"
)

// Tags is an immutable set of unique tags. Uniqueness is case-insensitive and
// every operation that looks like a mutation returns a new Tags value.
//
// The zero value is an empty set.
type Tags struct {
	// set maps a tag key to the first instance seen for that key.
	set map[string]Tag
}

// Separation is the result of splitting incoming tags against an existing set.
type Separation struct {
	// New holds incoming tags that were not present in the receiver.
	New Tags

	// Duplicate holds the receiver's own instances of tags that were
	// already present.
	Duplicate Tags
}

func (s Separation) String() string {
	return fmt.Sprintf("New: %s, Duplicates: %s", s.New, s.Duplicate)
}

// Empty returns an empty set.
func Empty() Tags {
	return Tags{}
}

// Of builds a set from already validated tags. Later duplicates are dropped.
func Of(tags ...Tag) Tags {
	set := make(map[string]Tag, len(tags))
	for _, t := range tags {
		if _, ok := set[t.Key()]; !ok {
			set[t.Key()] = t
		}
	}
	return Tags{set: set}
}

// Parse validates every raw string and returns the resulting set. It fails on
// the first invalid tag.
func Parse(raws ...string) (Tags, error) {
	tags := make([]Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := New(raw)
		if err != nil {
			return Tags{}, err
		}
		tags = append(tags, t)
	}
	return Of(tags...), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(raws ...string) Tags {
	tags, err := Parse(raws...)
	if err != nil {
		panic(err)
	}
	return tags
}

// Combine returns the union of ts and other. When both hold the same tag the
// receiver's spelling wins.
func (ts Tags) Combine(other Tags) Tags {
	out := ts.clone(len(other.set))
	for key, t := range other.set {
		if _, ok := out[key]; !ok {
			out[key] = t
		}
	}
	return Tags{set: out}
}

// Exclude returns the tags of ts that are not in other.
func (ts Tags) Exclude(other Tags) Tags {
	out := ts.clone(0)
	for key := range other.set {
		delete(out, key)
	}
	return Tags{set: out}
}

// Replace returns ts with oldTag removed and newTag inserted. oldTag does not
// have to be present.
func (ts Tags) Replace(oldTag, newTag Tag) Tags {
	out := ts.clone(1)
	delete(out, oldTag.Key())
	out[newTag.Key()] = newTag
	return Tags{set: out}
}

// SeparateNewFromExisting partitions incoming into tags ts does not have yet
// and tags it already has. Duplicates are reported using the instances stored
// in ts so their spelling stays stable.
func (ts Tags) SeparateNewFromExisting(incoming Tags) Separation {
	fresh := make(map[string]Tag)
	dup := make(map[string]Tag)

	for key, t := range incoming.set {
		if existing, ok := ts.set[key]; ok {
			dup[key] = existing
			continue
		}
		fresh[key] = t
	}

	return Separation{New: Tags{set: fresh}, Duplicate: Tags{set: dup}}
}

// Contains reports whether t is in the set, ignoring case.
func (ts Tags) Contains(t Tag) bool {
	_, ok := ts.set[t.Key()]
	return ok
}

// Get returns the stored instance equal to t.
func (ts Tags) Get(t Tag) (Tag, bool) {
	stored, ok := ts.set[t.Key()]
	return stored, ok
}

// IsEmpty reports whether the set holds no tags.
func (ts Tags) IsEmpty() bool {
	return len(ts.set) == 0
}

// Len returns the number of tags.
func (ts Tags) Len() int {
	return len(ts.set)
}

// Equal reports whether both sets hold the same tags, ignoring case.
func (ts Tags) Equal(other Tags) bool {
	if len(ts.set) != len(other.set) {
		return false
	}
	for key := range ts.set {
		if _, ok := other.set[key]; !ok {
			return false
		}
	}
	return true
}

// Slice returns the tags ordered by key.
func (ts Tags) Slice() []Tag {
	keys := make([]string, 0, len(ts.set))
	for key := range ts.set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Tag, 0, len(keys))
	for _, key := range keys {
		out = append(out, ts.set[key])
	}
	return out
}

// Names returns the display names ordered by key. This is also the form the
// set is persisted in.
func (ts Tags) Names() []string {
	tags := ts.Slice()
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name())
	}
	return names
}

// String formats the set as ["a", "b"].
func (ts Tags) String() string {
	names := ts.Names()
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, fmt.Sprintf("%q", n))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func (ts Tags) clone(extra int) map[string]Tag {
	out := make(map[string]Tag, len(ts.set)+extra)
	for key, t := range ts.set {
		out[key] = t
	}
	return out
}
