// Package names interns the strings of a circuit definition to small stable integers.
//
// Every keyword, identifier and punctuation literal seen by the scanner is
// looked up here once, after which the parser and the device, network and
// monitor collaborators compare integers instead of strings. The table also
// hands out disjoint blocks of error codes on demand.
package names

// ID identifies an interned string. IDs are assigned from 0 in first-seen order.
type ID int

// None is the absent name, used where a port or name is optional.
const None ID = -1

// Table maps strings to IDs and back
type Table struct {
	ids            map[string]ID
	names          []string
	errorCodeCount int
}

// New creates an empty Table
func New() *Table {
	return &Table{
		ids: make(map[string]ID),
	}
}

// Lookup returns the ID of each string, adding any string not seen before.
func (t *Table) Lookup(strs ...string) []ID {
	ids := make([]ID, len(strs))
	for i, s := range strs {
		id, ok := t.ids[s]
		if !ok {
			id = ID(len(t.names))
			t.ids[s] = id
			t.names = append(t.names, s)
		}
		ids[i] = id
	}
	return ids
}

// Query returns the ID of s without adding it
func (t *Table) Query(s string) (ID, bool) {
	id, ok := t.ids[s]
	if !ok {
		return None, false
	}
	return id, true
}

// NameString returns the string interned as id
func (t *Table) NameString(id ID) (string, bool) {
	if id < 0 || int(id) >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Len returns the number of interned strings
func (t *Table) Len() int {
	return len(t.names)
}

// UniqueErrorCodes returns n error codes that no earlier call has returned.
func (t *Table) UniqueErrorCodes(n int) []int {
	if n <= 0 {
		return []int{}
	}
	codes := make([]int, n)
	for i := range codes {
		codes[i] = t.errorCodeCount + i
	}
	t.errorCodeCount += n
	return codes
}
