package yes

// Attribute is a [tag] annotation preceding the element name on the same
// logical line. Its meaning is entirely the caller's; order of appearance
// is preserved. A tag written as [name=value] also carries a value.
type Attribute struct {
	Name  string
	Value string
}

// KeyVal is one argument. Key is empty for positional arguments; the
// tokenizer rejects empty keys on named ones, so no flag is needed.
type KeyVal struct {
	Key string
	Val string
}

// Nameless reports whether the argument is positional.
func (kv KeyVal) Nameless() bool {
	return kv.Key == ""
}

// Element is one parsed scriptlet: a name, its leading attributes, and
// its arguments in token order. The format attaches no meaning to any of
// them; schemas are layered on by the caller.
type Element struct {
	Name   string
	Line   int
	Global bool
	Attrs  []Attribute
	Args   []KeyVal
}

// lookup returns the first argument matching key. Duplicate keys are kept
// in token order and later occurrences are shadowed here.
func (e *Element) lookup(key string) (KeyVal, bool) {
	for _, kv := range e.Args {
		if !kv.Nameless() && kv.Key == key {
			return kv, true
		}
	}
	return KeyVal{}, false
}

// Arg returns the argument at position idx in token order.
func (e *Element) Arg(idx int) (KeyVal, bool) {
	if idx < 0 || idx >= len(e.Args) {
		return KeyVal{}, false
	}
	return e.Args[idx], true
}

// HasKey reports whether any named argument uses key. Positional
// arguments never match.
func (e *Element) HasKey(key string) bool {
	_, ok := e.lookup(key)
	return ok
}

// HasKeys reports whether every key in keys is present.
func (e *Element) HasKeys(keys []string) bool {
	for _, k := range keys {
		if !e.HasKey(k) {
			return false
		}
	}
	return true
}

// Upsert replaces the value of the first argument matching kv.Key, or
// appends kv when no match exists. Nameless arguments are always
// appended.
func (e *Element) Upsert(kv KeyVal) {
	if kv.Nameless() {
		e.Args = append(e.Args, kv)
		return
	}
	for i := range e.Args {
		if e.Args[i].Key == kv.Key {
			e.Args[i].Val = kv.Val
			return
		}
	}
	e.Args = append(e.Args, kv)
}
