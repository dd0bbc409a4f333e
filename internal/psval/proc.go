package psval

// Proc is a shared handle onto an immutable procedure body (the value
// sequence between `{` and `}`). Duplicating a *Proc duplicates only
// the pointer; the body slice is never mutated after construction, so
// sharing it needs no further indirection the way Str needs a buf
// pointer.
//
// Env is nil for dynamically-scoped procedures (and always nil when
// the owning interpreter runs in dynamic mode). For lexically-scoped
// procedures it holds the dictionary-stack snapshot captured when the
// `{ ... }` literal was pushed; the interpreter installs it for the
// duration of the call and restores the caller's stack afterward.
type Proc struct {
	Body []Value
	Env  DictStackSnapshot
}

func (*Proc) Type() string { return "proctype" }
