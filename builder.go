package multidiff

// builder streams in operations one at a time and coalesces adjacent
// same-kind pieces without rewriting a slice after the fact. It mirrors
// the teacher's splice-and-merge pass (dmp's DiffCleanupMerge) but as an
// incremental accumulator: add* only flushes the *other* two
// accumulators before adding to its own, so two adjacent calls of the
// same kind never materialize an intermediate operation.
type builder struct {
	ops           []Operation
	pendingRetain int
	pendingDelete int
	pendingInsert string
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) addRetain(n int) {
	if n <= 0 {
		return
	}
	b.flushDelete()
	b.flushInsert()
	b.pendingRetain += n
}

func (b *builder) addDelete(n int) {
	if n <= 0 {
		return
	}
	b.flushRetain()
	b.flushInsert()
	b.pendingDelete += n
}

func (b *builder) addInsert(s string) {
	if s == "" {
		return
	}
	b.flushRetain()
	b.flushDelete()
	b.pendingInsert += s
}

func (b *builder) flushRetain() {
	if b.pendingRetain > 0 {
		b.ops = append(b.ops, Retain(b.pendingRetain))
		b.pendingRetain = 0
	}
}

func (b *builder) flushDelete() {
	if b.pendingDelete > 0 {
		b.ops = append(b.ops, Delete(b.pendingDelete))
		b.pendingDelete = 0
	}
}

func (b *builder) flushInsert() {
	if b.pendingInsert != "" {
		b.ops = append(b.ops, Insert(b.pendingInsert))
		b.pendingInsert = ""
	}
}

// build flushes any remaining accumulator and returns the canonical
// operation sequence built so far.
func (b *builder) build() []Operation {
	b.flushRetain()
	b.flushDelete()
	b.flushInsert()
	if b.ops == nil {
		return []Operation{}
	}
	return b.ops
}
