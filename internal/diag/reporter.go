package diag

// Reporter is the minimal contract for phases that produce issues. The parser
// and the semantic checker report through it instead of coupling to a concrete
// storage.
type Reporter interface {
	Report(issue Issue)
}

// BagReporter renders every reported issue into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(issue Issue) {
	if r.Bag == nil {
		return
	}
	r.Bag.AddIssue(issue)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Issue) {}

type dedupKey struct {
	code Code
	span string
	msg  string
}

// DedupReporter wraps another Reporter and suppresses issues that repeat the
// same code, primary span, and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that forwards only unique issues.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(issue Issue) {
	if r == nil {
		return
	}
	key := dedupKey{
		code: issue.Code(),
		span: issue.Primary().String(),
		msg:  issue.Message(),
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(issue)
	}
}
