package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 100
	// MaxLimit caps how many records any list call can request.
	MaxLimit = 1000
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Skip  int
	Limit int
}

// Normalize clamps the parameters into their allowed ranges.
func (p Params) Normalize() Params {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Window returns the [lo, hi) slice bounds for a collection of n records.
func (p Params) Window(n int) (int, int) {
	p = p.Normalize()
	lo := p.Skip
	if lo > n {
		lo = n
	}
	hi := lo + p.Limit
	if hi > n {
		hi = n
	}
	return lo, hi
}
