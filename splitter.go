package split

// Splitter splits strings on a fixed, pre-validated delimiter.
// It is safe for concurrent use. Create one with New; the zero value has an
// empty delimiter and yields no tokens.
type Splitter struct {
	delim     string
	skipEmpty bool
}

// New creates a Splitter for delim. An empty delim fails with
// ErrInvalidArgument.
func New(delim string, opts ...Option) (*Splitter, error) {
	if err := validate(delim); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	return &Splitter{
		delim:     delim,
		skipEmpty: cfg.skipEmpty,
	}, nil
}

// Delim returns the delimiter.
func (sp *Splitter) Delim() string { return sp.delim }

// SkipEmpty reports whether empty tokens are dropped.
func (sp *Splitter) SkipEmpty() bool { return sp.skipEmpty }

// Split returns the tokens of s, or nil if sp was not created by New.
func (sp *Splitter) Split(s string) []string {
	return Map(sp, s, identity)
}

// Map splits s with sp and applies fn to each token. It returns nil when fn
// is nil or sp has an empty delimiter; use MapErr to get the error.
func Map[T any](sp *Splitter, s string, fn func(string) T) []T {
	if fn == nil {
		return nil
	}
	// fn cannot fail, so the only error is an invalid argument.
	out, err := scan(s, sp.delim, sp.skipEmpty, func(tok string) (T, error) {
		return fn(tok), nil
	})
	if err != nil {
		return nil
	}
	return out
}

// MapErr splits s with sp and applies the fallible fn to each token.
// Failures are wrapped in ErrTransform; a nil fn or an empty delimiter
// fails with ErrInvalidArgument.
func MapErr[T any](sp *Splitter, s string, fn func(string) (T, error)) ([]T, error) {
	return scan(s, sp.delim, sp.skipEmpty, fn)
}
