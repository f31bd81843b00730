package split

import (
	"fmt"
	"strconv"
	"strings"
)

// Func splits s on every occurrence of delim and returns tokenMod applied to
// each token, in order. An empty delim or a nil tokenMod fails with
// ErrInvalidArgument.
func Func[T any](s, delim string, tokenMod func(string) T, opts ...Option) ([]T, error) {
	if tokenMod == nil {
		return nil, fmt.Errorf("%w: nil token transform", ErrInvalidArgument)
	}
	return FuncErr(s, delim, func(tok string) (T, error) {
		return tokenMod(tok), nil
	}, opts...)
}

// FuncErr is like Func but tokenMod may fail. The first failure aborts the
// split and is returned wrapped in ErrTransform; no partial result is
// returned.
func FuncErr[T any](s, delim string, tokenMod func(string) (T, error), opts ...Option) ([]T, error) {
	cfg := newConfig(opts)
	return scan(s, delim, cfg.skipEmpty, tokenMod)
}

// Strings splits s on delim and returns the tokens unmodified, keeping empty
// tokens.
func Strings(s, delim string) ([]string, error) {
	return Func(s, delim, identity)
}

// Ints splits s on delim and parses every token as a base-10 integer.
func Ints(s, delim string, opts ...Option) ([]int, error) {
	return FuncErr(s, delim, strconv.Atoi, opts...)
}

func identity(s string) string { return s }

func validate(delim string) error {
	if delim == "" {
		return fmt.Errorf("%w: empty delimiter", ErrInvalidArgument)
	}
	return nil
}

// scan walks s left to right. The scan always yields at least one
// token and stops after the token that runs to the end of s, so a trailing
// delimiter produces a trailing empty token. An empty delim would never
// advance the cursor and is rejected here.
func scan[T any](s, delim string, skipEmpty bool, tokenMod func(string) (T, error)) ([]T, error) {
	if err := validate(delim); err != nil {
		return nil, err
	}
	if tokenMod == nil {
		return nil, fmt.Errorf("%w: nil token transform", ErrInvalidArgument)
	}

	dst := make([]T, 0, strings.Count(s, delim)+1)

	first, index := 0, 0
	for {
		last := len(s)
		i := strings.Index(s[first:], delim)
		if i >= 0 {
			last = first + i
		}

		if !skipEmpty || last != first {
			tok := s[first:last]
			v, err := tokenMod(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: token %d %q: %w", ErrTransform, index, tok, err)
			}
			dst = append(dst, v)
		}
		index++

		if i < 0 {
			return dst, nil
		}
		first = last + len(delim)
	}
}
