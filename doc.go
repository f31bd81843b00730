// Package split tokenizes strings on an exact-match delimiter.
//
// # Quick Start
//
//	parts, err := split.Strings("a,b,c", ",")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(parts) // [a b c]
//
// A transform can be applied to each token as it is extracted, so parsing
// happens in the same pass:
//
//	upper, err := split.Func("a,b", ",", strings.ToUpper)
//	nums, err := split.Ints("1,2,3", ",")
//
// # Empty Tokens
//
// Empty tokens are kept by default, so joining the result with the delimiter
// reproduces the input exactly. An empty input yields one empty token.
// Pass WithSkipEmpty(true) to drop them.
//
// # Thread Safety
//
// All functions are pure. A Splitter is immutable after New and is safe for
// concurrent use.
package split
