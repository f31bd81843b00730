package main

import (
	"strconv"
	"strings"
)

// parseInt accepts surrounding whitespace so "1, 2, 3" splits cleanly on ",".
func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
