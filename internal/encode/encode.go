// Package encode writes split results in the formats supported by split-cli.
package encode

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Format selects an output encoding.
type Format string

const (
	// Text writes one `N: "token"` line per token.
	Text Format = "text"
	// JSON writes a JSON array per record.
	JSON Format = "json"
	// Proto writes a length-delimited google.protobuf.ListValue per record.
	Proto Format = "proto"
)

var (
	// ErrUnknownFormat indicates an unsupported Format value.
	ErrUnknownFormat = errors.New("encode: unknown format")

	// ErrIntRange indicates an integer a JSON or proto number cannot hold exactly.
	ErrIntRange = errors.New("encode: integer out of exact float64 range")
)

// maxExactInt is 2^53; ListValue numbers are float64.
const maxExactInt = 1 << 53

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, JSON, Proto:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Writer encodes records of tokens to an underlying io.Writer.
type Writer struct {
	w      io.Writer
	format Format
}

// NewWriter returns a Writer for format. The format must already be valid.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Strings writes one record of string tokens.
func (e *Writer) Strings(tokens []string) error {
	values := make([]any, len(tokens))
	for i, t := range tokens {
		values[i] = t
	}
	return e.write(values)
}

// Ints writes one record of integer tokens. JSON and Proto reject values
// beyond ±2^53 rather than round them.
func (e *Writer) Ints(tokens []int) error {
	values := make([]any, len(tokens))
	for i, n := range tokens {
		if e.format != Text && (n > maxExactInt || n < -maxExactInt) {
			return fmt.Errorf("%w: token %d: %d", ErrIntRange, i+1, n)
		}
		values[i] = n
	}
	return e.write(values)
}

func (e *Writer) write(values []any) error {
	if e.format == Text {
		return e.writeText(values)
	}

	list, err := structpb.NewList(values)
	if err != nil {
		return fmt.Errorf("building list: %w", err)
	}

	switch e.format {
	case JSON:
		data, err := protojson.Marshal(list)
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}
		_, err = fmt.Fprintf(e.w, "%s\n", data)
		return err
	case Proto:
		if _, err := protodelim.MarshalTo(e.w, list); err != nil {
			return fmt.Errorf("marshaling proto: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
}

func (e *Writer) writeText(values []any) error {
	for i, v := range values {
		var err error
		switch v := v.(type) {
		case string:
			_, err = fmt.Fprintf(e.w, "%d: %q\n", i+1, v)
		default:
			_, err = fmt.Fprintf(e.w, "%d: %v\n", i+1, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
