package encode

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"text", Text, false},
		{"json", JSON, false},
		{"proto", Proto, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFormat(tc.name)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Text)
	if err := w.Strings([]string{"a", "", "c d"}); err != nil {
		t.Fatalf("Strings() error = %v", err)
	}
	if err := w.Ints([]int{7}); err != nil {
		t.Fatalf("Ints() error = %v", err)
	}

	want := "1: \"a\"\n2: \"\"\n3: \"c d\"\n1: 7\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, JSON)
	if err := w.Strings([]string{"x", ""}); err != nil {
		t.Fatalf("Strings() error = %v", err)
	}

	var list structpb.ListValue
	if err := protojson.Unmarshal(bytes.TrimSpace(buf.Bytes()), &list); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	got := list.AsSlice()
	if len(got) != 2 || got[0] != "x" || got[1] != "" {
		t.Errorf("decoded = %v, want [x \"\"]", got)
	}
}

func TestWriter_Proto(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Proto)
	if err := w.Ints([]int{1, 2, 3}); err != nil {
		t.Fatalf("Ints() error = %v", err)
	}
	if err := w.Strings([]string{"tail"}); err != nil {
		t.Fatalf("Strings() error = %v", err)
	}

	r := bufio.NewReader(&buf)

	var first structpb.ListValue
	if err := protodelim.UnmarshalFrom(r, &first); err != nil {
		t.Fatalf("reading first record: %v", err)
	}
	nums := first.AsSlice()
	if len(nums) != 3 || nums[0] != 1.0 || nums[2] != 3.0 {
		t.Errorf("first record = %v, want [1 2 3]", nums)
	}

	var second structpb.ListValue
	if err := protodelim.UnmarshalFrom(r, &second); err != nil {
		t.Fatalf("reading second record: %v", err)
	}
	if got := second.AsSlice(); len(got) != 1 || got[0] != "tail" {
		t.Errorf("second record = %v, want [tail]", got)
	}
}

func TestWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(&buf, Format("xml")).Strings([]string{"a"})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got: %v", err)
	}
}

func TestWriter_IntsPrecision(t *testing.T) {
	const big = 9007199254740993 // 2^53 + 1

	for _, format := range []Format{JSON, Proto} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			err := NewWriter(&buf, format).Ints([]int{1, big})
			if !errors.Is(err, ErrIntRange) {
				t.Fatalf("expected ErrIntRange, got: %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
		})
	}

	t.Run("limit", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewWriter(&buf, JSON).Ints([]int{1 << 53, -(1 << 53)}); err != nil {
			t.Fatalf("Ints() error = %v", err)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewWriter(&buf, Text).Ints([]int{big}); err != nil {
			t.Fatalf("Ints() error = %v", err)
		}
		if want := "1: 9007199254740993\n"; buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})
}
