package jsonutil

import "testing"

// TestPretty verifies indentation and that malformed input passes
// through untouched.
func TestPretty(t *testing.T) {
	got := Pretty(`{"a":1}`)
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("Pretty = %q, want %q", got, want)
	}
	if got := Pretty("not json {"); got != "not json {" {
		t.Errorf("malformed input changed: %q", got)
	}
	if got := Pretty(""); got != "" {
		t.Errorf("empty input changed: %q", got)
	}
}

// TestCompact verifies whitespace removal and malformed passthrough.
func TestCompact(t *testing.T) {
	if got := Compact("{ \"a\": 1,\n  \"b\": 2 }"); got != `{"a":1,"b":2}` {
		t.Errorf("Compact = %q", got)
	}
	if got := Compact("{broken"); got != "{broken" {
		t.Errorf("malformed input changed: %q", got)
	}
}

// TestFields verifies sorted key/value pairs and nil for non-objects.
func TestFields(t *testing.T) {
	fields := Fields(`{"b":2,"a":"x"}`)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0][0] != "a" || fields[0][1] != `"x"` {
		t.Errorf("first field = %v", fields[0])
	}
	if fields[1][0] != "b" || fields[1][1] != "2" {
		t.Errorf("second field = %v", fields[1])
	}

	if got := Fields(`[1,2]`); got != nil {
		t.Errorf("array should yield nil, got %v", got)
	}
	if got := Fields("garbage"); got != nil {
		t.Errorf("malformed input should yield nil, got %v", got)
	}
	if got := Fields(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
}
