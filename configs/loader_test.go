package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
max_stack?: int & >0
max_frames?: int & >0
permissive?: bool
trace?: bool
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var maxStack int
	if err := loader.AssignFirst("max_stack", &maxStack); err != nil {
		t.Fatal(err)
	}
	if maxStack != 4096 {
		t.Fatalf("got %v", maxStack)
	}

	var trace bool
	if err := loader.AssignFirst("trace", &trace); err != nil {
		t.Fatal(err)
	}
	if !trace {
		t.Fatal()
	}

	err := loader.AssignFirst("max_frames", &maxStack)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var sizes []int
	for value, err := range loader.IterCueValues("max_stack") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		sizes = append(sizes, n)
	}
	if str := fmt.Sprintf("%v", sizes); str != "[4096 65536]" {
		t.Fatalf("got %s", str)
	}

	sizes = sizes[:0]
	for n := range All[int](loader, "max_stack") {
		sizes = append(sizes, n)
	}
	if str := fmt.Sprintf("%v", sizes); str != "[4096 65536]" {
		t.Fatalf("got %s", str)
	}

	if n := First[int](loader, "max_frames"); n != 64 {
		t.Fatalf("got %v", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/missing.cue"}, testSchema)
	var n int
	if err := loader.AssignFirst("max_stack", &n); err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if n := First[int](loader, "max_stack"); n != 0 {
		t.Fatalf("got %v", n)
	}
}
