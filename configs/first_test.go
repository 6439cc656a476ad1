package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue", "testdata/test2.cue"}, testSchema)

	if n := First[int](loader, "max_stack"); n != 4096 {
		t.Fatalf("got %v", n)
	}
	if b := First[bool](loader, "permissive"); b {
		t.Fatalf("got %v", b)
	}
}

func TestFirstPanicsOnInvalidConfig(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "max_stack")
}
