package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/stackvm/programs"
	"github.com/reusee/stackvm/vm"
)

type lines []string

func (l *lines) Readline() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}

func TestStepContinue(t *testing.T) {
	prog, err := programs.Fib(10)
	if err != nil {
		t.Fatal(err)
	}
	printed := new(bytes.Buffer)
	c := vm.NewContext(prog, vm.WithWriter(printed))
	out := new(bytes.Buffer)
	if err := step(t.Context(), c, &lines{"s", "s", "k", "c"}, out); err != nil {
		t.Fatal(err)
	}
	if printed.String() != "55\n" {
		t.Fatalf("got %q", printed.String())
	}
	if !strings.Contains(out.String(), "frame 1 ops: fib") {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(out.String(), "stack:\n  10\n") {
		t.Fatalf("got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "halted\n") {
		t.Fatalf("got %q", out.String())
	}
}

func TestStepFrameAndQuit(t *testing.T) {
	prog, err := programs.Fib(3)
	if err != nil {
		t.Fatal(err)
	}
	c := vm.NewContext(prog, vm.WithWriter(io.Discard))
	out := new(bytes.Buffer)
	if err := step(t.Context(), c, &lines{"", "", "f 1", "f x", "help", "q"}, out); err != nil {
		t.Fatal(err)
	}
	if c.Halted() {
		t.Fatal("should not halt")
	}
	if !strings.Contains(out.String(), "frame 0 ops: <top>") {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(out.String(), "bad frame: x") {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(out.String(), "continue until halt") {
		t.Fatalf("got %q", out.String())
	}
}

func TestStepFault(t *testing.T) {
	prog, err := programs.Fib(10)
	if err != nil {
		t.Fatal(err)
	}
	c := vm.NewContext(prog, vm.WithConfig(vm.Config{MaxFrames: 4}))
	err = step(t.Context(), c, &lines{"c"}, io.Discard)
	if !errors.Is(err, vm.ErrStackOverflow) {
		t.Fatalf("got %v", err)
	}
}

func TestStepResult(t *testing.T) {
	prog, err := programs.Shadowed(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := vm.NewContext(prog)
	out := new(bytes.Buffer)
	if err := step(t.Context(), c, &lines{"c"}, out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "halted: 2\n") {
		t.Fatalf("got %q", out.String())
	}
}

func TestScanLines(t *testing.T) {
	prog, err := programs.Fib(2)
	if err != nil {
		t.Fatal(err)
	}
	printed := new(bytes.Buffer)
	c := vm.NewContext(prog, vm.WithWriter(printed))
	r := scanLines{bufio.NewScanner(strings.NewReader("s\nc\n"))}
	if err := step(t.Context(), c, r, io.Discard); err != nil {
		t.Fatal(err)
	}
	if printed.String() != "1\n" {
		t.Fatalf("got %q", printed.String())
	}
}
