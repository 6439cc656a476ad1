package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/stackvm/vm"
	"golang.org/x/term"
)

type lineReader interface {
	Readline() (string, error)
}

// scanLines reads commands from a non-terminal stdin.
type scanLines struct {
	*bufio.Scanner
}

func (s scanLines) Readline() (string, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.Text(), nil
}

func runStepper(ctx context.Context, c *vm.Context, out io.Writer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return step(ctx, c, scanLines{bufio.NewScanner(os.Stdin)}, out)
	}

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".stackvm_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "(stackvm) ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()
	return step(ctx, c, rl, out)
}

const stepHelp = `s       execute one instruction
c       continue until halt
f [n]   print the frame n levels below the current one
k       print the operand stack
q       quit
`

// step drives c by commands read from rl until it halts, faults or the input ends.
func step(ctx context.Context, c *vm.Context, rl lineReader, out io.Writer) error {
	if err := c.Err(); err != nil {
		return err
	}
	if !c.Halted() {
		if err := c.WriteFrame(out, 0); err != nil {
			return err
		}
	}
	for !c.Halted() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		} else if err != nil {
			return wrap(err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			// repeat step on empty line
			fields = []string{"s"}
		}

		switch fields[0] {

		case "s":
			if err := c.Step(); err != nil {
				return err
			}
			if !c.Halted() {
				if err := c.WriteFrame(out, 0); err != nil {
					return err
				}
			}

		case "c":
			for _, err := range c.Run {
				if err != nil {
					return err
				}
			}

		case "f":
			up := 0
			if len(fields) > 1 {
				up, err = strconv.Atoi(fields[1])
				if err != nil {
					fmt.Fprintf(out, "bad frame: %s\n", fields[1])
					continue
				}
			}
			if err := c.WriteFrame(out, up); err != nil {
				fmt.Fprintln(out, err)
			}

		case "k":
			if err := c.WriteStack(out); err != nil {
				return err
			}

		case "q":
			return nil

		default:
			fmt.Fprint(out, stepHelp)

		}
	}

	if res, ok := c.Result(); ok {
		fmt.Fprintf(out, "halted: %s\n", res)
	} else {
		fmt.Fprintln(out, "halted")
	}
	return nil
}
