package vm

import (
	"fmt"
	"io"
)

// WriteFrame renders the instruction listing of the frame up levels below the
// current one, marking the instruction at its program counter with '*'.
func (c *Context) WriteFrame(w io.Writer, up int) error {
	frame, ok := c.Frame(up)
	if !ok {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfBounds, up, len(c.frames))
	}
	if _, err := fmt.Fprintf(w, "frame %d ops: %s\n", len(c.frames)-1-up, frame.Name()); err != nil {
		return err
	}
	insts, decodeErr := Decode(frame.Code)
	for _, inst := range insts {
		marker := "  "
		if inst.Offset == frame.PC {
			marker = "* "
		}
		if _, err := fmt.Fprintf(w, "%s%3d %s\n", marker, inst.Offset, inst.Format(frame.Env)); err != nil {
			return err
		}
	}
	if decodeErr != nil {
		if _, err := fmt.Fprintf(w, "  ! %v\n", decodeErr); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) WriteStack(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "stack:"); err != nil {
		return err
	}
	for _, v := range c.stack[:c.sp] {
		if _, err := fmt.Fprintln(w, "  "+v.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
