package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span of ctx to err.
func WrapSpan(ctx context.Context, err error) error {
	span := SpanOf(ctx)
	if err == nil || span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
