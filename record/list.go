package record

import (
	"context"
	"fmt"
	"strconv"

	gorecord "github.com/reoring/gorecord"
)

// ListOf returns a coercer producing an ordered sequence whose elements are
// each coerced and validated by elem. The result is always a fresh slice,
// never aliasing caller-supplied storage, preserving input order and length.
func ListOf(elem Coercer) Coercer {
	if elem == nil {
		panic("record: ListOf(nil)")
	}
	return listCoercer{elem: elem}
}

type listCoercer struct{ elem Coercer }

func (c listCoercer) Coerce(ctx context.Context, v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected sequence, got %T", v)}}
	}
	out := make([]any, 0, len(src))
	for i, item := range src {
		ev, err := c.elem.Coerce(ctx, item)
		if err != nil {
			return nil, gorecord.PrefixIssues("/"+strconv.Itoa(i), gorecord.CodeCoercion, err)
		}
		out = append(out, ev)
	}
	return out, nil
}
