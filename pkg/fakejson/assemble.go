package fakejson

import (
	"fmt"
	"strings"
)

// Policy decides whether dataset slots share one record or get their own.
type Policy int

const (
	// PolicyShared builds one record and references it in every slot.
	PolicyShared Policy = iota
	// PolicyFresh builds an independent record per slot.
	PolicyFresh
)

func (p Policy) String() string {
	switch p {
	case PolicyShared:
		return "shared"
	case PolicyFresh:
		return "fresh"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "shared" or "fresh", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared":
		return PolicyShared, nil
	case "fresh":
		return PolicyFresh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Options tune Assemble.
type Options struct {
	Policy Policy
	// OnRecord, if set, is called once per slot after it is filled.
	OnRecord func(index int)
}

// Assemble builds shape.Elements records from src according to opts.Policy.
func Assemble(src Source, shape Shape, opts Options) (Dataset, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	ds := make(Dataset, 0, shape.Elements)
	switch opts.Policy {
	case PolicyShared:
		var shared Record
		for i := 0; i < shape.Elements; i++ {
			if shared == nil {
				shared = BuildRecord(src, shape.Fields, shape.ArrayLen)
			}
			ds = append(ds, shared)
			notify(opts.OnRecord, i)
		}
	case PolicyFresh:
		for i := 0; i < shape.Elements; i++ {
			ds = append(ds, BuildRecord(src, shape.Fields, shape.ArrayLen))
			notify(opts.OnRecord, i)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, opts.Policy)
	}

	return ds, nil
}

func notify(fn func(int), i int) {
	if fn != nil {
		fn(i)
	}
}
