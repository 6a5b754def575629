package fakejson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/buger/jsonparser"
)

// VerifyError describes the first structural violation found in a document.
// Index is -1 when the problem concerns the document as a whole.
type VerifyError struct {
	Index  int
	Reason string
}

func (e *VerifyError) Error() string {
	if e.Index < 0 {
		return "invalid document: " + e.Reason
	}
	return fmt.Sprintf("invalid element %d: %s", e.Index, e.Reason)
}

// Verify reads a whole document from r and checks it against shape and policy.
func Verify(r io.Reader, shape Shape, policy Policy) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return VerifyBytes(data, shape, policy)
}

// VerifyBytes checks that data is an array of exactly shape.Elements objects,
// each holding shape.Fields string values plus an "array" key equal to
// [0..shape.ArrayLen-1]. Under PolicyShared all elements must also be
// byte-identical. Nothing but whitespace may follow the array, and no object
// may repeat a key.
//
// The "array" items must be written as plain integers: 1.0 or 1e0 are
// rejected even though they equal 1.
func VerifyBytes(data []byte, shape Shape, policy Policy) error {
	if err := shape.Validate(); err != nil {
		return err
	}

	_, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return &VerifyError{Index: -1, Reason: err.Error()}
	}
	if dataType != jsonparser.Array {
		return &VerifyError{Index: -1, Reason: fmt.Sprintf("top-level value is %s, want array", dataType)}
	}
	if trailing := bytes.TrimLeft(data[end:], " \t\r\n"); len(trailing) > 0 {
		return &VerifyError{Index: -1, Reason: fmt.Sprintf("unexpected data after top-level array at offset %d", len(data)-len(trailing))}
	}

	var (
		count  int
		first  []byte
		failed error
	)
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if failed != nil {
			return
		}
		index := count
		count++

		if err != nil {
			failed = &VerifyError{Index: index, Reason: err.Error()}
			return
		}
		if err := verifyRecord(value, dataType, shape); err != nil {
			failed = &VerifyError{Index: index, Reason: err.Error()}
			return
		}
		if policy == PolicyShared {
			if first == nil {
				first = value
			} else if !bytes.Equal(first, value) {
				failed = &VerifyError{Index: index, Reason: "differs from element 0 under shared policy"}
			}
		}
	})
	if failed != nil {
		return failed
	}
	if err != nil {
		return &VerifyError{Index: -1, Reason: err.Error()}
	}
	if count != shape.Elements {
		return &VerifyError{Index: -1, Reason: fmt.Sprintf("got %d elements, want %d", count, shape.Elements)}
	}
	return nil
}

func verifyRecord(value []byte, dataType jsonparser.ValueType, shape Shape) error {
	if dataType != jsonparser.Object {
		return fmt.Errorf("value is %s, want object", dataType)
	}

	seen := make(map[string]struct{}, shape.Fields+1)
	sawArray := false
	// ObjectEach hands over keys already unescaped.
	err := jsonparser.ObjectEach(value, func(k, val []byte, dataType jsonparser.ValueType, _ int) error {
		key := string(k)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = struct{}{}

		if key == ArrayKey {
			sawArray = true
			return verifySequence(val, dataType, shape.ArrayLen)
		}
		if dataType != jsonparser.String {
			return fmt.Errorf("value of %q is %s, want string", key, dataType)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !sawArray {
		return errors.New(`missing "array" key`)
	}
	if len(seen) != shape.Fields+1 {
		return fmt.Errorf("got %d keys, want %d", len(seen), shape.Fields+1)
	}
	return nil
}

func verifySequence(value []byte, dataType jsonparser.ValueType, want int) error {
	if dataType != jsonparser.Array {
		return fmt.Errorf(`"array" is %s, want array`, dataType)
	}

	next := 0
	var failed error
	_, err := jsonparser.ArrayEach(value, func(item []byte, dataType jsonparser.ValueType, _ int, err error) {
		if failed != nil {
			return
		}
		if err != nil {
			failed = err
			return
		}
		if dataType != jsonparser.Number {
			failed = fmt.Errorf(`"array"[%d] is %s, want number`, next, dataType)
			return
		}
		n, err := jsonparser.ParseInt(item)
		if err != nil || n != int64(next) {
			failed = fmt.Errorf(`"array"[%d] is %s, want %d`, next, item, next)
			return
		}
		next++
	})
	if failed != nil {
		return failed
	}
	if err != nil {
		return err
	}
	if next != want {
		return fmt.Errorf(`"array" has %d items, want %d`, next, want)
	}
	return nil
}
