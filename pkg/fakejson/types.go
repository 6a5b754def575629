// Package fakejson builds synthetic JSON test documents: an array of objects
// mapping fake display names to fake paragraph text, each object also
// carrying an "array" key with the integers 0..K-1.
package fakejson

import "fmt"

// ArrayKey is the fixed key every record carries next to its generated fields.
const ArrayKey = "array"

// Record is one generated JSON object.
type Record map[string]any

// Dataset is the ordered sequence of records forming the output document.
type Dataset []Record

// Shape holds the sizes of a dataset.
type Shape struct {
	Elements int `json:"elements"`  // number of records in the top-level array
	Fields   int `json:"fields"`    // generated name->text pairs per record
	ArrayLen int `json:"array_len"` // length of each record's "array" value
}

// Validate rejects negative sizes. Zero is allowed everywhere.
func (s Shape) Validate() error {
	switch {
	case s.Elements < 0:
		return fmt.Errorf("%w: elements must be >= 0, got %d", ErrInvalidShape, s.Elements)
	case s.Fields < 0:
		return fmt.Errorf("%w: fields must be >= 0, got %d", ErrInvalidShape, s.Fields)
	case s.ArrayLen < 0:
		return fmt.Errorf("%w: array length must be >= 0, got %d", ErrInvalidShape, s.ArrayLen)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%d elements x %d fields, array[%d]", s.Elements, s.Fields, s.ArrayLen)
}
