package fakejson

import "strconv"

// BuildRecord draws fields (name, text) pairs from src and appends the
// "array" key holding 0..arrayLen-1.
//
// A name that is already taken in the record (or that equals ArrayKey) gets
// a " (n)" suffix with the smallest free n >= 2, so the record always ends up
// with fields+1 keys.
func BuildRecord(src Source, fields, arrayLen int) Record {
	rec := make(Record, max(fields, 0)+1)
	for i := 0; i < fields; i++ {
		name := uniqueName(rec, src.Name())
		rec[name] = src.Text()
	}
	rec[ArrayKey] = Sequence(arrayLen)
	return rec
}

// Sequence returns the integers 0..n-1 in order. It never returns nil, so an
// empty sequence encodes as [] rather than null.
func Sequence(n int) []int {
	seq := make([]int, max(n, 0))
	for i := range seq {
		seq[i] = i
	}
	return seq
}

func uniqueName(rec Record, name string) string {
	if _, taken := rec[name]; !taken && name != ArrayKey {
		return name
	}
	for n := 2; ; n++ {
		candidate := name + " (" + strconv.Itoa(n) + ")"
		if _, taken := rec[candidate]; !taken {
			return candidate
		}
	}
}
