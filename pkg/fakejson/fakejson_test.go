package fakejson

import (
	"strconv"
)

// counterSource returns "Name 1", "Name 2", ... and matching texts.
type counterSource struct {
	n int
}

func (s *counterSource) Name() string {
	s.n++
	return "Name " + strconv.Itoa(s.n)
}

func (s *counterSource) Text() string {
	return "text " + strconv.Itoa(s.n)
}

// constSource always returns the same name, forcing collisions.
type constSource struct {
	name  string
	texts int
}

func (s *constSource) Name() string {
	return s.name
}

func (s *constSource) Text() string {
	s.texts++
	return "text " + strconv.Itoa(s.texts)
}
