package game

import "fmt"

// scriptedSource returns queued values in order.
type scriptedSource struct {
	values []int
}

func script(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		panic("scriptedSource: script exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedSource: value %d outside [0,%d)", v, n))
	}
	return v
}

// constSource always returns the same value modulo n.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }
