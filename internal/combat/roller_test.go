package combat_test

import (
	"fmt"
)

// sequenceRoller returns queued results in order.
type sequenceRoller struct {
	results []int
	err     error
}

func (r *sequenceRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.results) == 0 {
		return 0, fmt.Errorf("no more results queued for d%d", size)
	}
	v := r.results[0]
	r.results = r.results[1:]
	return v, nil
}

func (r *sequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
