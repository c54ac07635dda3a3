package game

// CardSet holds distinct card values in 1..max. Iteration is always ascending.
type CardSet struct {
	present []bool
	size    int
}

// NewCardSet returns a set holding every value in lo..hi that also fits in 1..maxValue.
func NewCardSet(maxValue, lo, hi int) CardSet {
	cs := CardSet{present: make([]bool, maxValue+1)}
	for v := lo; v <= hi; v++ {
		if v >= 1 && v <= maxValue {
			cs.present[v] = true
			cs.size++
		}
	}
	return cs
}

func (cs CardSet) Has(v int) bool {
	return v >= 0 && v < len(cs.present) && cs.present[v]
}

// Remove deletes v and reports whether it was present.
func (cs *CardSet) Remove(v int) bool {
	if !cs.Has(v) {
		return false
	}
	cs.present[v] = false
	cs.size--
	return true
}

func (cs CardSet) Len() int {
	return cs.size
}

// Values returns a snapshot of the set in ascending order.
func (cs CardSet) Values() []int {
	values := make([]int, 0, cs.size)
	for v, ok := range cs.present {
		if ok {
			values = append(values, v)
		}
	}
	return values
}

// Max returns the largest value in the set, or 0 when empty.
func (cs CardSet) Max() int {
	for v := len(cs.present) - 1; v > 0; v-- {
		if cs.present[v] {
			return v
		}
	}
	return 0
}

func (cs CardSet) Copy() CardSet {
	present := make([]bool, len(cs.present))
	copy(present, cs.present)
	return CardSet{present: present, size: cs.size}
}

// hasFactorIn reports whether some proper divisor of v is in set.
func hasFactorIn(v int, set CardSet) bool {
	for d := 1; d <= v/2; d++ {
		if v%d == 0 && set.Has(d) {
			return true
		}
	}
	return false
}

// hasMultipleIn reports whether some v*k (k >= 2, v*k <= bound) is in set.
func hasMultipleIn(v, bound int, set CardSet) bool {
	if v <= 0 {
		return false
	}
	for k := 2; k <= bound/v; k++ {
		if set.Has(v * k) {
			return true
		}
	}
	return false
}
