package game

// Egg is one interactable nest egg.
type Egg struct {
	Name   string
	Box    Box
	Burned bool
}

// EggSet tracks burn state for every egg in the level.
type EggSet struct {
	Eggs []Egg
}

func NewEggSet(specs []BoxSpec) *EggSet {
	es := &EggSet{Eggs: make([]Egg, len(specs))}
	for i, s := range specs {
		es.Eggs[i] = Egg{Name: s.Name, Box: s.Box}
	}
	return es
}

// TryBurn burns every unburned egg touched by the sphere when interact is set.
// It returns the indices burned on this call.
func (es *EggSet) TryBurn(body Sphere, interact bool) []int {
	if !interact {
		return nil
	}
	var burned []int
	for i := range es.Eggs {
		e := &es.Eggs[i]
		if e.Burned || !body.Intersects(e.Box) {
			continue
		}
		e.Burned = true
		burned = append(burned, i)
	}
	return burned
}

// InReach returns the index of the first unburned egg the sphere touches, or -1.
func (es *EggSet) InReach(body Sphere) int {
	for i, e := range es.Eggs {
		if !e.Burned && body.Intersects(e.Box) {
			return i
		}
	}
	return -1
}

func (es *EggSet) BurnedCount() int {
	n := 0
	for _, e := range es.Eggs {
		if e.Burned {
			n++
		}
	}
	return n
}

// AllBurned is false for an empty set.
func (es *EggSet) AllBurned() bool {
	return len(es.Eggs) > 0 && es.BurnedCount() == len(es.Eggs)
}

func (es *EggSet) Reset() {
	for i := range es.Eggs {
		es.Eggs[i].Burned = false
	}
}
