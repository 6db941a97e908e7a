package dictheap

import "fmt"

// CheckInvariants verifies heap order and that the key index is the exact
// inverse of the heap array.
func (hp *Heap[K, V]) CheckInvariants() error {
	items := hp.h.items
	if len(hp.h.index) != len(items) {
		return fmt.Errorf("index has %d keys, heap has %d items", len(hp.h.index), len(items))
	}
	for i, e := range items {
		if j, ok := hp.h.index[e.key]; !ok || j != i {
			return fmt.Errorf("index[%v] = %d (present=%v), want %d", e.key, j, ok, i)
		}
		if i > 0 {
			parent := (i - 1) / 2
			if hp.h.less(e.value, items[parent].value) {
				return fmt.Errorf("slot %d (%v) orders before its parent %d (%v)", i, e.value, parent, items[parent].value)
			}
		}
	}
	return nil
}
