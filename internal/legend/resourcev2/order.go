package resourcev2

// ReconcileOrder orders members by the declared ids first, then appends the
// remaining members in their discovery order. Declared ids with no matching
// member are dropped and no id is emitted twice.
func ReconcileOrder(declared, members []string) []string {
	pending := make(map[string]int, len(members))
	for _, id := range members {
		pending[id]++
	}
	ordered := make([]string, 0, len(members))
	for _, id := range declared {
		if pending[id] == 0 {
			continue
		}
		ordered = append(ordered, id)
		delete(pending, id)
	}
	for _, id := range members {
		if pending[id] == 0 {
			continue
		}
		ordered = append(ordered, id)
		delete(pending, id)
	}
	return ordered
}
