package practice

// SelectDistractors picks up to count wrong answers from pool.
//
// Entries equal to correct (case-insensitively) and blank entries are
// dropped, and duplicates are removed keeping the first spelling seen. The
// result follows pool order, so the same input always yields the same
// output; shuffle pool first for variety. A short pool yields a short
// result, never padding.
func SelectDistractors(correct string, pool []string, count int) []string {
	if count <= 0 {
		return nil
	}

	exclude := normalize(correct)
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, min(count, len(pool)))

	for _, candidate := range pool {
		key := normalize(candidate)
		if key == "" || key == exclude {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, candidate)
		if len(out) == count {
			break
		}
	}
	return out
}
