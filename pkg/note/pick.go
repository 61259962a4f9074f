package note

import "english-drill/pkg/domain"

// Rand is the source of random indexes.
type Rand interface {
	Intn(n int) int
}

// PickReading returns one random item, or false when items is empty.
func PickReading(rng Rand, items []domain.ContentRecord) (domain.ContentRecord, bool) {
	if len(items) == 0 {
		return domain.ContentRecord{}, false
	}
	return items[rng.Intn(len(items))], true
}

// ListeningCount is how many listening links a note lists.
const ListeningCount = 2

// PickListening returns n distinct random items, or all of them when there are n or fewer.
// items is not modified.
func PickListening(rng Rand, items []domain.ContentRecord, n int) []domain.ContentRecord {
	shuffled := append([]domain.ContentRecord(nil), items...)
	if len(shuffled) <= n {
		return shuffled
	}

	// partial Fisher-Yates: the first n slots end up uniformly sampled
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}
