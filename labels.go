// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2scatter

import "fmt"

// Alphabet holds every letter a label can be drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxLabels is the largest number of distinct labels DistinctLabels can produce.
const MaxLabels = len(Alphabet)

// DistinctLabels returns count pairwise distinct single-letter labels in the order they
// were drawn. Each draw picks upper or lower case with equal probability and a letter
// uniformly within the case. A count of zero or less yields an empty slice.
//
// It panics if count exceeds MaxLabels, since the letters would run out.
func (s *Sampler) DistinctLabels(count int) []string {
	if count > MaxLabels {
		panic(fmt.Sprintf("DistinctLabels: count %d exceeds %d", count, MaxLabels))
	}
	if count < 0 {
		count = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	labels := make([]string, 0, count)
	seen := make(map[byte]bool, count)
	for len(labels) < count {
		c := s.randomLetter()
		if seen[c] {
			continue
		}
		seen[c] = true
		labels = append(labels, string(c))
	}
	return labels
}

func (s *Sampler) randomLetter() byte {
	n := s.rnd.Intn(MaxLabels)
	if n < 26 {
		return byte('A' + n)
	}
	return byte('a' + n%26)
}
