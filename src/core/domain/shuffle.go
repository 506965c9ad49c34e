package domain

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"time"
)

// RatingOrder returns the order in which rater should be shown their
// teammates. The shuffle is Fisher-Yates seeded from the rater's name and the
// given day (UTC), so the same player sees the same order all day while
// different players and different days get independent permutations.
//
// The rater themself is filtered out of the result.
func RatingOrder(rater string, names []string, day time.Time) []string {
	order := make([]string, 0, len(names))
	for _, n := range names {
		if n == rater {
			continue
		}
		order = append(order, n)
	}
	// Canonical starting arrangement, so the result does not depend on the
	// order the caller happened to pass names in.
	sort.Strings(order)

	rng := rand.New(rand.NewSource(orderSeed(rater, day)))
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// orderSeed hashes "rater|YYYY-MM-DD" with FNV-1a.
func orderSeed(rater string, day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(rater))
	h.Write([]byte("|"))
	h.Write([]byte(day.UTC().Format("2006-01-02")))
	return int64(h.Sum64())
}
