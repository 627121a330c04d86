package world

import "sort"

// RoomDistance pairs two rooms with the distance between their centers.
type RoomDistance struct {
	A, B     Room
	Distance float64
}

// SortedDistances returns every unordered pair of rooms ordered by ascending
// center distance. Pairs at equal distance keep the order in which they were
// generated (i < j, row by row), so the result is deterministic.
func SortedDistances(rooms []Room) []RoomDistance {
	if len(rooms) < 2 {
		return nil
	}

	pairs := make([]RoomDistance, 0, len(rooms)*(len(rooms)-1)/2)
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			pairs = append(pairs, RoomDistance{
				A:        rooms[i],
				B:        rooms[j],
				Distance: rooms[i].DistanceTo(rooms[j]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Distance < pairs[j].Distance
	})
	return pairs
}
