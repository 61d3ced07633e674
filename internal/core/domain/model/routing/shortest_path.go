package routing

import (
	"container/heap"
	"math"

	"dispatch/internal/core/domain/model/kernel"
)

// shortestPath runs Dijkstra's algorithm from start and returns the distance to
// end, or +Inf when end cannot be reached.
//
// Every adjacency key starts at +Inf and start is seeded at 0 even when it has
// no outgoing legs. The priority queue may hold several entries for the same
// location: instead of a decrease-key operation an improved distance is pushed
// again, and entries popped for an already finalized location are skipped. The
// first entry popped for a location carries its smallest distance, so skipping
// the rest is safe for non-negative weights.
//
// The search stops as soon as end is finalized.
func shortestPath(adjacency map[kernel.Location][]leg, start, end kernel.Location) float64 {
	dist := make(map[kernel.Location]float64, len(adjacency)+1)
	for loc := range adjacency {
		dist[loc] = math.Inf(1)
	}
	dist[start] = 0

	finalized := make(map[kernel.Location]bool, len(adjacency)+1)

	pq := make(distanceQueue, 0, len(adjacency)+1)
	heap.Push(&pq, &queueItem{location: start, distance: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*queueItem)
		current := item.location

		if finalized[current] {
			continue
		}
		finalized[current] = true

		if current.IsEqual(end) {
			break
		}

		for _, l := range adjacency[current] {
			// Route lengths saturate at MaxFloat64 so an overflowing sum stays reachable.
			candidate := math.Min(item.distance+l.distance, math.MaxFloat64)
			known, ok := dist[l.to]
			if !ok {
				known = math.Inf(1)
			}
			if candidate < known {
				dist[l.to] = candidate
				heap.Push(&pq, &queueItem{location: l.to, distance: candidate})
			}
		}
	}

	d, ok := dist[end]
	if !ok {
		return math.Inf(1)
	}
	return d
}

// queueItem is a (location, tentative distance) pair waiting in the queue.
type queueItem struct {
	location kernel.Location
	distance float64
}

// distanceQueue is a min-heap of queueItems ordered by distance.
type distanceQueue []*queueItem

func (pq distanceQueue) Len() int { return len(pq) }

func (pq distanceQueue) Less(i, j int) bool { return pq[i].distance < pq[j].distance }

func (pq distanceQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distanceQueue) Push(x any) { *pq = append(*pq, x.(*queueItem)) }

func (pq *distanceQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
