package synth

import "shopnorm/pkg/enums"

var orderStatusDist = mustWeighted(
	enums.OrderStatuses(),
	[]float64{0.03, 0.05, 0.05, 0.07, 0.70, 0.05, 0.05},
)

// AssignOrderStatuses draws one lifecycle status per order. The order's
// status is independent of its shipping record's status.
func AssignOrderStatuses(r *Rand, n int) []enums.OrderStatus {
	statuses := make([]enums.OrderStatus, n)
	for i := range statuses {
		statuses[i] = orderStatusDist.Draw(r)
	}
	return statuses
}
