package service

// Rating bounds for host ratings
const (
	MinRating = 1
	MaxRating = 5
)

// ApplyRating folds one rating into a host's aggregate and returns the new
// average and count. A nil oldAverage means no ratings yet (oldCount 0).
//
// The mean is recomputed from (oldAverage, oldCount) rather than a stored
// sum. This drifts slightly under floating-point rounding over many updates
// and is the documented policy at this scale; do not replace it with a
// separate running sum.
func ApplyRating(oldAverage *float64, oldCount int, rating int) (float64, int, error) {
	if rating < MinRating || rating > MaxRating {
		return 0, 0, ErrInvalidRating
	}

	old := 0.0
	if oldAverage != nil {
		old = *oldAverage
	}

	newCount := oldCount + 1
	newAverage := (old*float64(oldCount) + float64(rating)) / float64(newCount)
	return newAverage, newCount, nil
}
