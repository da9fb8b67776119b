package glucose

import (
	"math"

	"github.com/glucoach/glucoach/internal/domain"
)

// Aggregate computes the mean value and the largest positive
// adjacent-pair increase over a sequence of readings ordered ascending by
// date. The average is 0 for an empty sequence. The spike comparison is
// strict, so the first occurrence of the maximum delta wins ties; when no
// adjacent pair increases, the spike delta is 0 with nil endpoints.
func Aggregate(items []domain.Reading) (int, domain.Spike) {
	avg := 0
	if len(items) > 0 {
		sum := 0
		for _, r := range items {
			sum += r.Value
		}
		avg = int(math.Round(float64(sum) / float64(len(items))))
	}

	spike := domain.Spike{}
	for i := 1; i < len(items); i++ {
		d := items[i].Value - items[i-1].Value
		if d > spike.Delta {
			spike = domain.Spike{Delta: d, From: &items[i-1], To: &items[i]}
		}
	}
	return avg, spike
}
