package median_test

import (
	"fmt"

	"github.com/rollingstats-go/rollingstats-go/median"
)

func ExampleMedian() {
	tracker := median.New[float64]()

	for _, value := range []float64{3.27, 4.60, 5.95, 9.93, 7.79, 4.73, 3.33, 6.35, 4.97, 4.06} {
		if err := tracker.Push(value); err != nil {
			panic(err)
		}
	}

	fmt.Printf("%.2f\n", tracker.Value().Unwrap())
	// Output: 4.85
}
