package Trees

import "github.com/emirpasic/gods/utils"

// GodsComparator adapts a comparator from github.com/emirpasic/gods/utils, such as utils.IntComparator or
// utils.TimeComparator, to the comparator taken by the constructors. Returns nil for a nil c.
func GodsComparator[K any](c utils.Comparator) func(K, K) int {
	if c == nil {
		return nil
	}
	return func(a, b K) int {
		return c(a, b)
	}
}
