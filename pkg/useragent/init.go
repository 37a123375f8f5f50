package useragent

import "sort"

func init() {
	sort.SliceStable(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].orderHint < browserPatterns[j].orderHint
	})
}
