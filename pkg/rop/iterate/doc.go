// Package iterate provides Range, a restartable inclusive integer sequence,
// and ForEach, one callback-style loop over slices, ranges and key-value
// mappings.
//
//	for v := range iterate.From(-3).Values() {
//		fmt.Print(v, " ") // 0 -1 -2 -3
//	}
//
//	m := iterate.NewOrderedMap[string, string]().Set("one", "Uno").Set("two", "Dos")
//	_ = iterate.ForEach(func(v, k, _ any) { fmt.Println(k, v) }, m)
package iterate
