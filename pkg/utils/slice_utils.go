package utils

// UniqueInt64s 去除重复的 ID 并保持首次出现的顺序。
// 输入为 nil 时返回 nil。
func UniqueInt64s(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
