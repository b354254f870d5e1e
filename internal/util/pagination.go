package util

// CalculateTotalPage returns ceil(totalItems / pageSize). Callers reject
// pageSize <= 0 before paginating, so a non-positive page size reports zero
// pages instead of dividing by zero.
func CalculateTotalPage(totalItems int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}
