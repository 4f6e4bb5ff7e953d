package irreps

// PairConsecutive partitions n ordered modes into consecutive groups of
// exactly dim modes. A trailing remainder smaller than dim forms its own
// undersized group; the caller is expected to flag it low-confidence.
// Used when a table's smallest irrep is multi-dimensional, so single
// modes cannot satisfy any projection.
func PairConsecutive(n, dim int) [][]int {
	if n <= 0 || dim <= 0 {
		return nil
	}

	blocks := make([][]int, 0, (n+dim-1)/dim)
	for start := 0; start < n; start += dim {
		end := start + dim
		if end > n {
			end = n
		}
		group := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			group = append(group, i)
		}
		blocks = append(blocks, group)
	}
	return blocks
}
