package irreps

// GroupDegenerate chains modes into degenerate blocks. Frequencies must be
// sorted ascending; consecutive modes join one block while the gap to the
// previous mode stays within tol. Every mode lands in exactly one block,
// order preserved.
func GroupDegenerate(freqs []float64, tol float64) [][]int {
	if len(freqs) == 0 {
		return nil
	}

	blocks := [][]int{{0}}
	for i := 1; i < len(freqs); i++ {
		if freqs[i]-freqs[i-1] <= tol {
			last := len(blocks) - 1
			blocks[last] = append(blocks[last], i)
			continue
		}
		blocks = append(blocks, []int{i})
	}
	return blocks
}
