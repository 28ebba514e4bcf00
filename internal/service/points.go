package service

// DistributePoints splits total evenly over n shares. The remainder goes one point
// each to the earliest shares, so the result always sums to total.
func DistributePoints(total, n int) []int {
	if n <= 0 {
		return nil
	}
	shares := make([]int, n)
	if total <= 0 {
		return shares
	}
	base, rest := total/n, total%n
	for i := range shares {
		shares[i] = base
		if i < rest {
			shares[i]++
		}
	}
	return shares
}
