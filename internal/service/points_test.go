package service_test

import (
	"testing"

	"github.com/limbo/mindwell/internal/service"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDistributePoints(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Total    int
		N        int
		Expected []int
	}{
		{Desc: "even split", Total: 70, N: 7, Expected: []int{10, 10, 10, 10, 10, 10, 10}},
		{Desc: "remainder to earliest", Total: 10, N: 3, Expected: []int{4, 3, 3}},
		{Desc: "fewer points than shares", Total: 2, N: 4, Expected: []int{1, 1, 0, 0}},
		{Desc: "no points", Total: 0, N: 3, Expected: []int{0, 0, 0}},
		{Desc: "negative pool", Total: -5, N: 2, Expected: []int{0, 0}},
		{Desc: "no shares", Total: 10, N: 0, Expected: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.DistributePoints(tc.Total, tc.N))
		})
	}
}

func TestDistributePointsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 10000).Draw(t, "total")
		n := rapid.IntRange(1, 100).Draw(t, "n")
		shares := service.DistributePoints(total, n)
		if len(shares) != n {
			t.Fatalf("got %d shares, want %d", len(shares), n)
		}
		sum := 0
		for i, s := range shares {
			sum += s
			if i > 0 && (s > shares[i-1] || shares[0]-s > 1) {
				t.Fatalf("uneven shares: %v", shares)
			}
		}
		if sum != total {
			t.Fatalf("shares sum to %d, want %d", sum, total)
		}
	})
}
