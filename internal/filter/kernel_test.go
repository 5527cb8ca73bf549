package filter

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBoxKernelNormalized(t *testing.T) {
	for _, size := range []int{1, 3, 64, 256} {
		kernel := BoxKernel(size)
		if len(kernel) != size {
			t.Errorf("BoxKernel(%d) len = %d", size, len(kernel))
		}
		var sum float64
		for _, v := range kernel {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("BoxKernel(%d) sum = %v, want 1", size, sum)
		}
	}
}

func TestBoxKernelIdentity(t *testing.T) {
	if diff := cmp.Diff([]float64{1}, BoxKernel(0)); diff != "" {
		t.Errorf("BoxKernel(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestReflectIndex(t *testing.T) {
	// d c b a | a b c d | d c b a
	tests := []struct {
		j, n, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{-1, 4, 0},
		{-2, 4, 1},
		{-4, 4, 3},
		{-5, 4, 3},
		{4, 4, 3},
		{5, 4, 2},
		{8, 4, 0},
		{-9, 4, 0},
		{7, 1, 0},
	}
	for _, tt := range tests {
		if got := reflectIndex(tt.j, tt.n); got != tt.want {
			t.Errorf("reflectIndex(%d, %d) = %d, want %d", tt.j, tt.n, got, tt.want)
		}
	}
}

func TestMaximum1D(t *testing.T) {
	tests := []struct {
		name string
		src  []float64
		size int
		want []float64
	}{
		{"size one copies", []float64{0, 1, 0, 0}, 1, []float64{0, 1, 0, 0}},
		{"size zero copies", []float64{0, 1, 0}, 0, []float64{0, 1, 0}},
		// size 2 covers [i-1, i]
		{"size two", []float64{0, 1, 0, 0}, 2, []float64{0, 1, 1, 0}},
		// size 3 covers [i-1, i+1]
		{"size three", []float64{1, 0, 0, 0, 0}, 3, []float64{1, 1, 0, 0, 0}},
		{"empty", nil, 3, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Maximum1D(tt.src, tt.size)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Maximum1D mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUniform1D(t *testing.T) {
	tests := []struct {
		name string
		src  []float64
		size int
		want []float64
	}{
		{"constant stays constant", []float64{2, 2, 2, 2}, 3, []float64{2, 2, 2, 2}},
		// reflected edges: [0 | 0 3 0 | 0]
		{"size three", []float64{0, 3, 0}, 3, []float64{1, 1, 1}},
		// window larger than the line wraps through several reflections
		{"wide window", []float64{1, 0}, 8, []float64{0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Uniform1D(tt.src, tt.size)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Uniform1D mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUniform1DPreservesRange(t *testing.T) {
	src := []float64{0, 1, 1, 0, 1, 0, 0, 0, 1, 1}
	got := Uniform1D(src, 4)
	for i, v := range got {
		if v < 0 || v > 1 {
			t.Errorf("Uniform1D()[%d] = %v outside [0, 1]", i, v)
		}
	}
}
