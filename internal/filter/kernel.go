package filter

// BoxKernel returns a uniform kernel of the given size.
// All weights are equal to 1/size. For size <= 0 it returns the identity
// kernel [1.0].
func BoxKernel(size int) []float64 {
	if size <= 0 {
		return []float64{1.0}
	}
	kernel := make([]float64, size)
	val := 1.0 / float64(size)
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

// reflectIndex maps any integer index onto [0, n) using half-sample
// symmetric reflection. The sequence has period 2n.
func reflectIndex(j, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	j %= period
	if j < 0 {
		j += period
	}
	if j >= n {
		j = period - 1 - j
	}
	return j
}

// Maximum1D returns the sliding-window maximum of src for a window of the
// given size. Sizes below 1 are treated as 1, which copies src.
func Maximum1D(src []float64, size int) []float64 {
	n := len(src)
	dst := make([]float64, n)
	if n == 0 {
		return dst
	}
	size = max(size, 1)
	lo := size / 2

	for i := range dst {
		m := src[reflectIndex(i-lo, n)]
		for k := 1; k < size; k++ {
			if v := src[reflectIndex(i-lo+k, n)]; v > m {
				m = v
			}
		}
		dst[i] = m
	}
	return dst
}

// Uniform1D returns src smoothed by a box kernel of the given size.
func Uniform1D(src []float64, size int) []float64 {
	return Convolve1D(src, BoxKernel(size))
}

// Convolve1D correlates src with kernel, centering the kernel with the same
// placement rule as Maximum1D.
func Convolve1D(src, kernel []float64) []float64 {
	n := len(src)
	dst := make([]float64, n)
	if n == 0 || len(kernel) == 0 {
		return dst
	}
	lo := len(kernel) / 2

	for i := range dst {
		var sum float64
		for k, w := range kernel {
			sum += w * src[reflectIndex(i-lo+k, n)]
		}
		dst[i] = sum
	}
	return dst
}
