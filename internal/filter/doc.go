// Package filter provides one-dimensional rank and smoothing filters used to
// shape the lookup table of noise gradients.
//
// Window placement and boundary handling follow the conventions of
// scipy.ndimage: a window of size n centered on sample i covers
// [i - n/2, i + n - 1 - n/2], and samples outside the line are taken from the
// half-sample symmetric reflection (d c b a | a b c d | d c b a).
package filter
