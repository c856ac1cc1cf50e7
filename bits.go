package cbtree

import "math/bits"

// metricInfinite is what commonPrefixBits/commonPrefixBitsStr return when
// the byte-by-byte comparison runs all the way through both operands
// without ever finding a differing bit: the two are a full, exact match
// of each other's content, not merely a prefix of one another. It must
// outrank every finite common-prefix length, since an exact match is a
// later divergence than any real one — otherwise a node holding the
// searched-for key outright can look less promising than a sibling that
// merely shares a shorter prefix with it, and the descent picks the
// wrong branch or breaks off as a mismatch even though the key is right
// there.
const metricInfinite Metric = ^Metric(0)

// commonPrefixBits returns a divergence metric for a and b: the number of
// leading bits they have in common, treating any position past the end
// of the shorter slice as a zero byte. That padding is what lets one
// flavor handle both fixed-width blocks (where a and b are always the
// same length) and variable-length byte strings, where it reproduces the
// effect of the original C sources' NUL-terminated comparison without
// requiring an actual terminator: a prefix and its extension still
// diverge at a defined point, the byte where the shorter one runs out.
// When no divergence is found at all — a and b agree over their entire
// compared length — metricInfinite is returned instead of a bit count.
func commonPrefixBits(a, b []byte) Metric {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		if ca != cb {
			return Metric(i*8 + bits.LeadingZeros8(ca^cb))
		}
	}
	return metricInfinite
}

// commonPrefixBitsStr is commonPrefixBits specialized for strings, so
// comparing string keys never needs a []byte conversion.
func commonPrefixBitsStr(a, b string) Metric {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		if ca != cb {
			return Metric(i*8 + bits.LeadingZeros8(ca^cb))
		}
	}
	return metricInfinite
}
