//go:build compact_noassert

package compact

const assertions = false
