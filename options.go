package bidi

import "github.com/npillmayer/schuko/tracing"

// config holds the resolved effect of a Reorder call's options.
type config struct {
	level        int  // explicit paragraph level, or -1 for auto-detect (P2/P3)
	uppercaseRTL bool // test mode: treat uppercase letters as strong R
	tracer       tracing.Trace
}

func defaultConfig() *config {
	return &config{level: -1}
}

// Option configures a Reorder/ReorderString/ReorderLines call.
type Option func(*config)

// WithParagraphLevel overrides P2/P3's auto-detected paragraph embedding
// level. level must be 0 or 1.
func WithParagraphLevel(level int) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithUppercaseAsRTL treats uppercase letters (any rune for which
// unicode.IsUpper reports true, not only Latin ones) as strong R
// characters regardless of their Unicode class, for exercising RTL
// behavior with plain ASCII test fixtures. Mirrors the teacher's
// Testing(bool) scanner option and getBaseLevel's upperIsRTL parameter.
func WithUppercaseAsRTL(b bool) Option {
	return func(c *config) {
		c.uppercaseRTL = b
	}
}

// WithTracer installs the tracer a call writes its Debugf output to: one
// line reporting the paragraph level. Individual rule applications are
// not traced. The default is the package tracer T().
func WithTracer(t tracing.Trace) Option {
	return func(c *config) {
		c.tracer = t
	}
}
