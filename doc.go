/*
Package bidi implements the Unicode Bidirectional Algorithm, UAX#9
revision 28. It takes a single paragraph of text in logical (memory)
order and computes the permutation required to display it on a renderer
that lays out glyphs strictly left-to-right, honoring explicit
embedding/override/isolate controls and the weak, neutral, bracket-pair,
and implicit resolution rules.

Attention: this package processes one paragraph at a time. Splitting
multi-paragraph text at class B characters, line-breaking, and glyph
mirroring (rule L4) are the caller's responsibility.

Usage

	visual, err := bidi.ReorderString("He said ⁨مرحبا⁩ today", nil)

Pipeline

Resolution runs in the stages UAX#9 itself defines: classification (a
thin wrapper over golang.org/x/text/unicode/bidi's class table),
isolate-pair matching (BD9), paragraph-level detection (P2/P3),
explicit-level resolution with overflow handling (X1-X8), embedding/
override neutralization (X9), level-run partitioning and isolating-run-
sequence construction (BD13/X10), the weak/bracket-pair/neutral rules
(W1-W7, N0-N2) and implicit rules (I1/I2) run per sequence, line-level
reset (L1), and finally level-based reordering (L2).

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"

// MaxDepth is the deepest explicit embedding/override/isolate level X1-X8
// will push to before treating further nesting as overflow (UAX#9's
// max_depth).
const MaxDepth = 125
