/*
Package trie compresses a flat per-codepoint value array into a multi-stage
lookup trie.

Content

A lookup trie splits a codepoint into bit fields, one per stage. The root
stage is indexed by the high bits directly; every further stage is indexed by
the previous stage's result plus a masked bit field. The leaf stage holds the
packed per-codepoint values.

Stages are compressed chunk-wise: identical chunks are stored once, chunks
that already occur inside the stage at an element-aligned position are reused
in place, and new chunks are fused with the stage's tail where prefix and
suffix overlap. The best combination of per-stage chunk sizes is not known in
advance, so the builder enumerates all shift configurations within given
bounds, builds every candidate concurrently, and keeps the smallest trie.

The trie is suitable for write-once-read-many-times situations: spend effort
at build time, look up in constant time forever after.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ucdgen.trie'.
func tracer() tracing.Trace {
	return tracing.Select("ucdgen.trie")
}
