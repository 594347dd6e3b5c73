/*
Package ucd folds the Unicode Character Database into a dense per-codepoint
value array.

Content

The package reads the grouped XML distribution of the UCD
("ucd.nounihan.grouped.xml") and produces one 8-bit packed value per Unicode
scalar value. The low nibble of a packed value carries the grapheme
cluster-break class, the top two bits the East Asian display width. Every
attribute a char entry does not carry itself is inherited from its enclosing
group, as defined by the grouped XML format.

The resulting value array is the input of the trie compression in package
trie. It is built once and read-only afterwards.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ucdgen.ucd'.
func tracer() tracing.Trace {
	return tracing.Select("ucdgen.ucd")
}
