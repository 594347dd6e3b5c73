/*
Package ucdgen is the home of a build-time table generator for terminal text
engines.

Content

The generator consumes the Unicode Character Database (the grouped XML
distribution, "ucd.nounihan.grouped.xml") and emits a compact, constant-time
lookup module: a handful of read-only trie stage tables that map every Unicode
scalar value to an 8-bit packed value (grapheme cluster-break class plus East
Asian display width), two packed join-rule words per cluster-break class, and
four small inline accessor routines.

The interesting part is not the XML plumbing but the compression pipeline.
Package trie searches a space of multi-stage trie configurations, compressing
each stage by chunk deduplication, aligned substring reuse and tail-overlap
fusion, and keeps the smallest result. Package grapheme holds the simplified
UAX#29 pair table and packs it into 2-bit transition cells. Package ucd folds
the UCD repertoire into the dense per-codepoint value array that feeds the
trie.

The command itself lives in internal/generator:

   generator <path-to-ucd.nounihan.grouped.xml>  > table.g.h

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdgen
