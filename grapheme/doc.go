/*
Package grapheme holds the simplified UAX#29 grapheme join rules and their
2-bit packed encoding.

Content

Full UAX#29 grapheme breaking needs unbounded lookbehind for a handful of
rules. For a terminal that is deliberately traded away: joining is decided by
looking at one leading and one trailing cluster-break class plus a single
state bit that tracks regional-indicator pairing. The resulting pair tables
are packed into two arrays of 16 32-bit words, two bits per trailing class,
and the emitted accessor routines walk them with a shift and a mask.

The simplifications, spelled out:

  - GB9c joins "× Linker" and "Linker × Consonant" without requiring a
    leading Consonant or an intervening Extend/Linker run.
  - GB11 joins "ZWJ × ExtPic" without requiring a leading ExtPic.
  - GB12/GB13 pair regional indicators greedily and then break, which is
    asymmetric on odd-length RI runs.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grapheme
