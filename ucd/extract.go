package ucd

import (
	"fmt"
	"strings"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
)

// charRecord is one char entry with all attributes resolved against its
// enclosing group.
type charRecord struct {
	from, to rune
	gc       string // general category
	gcb      string // Grapheme_Cluster_Break
	incb     string // Indic_Conjunct_Break
	extPict  string // Extended_Pictographic
	ea       string // East_Asian_Width
}

// Extract folds a UCD document into the dense value array. Every codepoint
// starts out as (Other, Narrow); char entries overwrite their range in
// document order. Any attribute value outside the expected UCD vocabulary is
// a fatal data error.
func Extract(doc *Document) (ValueArray, error) {
	start := time.Now()
	records := flatten(doc)
	values := NewValueArray()
	for it := records.Iterator(); it.Next(); {
		rec := it.Value().(charRecord)
		v, err := packRecord(&rec)
		if err != nil {
			return nil, err
		}
		fill(values, rec.from, rec.to, v)
	}
	overrideConventions(values)
	tracer().Infof("extracted %d char records in %s", records.Size(), time.Since(start))
	return values, nil
}

// flatten resolves group inheritance and collects all char entries in
// document order.
func flatten(doc *Document) *arraylist.List {
	records := arraylist.New()
	for g := range doc.Repertoire.Groups {
		group := &doc.Repertoire.Groups[g]
		for c := range group.Chars {
			char := &group.Chars[c]
			from, to := char.Range()
			records.Add(charRecord{
				from:    from,
				to:      to,
				gc:      inherit(char.GeneralCategory, group.GeneralCategory),
				gcb:     inherit(char.GraphemeClusterBreak, group.GraphemeClusterBreak),
				incb:    inherit(char.IndicConjunctBreak, group.IndicConjunctBreak),
				extPict: inherit(char.ExtendedPictographic, group.ExtendedPictographic),
				ea:      inherit(char.EastAsian, group.EastAsian),
			})
		}
	}
	return records
}

// packRecord maps the UCD attributes of one record to a packed value.
func packRecord(rec *charRecord) (PackedValue, error) {
	cb, err := clusterBreakOf(rec)
	if err != nil {
		return 0, err
	}
	w, err := widthOf(rec)
	if err != nil {
		return 0, err
	}
	return Pack(cb, w), nil
}

// clusterBreakOf maps GCB to a cluster-break class and applies the ExtPict
// and InCB overlays, in that order.
func clusterBreakOf(rec *charRecord) (ClusterBreak, error) {
	var cb ClusterBreak
	switch rec.gcb {
	case "XX": // anything else
		cb = BreakOther
	case "CR", "LF", "CN": // carriage return, line feed, control
		// GB3 (CR × LF) is deliberately not honored: a terminal stores
		// CR and LF in separate cells anyway.
		cb = BreakControl
	case "EX", "SM": // Extend, SpacingMark
		cb = BreakExtend
	case "PP": // Prepend
		cb = BreakPrepend
	case "ZWJ": // zero width joiner
		cb = BreakZWJ
	case "RI": // regional indicator
		cb = BreakRI
	case "L":
		cb = BreakHangulL
	case "V":
		cb = BreakHangulV
	case "T":
		cb = BreakHangulT
	case "LV":
		cb = BreakHangulLV
	case "LVT":
		cb = BreakHangulLVT
	default:
		return 0, fmt.Errorf("unrecognized GCB %q for %U to %U", rec.gcb, rec.from, rec.to)
	}
	if rec.extPict == "Y" {
		// Every Extended_Pictographic codepoint is GCB=XX, which lets us
		// treat ExtPic as an additional cluster-break class.
		if cb != BreakOther {
			return 0, fmt.Errorf("unexpected GCB %q with ExtPict=Y for %U to %U", rec.gcb, rec.from, rec.to)
		}
		cb = BreakExtPic
	}
	switch rec.incb {
	case "None", "Extend":
		// InCB=Extend is covered by GCB=EX already.
	case "Linker":
		if cb != BreakExtend {
			return 0, fmt.Errorf("unexpected GCB %q with InCB=Linker for %U to %U", rec.gcb, rec.from, rec.to)
		}
		cb = BreakInCBLinker
	case "Consonant":
		if cb != BreakOther {
			return 0, fmt.Errorf("unexpected GCB %q with InCB=Consonant for %U to %U", rec.gcb, rec.from, rec.to)
		}
		cb = BreakInCBConsonant
	default:
		return 0, fmt.Errorf("unrecognized InCB %q for %U to %U", rec.incb, rec.from, rec.to)
	}
	return cb, nil
}

// widthOf maps East_Asian_Width to a width class. Marks (gc=M*) and format
// controls (gc=Cf) have no cell width of their own, regardless of their ea
// attribute.
func widthOf(rec *charRecord) (CharacterWidth, error) {
	var w CharacterWidth
	switch rec.ea {
	case "N", "Na", "H": // neutral, narrow, halfwidth
		w = WidthNarrow
	case "F", "W": // fullwidth, wide
		w = WidthWide
	case "A": // ambiguous
		w = WidthAmbiguous
	default:
		return 0, fmt.Errorf("unrecognized ea %q for %U to %U", rec.ea, rec.from, rec.to)
	}
	if strings.HasPrefix(rec.gc, "M") || rec.gc == "Cf" {
		w = WidthZero
	}
	return w, nil
}

// overrideConventions applies terminal conventions that diverge from the UCD
// after all char entries have been processed.
func overrideConventions(values ValueArray) {
	// Box-drawing and block elements are Ambiguous per UCD, but terminals
	// always render them Narrow.
	fill(values, 0x2500, 0x259f, Pack(BreakOther, WidthNarrow))
	// U+FE0F VARIATION SELECTOR-16 qualifies a preceding emoji and widens it.
	fill(values, 0xfe0f, 0xfe0f, Pack(BreakExtend, WidthWide))
}

func fill(values ValueArray, from, to rune, v PackedValue) {
	for cp := from; cp <= to; cp++ {
		values[cp] = v
	}
}
