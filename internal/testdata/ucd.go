package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader returns a reader for the given UCD fixture file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns the path of the given UCD fixture file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}

// GroupedXML is the name of the miniature grouped UCD document used by the
// extractor and generator tests. It mimics the structure of
// ucd.nounihan.grouped.xml on a small repertoire.
const GroupedXML = "ucd.test.grouped.xml"
