// Package util hosts shared formatting helpers.
package util

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// PrettyXML re-indents an XML document for drill-down display. Malformed
// input is returned unchanged: the operator still needs to see whatever the
// legacy system stored.
func PrettyXML(in string) string {
	dec := xml.NewDecoder(strings.NewReader(in))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return in
		}
		// Drop whitespace-only text nodes so re-indentation is stable.
		if cd, ok := tok.(xml.CharData); ok && len(bytes.TrimSpace(cd)) == 0 {
			continue
		}
		// The encoder refuses to write the XML declaration itself.
		if pi, ok := tok.(xml.ProcInst); ok && pi.Target == "xml" {
			buf.WriteString("<?xml " + string(pi.Inst) + "?>")
			continue
		}
		if encodeErr := enc.EncodeToken(tok); encodeErr != nil {
			return in
		}
	}
	if err := enc.Flush(); err != nil {
		return in
	}
	return buf.String()
}
