package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Check prints the header row as read in UTF-8 and in Latin-1, followed by
// up to rows data rows. It is used to spot mis-encoded exports.
func Check(w io.Writer, raw []byte, rows int) error {
	utf8Table, err := ReadTable(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if err := printJSON(w, "Headers (UTF-8):", utf8Table.Headers); err != nil {
		return err
	}

	latin1, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return fmt.Errorf("failed to decode latin1: %w", err)
	}
	latin1Table, err := ReadTable(bytes.NewReader(latin1))
	if err != nil {
		return err
	}
	if err := printJSON(w, "Headers (Latin1):", latin1Table.Headers); err != nil {
		return err
	}

	for i, row := range utf8Table.Rows {
		if i >= rows {
			break
		}
		ordered := make([]string, len(utf8Table.Headers))
		for j, h := range utf8Table.Headers {
			ordered[j] = row[h]
		}
		if err := printJSON(w, fmt.Sprintf("Row %d:", i+1), ordered); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, label string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, label, string(b))
	return err
}
