package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const DefaultCity = "General"

// Header names as exported by the scraper. The address column sometimes
// arrives double-encoded.
const (
	colName        = "Nombre"
	colAddress     = "Dirección"
	colAddressAlt  = "DirecciÃ³n"
	colCity        = "Ciudad"
	colPhone       = "Telefono"
	colSpecialties = "Especialidades"
)

// Record is one usable CSV row.
type Record struct {
	Name      string
	Address   string
	City      string
	Phone     string
	Specialty *string
}

// Table is a parsed CSV keeping the raw header for diagnostics.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ReadTable parses CSV with a header row. Cells are trimmed, blank lines
// skipped and short or long rows tolerated.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	t := &Table{Headers: header}
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(map[string]string, len(header))
		empty := true
		for i, h := range header {
			if i < len(fields) {
				row[h] = strings.TrimSpace(fields[i])
				if row[h] != "" {
					empty = false
				}
			}
		}
		if !empty {
			t.Rows = append(t.Rows, row)
		}
	}
	return t, nil
}

// Records converts rows into records, dropping rows without a name.
func (t *Table) Records() []Record {
	out := []Record{}
	for _, row := range t.Rows {
		name := row[colName]
		if name == "" {
			continue
		}
		address := row[colAddress]
		if address == "" {
			address = row[colAddressAlt]
		}
		city := row[colCity]
		if city == "" {
			city = DefaultCity
		}
		out = append(out, Record{
			Name:      name,
			Address:   address,
			City:      city,
			Phone:     row[colPhone],
			Specialty: ParseSpecialty(row[colSpecialties]),
		})
	}
	return out
}

// Names returns the non-empty Nombre values in file order.
func (t *Table) Names() []string {
	names := []string{}
	for _, row := range t.Rows {
		if n := row[colName]; n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ParseSpecialty reads a list such as ['Dentista', 'Ortodoncia'] and returns
// its first element. Text that is not a list literal is returned unchanged.
func ParseSpecialty(raw string) *string {
	if raw == "" {
		return nil
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &parsed); err != nil {
		return &raw
	}
	list, ok := parsed.([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}
	var first string
	switch v := list[0].(type) {
	case string:
		first = v
	case nil:
		return nil
	default:
		first = fmt.Sprint(v)
	}
	if first == "" {
		return nil
	}
	return &first
}
