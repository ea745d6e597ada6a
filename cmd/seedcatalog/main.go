// Command seedcatalog converts the destination catalog Excel file into a SQL seed file.
// Reads the Countries, Requirements and VisaTypes sheets.
// Usage: go run ./cmd/seedcatalog
// Output: db/seeds/catalog.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type countryEntry struct {
	name           string
	code           string
	flagURL        string
	visaFee        float64
	processingDays int
	active         bool
}

type requirementEntry struct {
	countryCode  string
	fieldName    string
	fieldLabel   string
	fieldType    string
	required     bool
	options      string // comma-separated, empty = NULL
	displayOrder int
}

type visaTypeEntry struct {
	countryCode    string
	name           string
	description    string
	fee            float64
	processingDays int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "Voyago Destination Catalog.xlsx"
	outPath := "db/seeds/catalog.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	countries, err := parseCountriesSheet(f)
	if err != nil {
		return fmt.Errorf("parse Countries sheet: %w", err)
	}
	log.Printf("Countries sheet: %d entries", len(countries))

	reqs, err := parseRequirementsSheet(f)
	if err != nil {
		return fmt.Errorf("parse Requirements sheet: %w", err)
	}
	log.Printf("Requirements sheet: %d entries", len(reqs))

	types, err := parseVisaTypesSheet(f)
	if err != nil {
		return fmt.Errorf("parse VisaTypes sheet: %w", err)
	}
	log.Printf("VisaTypes sheet: %d entries", len(types))

	// Write SQL file with batched multi-row INSERTs.
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Destination catalog seed data generated from Excel.",
		fmt.Sprintf("-- %d countries, %d requirements, %d visa types.", len(countries), len(reqs), len(types)),
		"-- Run: make seed-catalog",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(countries); i += batchSize {
		end := i + batchSize
		if end > len(countries) {
			end = len(countries)
		}
		if err := writeCountryBatch(out, countries[i:end]); err != nil {
			return fmt.Errorf("write country batch at offset %d: %w", i, err)
		}
	}
	for i := 0; i < len(reqs); i += batchSize {
		end := i + batchSize
		if end > len(reqs) {
			end = len(reqs)
		}
		if err := writeRequirementBatch(out, reqs[i:end]); err != nil {
			return fmt.Errorf("write requirement batch at offset %d: %w", i, err)
		}
	}
	for i := 0; i < len(types); i += batchSize {
		end := i + batchSize
		if end > len(types) {
			end = len(types)
		}
		if err := writeVisaTypeBatch(out, types[i:end]); err != nil {
			return fmt.Errorf("write visa type batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d countries, %d requirements, %d visa types in %s",
		len(countries), len(reqs), len(types), outPath)
	return nil
}

// parseCountriesSheet reads the Countries sheet.
// Columns: A(0)=name, B(1)=ISO code, C(2)=flag URL, D(3)=visa fee,
// E(4)=processing days, F(5)=active (yes/no). Data starts at row index 1.
func parseCountriesSheet(f *excelize.File) ([]countryEntry, error) {
	rows, err := f.GetRows("Countries")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []countryEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellVal(row, 0))
		code := strings.ToUpper(strings.TrimSpace(cellVal(row, 1)))
		if name == "" || code == "" || seen[code] {
			continue
		}

		var fee float64
		if _, serr := fmt.Sscanf(strings.TrimSpace(cellVal(row, 3)), "%f", &fee); serr != nil {
			continue
		}
		var days int
		if _, serr := fmt.Sscanf(strings.TrimSpace(cellVal(row, 4)), "%d", &days); serr != nil {
			continue
		}

		seen[code] = true
		entries = append(entries, countryEntry{
			name:           name,
			code:           code,
			flagURL:        strings.TrimSpace(cellVal(row, 2)),
			visaFee:        fee,
			processingDays: days,
			active:         parseBool(cellVal(row, 5)),
		})
	}
	return entries, nil
}

// parseRequirementsSheet reads the Requirements sheet.
// Columns: A(0)=country code, B(1)=field name, C(2)=label, D(3)=type,
// E(4)=required (yes/no), F(5)=options, G(6)=display order. Data starts at row index 1.
func parseRequirementsSheet(f *excelize.File) ([]requirementEntry, error) {
	rows, err := f.GetRows("Requirements")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []requirementEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.ToUpper(strings.TrimSpace(cellVal(row, 0)))
		fieldName := strings.TrimSpace(cellVal(row, 1))
		if code == "" || fieldName == "" {
			continue
		}

		key := code + "|" + fieldName
		if seen[key] {
			continue
		}
		seen[key] = true

		order := i
		if _, serr := fmt.Sscanf(strings.TrimSpace(cellVal(row, 6)), "%d", &order); serr != nil {
			order = i
		}

		entries = append(entries, requirementEntry{
			countryCode:  code,
			fieldName:    fieldName,
			fieldLabel:   strings.TrimSpace(cellVal(row, 2)),
			fieldType:    strings.ToLower(strings.TrimSpace(cellVal(row, 3))),
			required:     parseBool(cellVal(row, 4)),
			options:      strings.TrimSpace(cellVal(row, 5)),
			displayOrder: order,
		})
	}
	return entries, nil
}

// parseVisaTypesSheet reads the VisaTypes sheet.
// Columns: A(0)=country code, B(1)=name, C(2)=description, D(3)=fee,
// E(4)=processing days. Data starts at row index 1.
func parseVisaTypesSheet(f *excelize.File) ([]visaTypeEntry, error) {
	rows, err := f.GetRows("VisaTypes")
	if err != nil {
		return nil, err
	}

	var entries []visaTypeEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.ToUpper(strings.TrimSpace(cellVal(row, 0)))
		name := strings.TrimSpace(cellVal(row, 1))
		if code == "" || name == "" {
			continue
		}

		var fee float64
		if _, serr := fmt.Sscanf(strings.TrimSpace(cellVal(row, 3)), "%f", &fee); serr != nil {
			continue
		}
		var days int
		if _, serr := fmt.Sscanf(strings.TrimSpace(cellVal(row, 4)), "%d", &days); serr != nil {
			continue
		}

		entries = append(entries, visaTypeEntry{
			countryCode:    code,
			name:           name,
			description:    strings.TrimSpace(cellVal(row, 2)),
			fee:            fee,
			processingDays: days,
		})
	}
	return entries, nil
}

func writeCountryBatch(out *os.File, batch []countryEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO countries (name, code, flag_url, visa_fee, visa_processing_days, is_active) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %.2f, %d, %t)",
			escapeSQL(e.name), escapeSQL(e.code), escapeSQL(e.flagURL),
			e.visaFee, e.processingDays, e.active)
	}

	b.WriteString("\nON CONFLICT (code) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func writeRequirementBatch(out *os.File, batch []requirementEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO visa_requirements (country_id, field_name, field_label, field_type, is_required, options, order_index)\nSELECT c.id, v.field_name, v.field_label, v.field_type, v.is_required, v.options, v.order_index\nFROM (VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}

		optionsVal := "NULL"
		if e.options != "" {
			optionsVal = fmt.Sprintf("'%s'", escapeSQL(e.options))
		}

		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %t, %s, %d)",
			escapeSQL(e.countryCode), escapeSQL(e.fieldName), escapeSQL(e.fieldLabel),
			escapeSQL(e.fieldType), e.required, optionsVal, e.displayOrder)
	}

	b.WriteString("\n) AS v(country_code, field_name, field_label, field_type, is_required, options, order_index)\nJOIN countries c ON c.code = v.country_code\nON CONFLICT (country_id, field_name) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func writeVisaTypeBatch(out *os.File, batch []visaTypeEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO visa_types (country_id, name, country_overview, fee, processing_days)\nSELECT c.id, v.name, v.country_overview, v.fee, v.processing_days\nFROM (VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %.2f, %d)",
			escapeSQL(e.countryCode), escapeSQL(e.name), escapeSQL(e.description),
			e.fee, e.processingDays)
	}

	b.WriteString("\n) AS v(country_code, name, country_overview, fee, processing_days)\nJOIN countries c ON c.code = v.country_code\nON CONFLICT (country_id, name) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
