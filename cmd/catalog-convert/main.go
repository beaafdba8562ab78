// catalog-convert turns a supplier XLSX catalog into the products.csv format
// the backend loads. Supplier sheets carry product_name/category/type/
// specifications/standards columns; everything else is derived heuristically.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var outputHeader = []string{
	"id", "title", "category", "subcategory", "description",
	"capacity", "accuracy", "standards", "power", "warranty",
	"display", "control", "resolution", "scale", "price_hint", "image",
}

func main() {
	var (
		input  = flag.String("in", "", "supplier XLSX catalog")
		output = flag.String("out", "data/products.csv", "output CSV path")
		sheet  = flag.String("sheet", "", "sheet name (default: first sheet)")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: catalog-convert -in catalog.xlsx [-out data/products.csv] [-sheet Sheet1]")
		os.Exit(2)
	}

	if err := run(*input, *output, *sheet); err != nil {
		fmt.Fprintf(os.Stderr, "catalog-convert: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, sheet string) error {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet %q has no data rows", sheet)
	}

	idx := headerIndex(rows[0])
	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(outputHeader); err != nil {
		return err
	}

	converted := 0
	for _, row := range rows[1:] {
		name := cell(row, "product_name")
		if name == "" {
			continue
		}
		specs := cell(row, "specifications")
		prodType := cell(row, "type")

		description := name
		if specs != "" {
			description = fmt.Sprintf("%s - %s", name, truncate(specs, 200))
		}

		record := []string{
			newProductID(),
			name,
			cell(row, "category"),
			prodType,
			description,
			extractCapacity(specs),
			extractAccuracy(specs),
			normalizeStandards(cell(row, "standards")),
			determinePower(prodType),
			"2 years",
			determineDisplay(prodType),
			determineControl(prodType),
			extractResolution(specs),
			extractScale(specs),
			"Request a quote",
			"/images/placeholder.svg",
		}
		if err := w.Write(record); err != nil {
			return err
		}
		converted++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Printf("Converted %d products to %s\n", converted, output)
	return nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func newProductID() string {
	return "FG-" + strings.ToUpper(uuid.New().String()[:8])
}

// normalizeStandards converts comma-separated compliance codes to the
// pipe-delimited form the catalog loader expects.
func normalizeStandards(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "|")
}

var capacityRe = regexp.MustCompile(`(?i)(\d+(?:[–-]\d+)?)\s*kN`)

func extractCapacity(specs string) string {
	if m := capacityRe.FindStringSubmatch(specs); m != nil {
		return strings.ReplaceAll(m[1], "–", "-") + " kN"
	}
	return "Various"
}

var accuracyRe = regexp.MustCompile(`±\d+(?:\.\d+)?%`)

func extractAccuracy(specs string) string {
	if m := accuracyRe.FindString(specs); m != "" {
		return m
	}
	return "±1%"
}

var resolutionRe = regexp.MustCompile(`(?i)resolution[:\s]*(\d+(?:\.\d+)?%)`)

func extractResolution(specs string) string {
	if m := resolutionRe.FindStringSubmatch(specs); m != nil {
		return m[1]
	}
	return "0.01%"
}

func extractScale(specs string) string {
	lower := strings.ToLower(specs)
	switch {
	case strings.Contains(lower, "tension"):
		return "Force/Extension"
	case strings.Contains(lower, "compression"):
		return "Force/Compression"
	default:
		return "Load/Displacement"
	}
}

func determinePower(prodType string) string {
	if strings.Contains(strings.ToLower(prodType), "servo") {
		return "220V AC, 3-phase"
	}
	return "220V AC"
}

func determineDisplay(prodType string) string {
	lower := strings.ToLower(prodType)
	switch {
	case strings.Contains(lower, "analogue"):
		return "Analog"
	case strings.Contains(lower, "computerised"), strings.Contains(lower, "computerized"):
		return "Touch Screen"
	case strings.Contains(lower, "servo"):
		return "Computer Screen"
	default:
		return "Digital"
	}
}

func determineControl(prodType string) string {
	lower := strings.ToLower(prodType)
	switch {
	case strings.Contains(lower, "servo"):
		return "Closed-loop Servo"
	case strings.Contains(lower, "computerised"), strings.Contains(lower, "computerized"):
		return "Computerised"
	case strings.Contains(lower, "digital"):
		return "Digital"
	default:
		return "Manual"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
