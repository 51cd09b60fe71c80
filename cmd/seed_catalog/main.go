// seed_catalog genera un script SQL para poblar el catálogo (categorías, unidades y productos)
// a partir de un CSV exportado de la hoja de cálculo de planta.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv] [salida.sql]
// El CSV usa ';' como separador y columnas: sku;nombre;categoria;unidad;tipo.
// Se acepta UTF-8 o ISO-8859-1 (las exportaciones de Excel suelen venir en Latin-1).
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	sku, name, category, uom, productType string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	rows, err := parseCatalog(decodeInput(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	writeSQL(w, rows)
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d productos\n", len(rows))
}

// decodeInput devuelve el contenido como UTF-8; si no es UTF-8 válido se asume ISO-8859-1.
func decodeInput(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parseCatalog(r io.Reader) ([]productRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 5

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	var rows []productRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku") {
			continue // encabezado
		}
		row := productRow{
			sku:         strings.ToUpper(strings.TrimSpace(rec[0])),
			name:        strings.TrimSpace(rec[1]),
			category:    strings.TrimSpace(rec[2]),
			uom:         strings.ToLower(strings.TrimSpace(rec[3])),
			productType: strings.ToUpper(strings.TrimSpace(rec[4])),
		}
		if row.sku == "" || row.name == "" || row.category == "" || row.uom == "" {
			return nil, fmt.Errorf("línea %d: sku, nombre, categoria y unidad son obligatorios", i+1)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeSQL(w io.Writer, rows []productRow) {
	categories := make(map[string]struct{})
	units := make(map[string]struct{})
	for _, r := range rows {
		categories[r.category] = struct{}{}
		units[r.uom] = struct{}{}
	}

	fmt.Fprintln(w, "-- Catálogo CAFETAL generado por cmd/seed_catalog")
	fmt.Fprintln(w, "BEGIN;")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- 1. Unidades de medida")
	for _, u := range sortedKeys(units) {
		fmt.Fprintf(w, "INSERT INTO cafetal.unit_of_measure (code, description) VALUES ('%s', '%s')\n", escapeSQL(u), escapeSQL(u))
		fmt.Fprintln(w, "ON CONFLICT (code) DO NOTHING;")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- 2. Categorías")
	for _, c := range sortedKeys(categories) {
		fmt.Fprintf(w, "INSERT INTO cafetal.product_category (name) VALUES ('%s')\n", escapeSQL(c))
		fmt.Fprintln(w, "ON CONFLICT (name) DO NOTHING;")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- 3. Productos")
	for _, r := range rows {
		fmt.Fprintln(w, "INSERT INTO cafetal.product (sku, name, category_id, uom_id, product_type)")
		fmt.Fprintf(w, "SELECT '%s', '%s', c.category_id, u.uom_id, '%s'\n", escapeSQL(r.sku), escapeSQL(r.name), escapeSQL(r.productType))
		fmt.Fprintf(w, "FROM cafetal.product_category c, cafetal.unit_of_measure u WHERE c.name = '%s' AND u.code = '%s'\n",
			escapeSQL(r.category), escapeSQL(r.uom))
		fmt.Fprintln(w, "ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, category_id = EXCLUDED.category_id;")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMIT;")
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
