package catalog

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/domain/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
	csvimport "github.com/sunset/storefront/internal/infrastructure/import"
)

// Required CSV columns for a product import. Optional columns:
// description, category, image_url, sizes, colors, featured.
var productImportHeaders = []string{"name", "price", "stock"}

const maxImportErrors = 100

// ImportResult summarizes a bulk product import
type ImportResult struct {
	Imported  int                  `json:"imported"`
	Failed    int                  `json:"failed"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	Truncated bool                 `json:"errors_truncated,omitempty"`
}

// ImportProducts reads a CSV stream and creates one product per valid
// row. Rows that fail validation are reported and skipped; they do not
// abort the rest of the file.
func (s *ProductService) ImportProducts(ctx context.Context, r io.Reader) (*ImportResult, error) {
	parser, err := csvimport.NewParser(r)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if missing := parser.MissingHeaders(productImportHeaders); len(missing) > 0 {
		return nil, shared.NewDomainError("INVALID_INPUT",
			"Faltan columnas requeridas: "+strings.Join(missing, ", "))
	}

	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	rowErrors := csvimport.NewErrorCollection(maxImportErrors)

	for {
		row, err := parser.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors.Add(0, "", "La fila no se pudo leer")
			continue
		}
		if row.IsEmpty() {
			continue
		}

		product, ok := s.productFromRow(row, categories, rowErrors)
		if !ok {
			continue
		}

		if err := s.products.Save(ctx, product); err != nil {
			s.logger.Error("import row save failed",
				zap.Int("row", row.LineNumber), zap.Error(err))
			rowErrors.Add(row.LineNumber, "", "No se pudo guardar el producto")
			continue
		}
		result.Imported++
	}

	result.Failed = rowErrors.Total()
	result.Errors = rowErrors.Errors()
	result.Truncated = rowErrors.Truncated()

	s.logger.Info("product import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *ProductService) productFromRow(row *csvimport.Row, categories map[string]catalog.Category, rowErrors *csvimport.ErrorCollection) (*catalog.Product, bool) {
	name := row.Get("name")
	if name == "" {
		rowErrors.Add(row.LineNumber, "name", "El nombre es requerido")
		return nil, false
	}

	price, err := decimal.NewFromString(row.Get("price"))
	if err != nil || price.IsNegative() {
		rowErrors.Add(row.LineNumber, "price", "El precio no es válido")
		return nil, false
	}

	stock, err := strconv.Atoi(row.GetOrDefault("stock", "0"))
	if err != nil || stock < 0 {
		rowErrors.Add(row.LineNumber, "stock", "El stock no es válido")
		return nil, false
	}

	category, ok := categories[strings.ToLower(row.Get("category"))]
	if row.Get("category") != "" && !ok {
		rowErrors.Add(row.LineNumber, "category", "Categoría desconocida")
		return nil, false
	}

	product, err := catalog.NewProduct(name, row.Get("description"), price, stock, category.ID)
	if err != nil {
		rowErrors.Add(row.LineNumber, "", err.Error())
		return nil, false
	}

	product.ImageURL = row.Get("image_url")
	product.Sizes = splitList(row.Get("sizes"))
	product.Colors = splitList(row.Get("colors"))
	product.Featured = parseBool(row.Get("featured"))
	return product, true
}

// categoryIndex maps lowercased slugs to categories for row lookups
func (s *ProductService) categoryIndex(ctx context.Context) (map[string]catalog.Category, error) {
	all, err := s.categories.FindAll(ctx)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	index := make(map[string]catalog.Category, len(all))
	for _, c := range all {
		index[strings.ToLower(c.Slug)] = c
	}
	return index, nil
}

// splitList parses a pipe-separated variant list ("S|M|L")
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "si", "sí", "yes":
		return true
	}
	return false
}
