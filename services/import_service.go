package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"golang.org/x/sync/errgroup"
)

const (
	parseBatchSize  = 500
	parseMaxWorkers = 4
)

// expected CSV header, in order
var salesCSVHeader = []string{"receipt_ref", "ordered_at", "item_name", "category", "quantity", "unit_price"}

// accepted timestamp layouts for the ordered_at column
var orderedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsedRow is one valid CSV data row
type ParsedRow struct {
	Line           int
	ReceiptRef     string
	OrderedAt      time.Time
	ItemName       string
	Category       string
	Quantity       int
	UnitPriceCents int64
}

// ParsedOrder groups rows sharing a receipt ref
type ParsedOrder struct {
	ReceiptRef string
	OrderedAt  time.Time
	Items      []ParsedRow
	TotalCents int64
}

// ParseResult is everything the upload handler needs to persist the import
type ParseResult struct {
	Orders   []ParsedOrder
	RowCount int
	Errors   []models.ImportRowError
}

// ImportService parses uploaded POS sales exports
type ImportService struct{}

var importService = &ImportService{}

func GetImportService() *ImportService {
	return importService
}

// ParseSalesCSV validates the header, parses data rows in parallel batches
// and groups valid rows into orders by receipt ref. Row-level problems are
// collected, never fatal; only an unreadable file or a wrong header fails
// the whole upload.
func (s *ImportService) ParseSalesCSV(ctx context.Context, r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(salesCSVHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	// read everything up front; uploads are bounded by the request body limit
	type rawRow struct {
		line   int
		fields []string
	}
	var raws []rawRow
	result := &ParseResult{Errors: []models.ImportRowError{}}

	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, models.ImportRowError{Line: line, Reason: err.Error()})
			continue
		}
		raws = append(raws, rawRow{line: line, fields: fields})
	}
	result.RowCount = len(raws) + len(result.Errors)

	// parse batches concurrently
	var (
		mu     sync.Mutex
		parsed []ParsedRow
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parseMaxWorkers)

	for start := 0; start < len(raws); start += parseBatchSize {
		end := start + parseBatchSize
		if end > len(raws) {
			end = len(raws)
		}
		batch := raws[start:end]

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rows := make([]ParsedRow, 0, len(batch))
			errs := make([]models.ImportRowError, 0)
			for _, raw := range batch {
				row, err := parseSalesRow(raw.line, raw.fields)
				if err != nil {
					errs = append(errs, models.ImportRowError{Line: raw.line, Reason: err.Error()})
					continue
				}
				rows = append(rows, row)
			}

			mu.Lock()
			parsed = append(parsed, rows...)
			result.Errors = append(result.Errors, errs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// deterministic order regardless of worker scheduling
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Line < parsed[j].Line })
	sort.Slice(result.Errors, func(i, j int) bool { return result.Errors[i].Line < result.Errors[j].Line })

	result.Orders = groupIntoOrders(parsed)
	return result, nil
}

func validateHeader(header []string) error {
	if len(header) != len(salesCSVHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(salesCSVHeader), len(header))
	}
	for i, want := range salesCSVHeader {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if got != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseSalesRow(line int, fields []string) (ParsedRow, error) {
	row := ParsedRow{Line: line}

	row.ReceiptRef = strings.TrimSpace(fields[0])
	if row.ReceiptRef == "" {
		return row, fmt.Errorf("empty receipt_ref")
	}

	orderedAt, err := parseOrderedAt(strings.TrimSpace(fields[1]))
	if err != nil {
		return row, err
	}
	row.OrderedAt = orderedAt

	row.ItemName = strings.TrimSpace(fields[2])
	if row.ItemName == "" {
		return row, fmt.Errorf("empty item_name")
	}
	row.Category = strings.TrimSpace(fields[3])

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil || quantity <= 0 {
		return row, fmt.Errorf("invalid quantity %q", fields[4])
	}
	row.Quantity = quantity

	price, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil || price < 0 {
		return row, fmt.Errorf("invalid unit_price %q", fields[5])
	}
	row.UnitPriceCents = int64(math.Round(price * 100))

	return row, nil
}

func parseOrderedAt(value string) (time.Time, error) {
	for _, layout := range orderedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ordered_at %q", value)
}

// groupIntoOrders folds rows into one order per receipt ref. The earliest
// row timestamp wins as the order time; rows keep their CSV order within
// the order.
func groupIntoOrders(rows []ParsedRow) []ParsedOrder {
	index := make(map[string]int)
	orders := []ParsedOrder{}

	for _, row := range rows {
		i, ok := index[row.ReceiptRef]
		if !ok {
			i = len(orders)
			index[row.ReceiptRef] = i
			orders = append(orders, ParsedOrder{ReceiptRef: row.ReceiptRef, OrderedAt: row.OrderedAt})
		}
		order := &orders[i]
		if row.OrderedAt.Before(order.OrderedAt) {
			order.OrderedAt = row.OrderedAt
		}
		order.Items = append(order.Items, row)
		order.TotalCents += row.UnitPriceCents * int64(row.Quantity)
	}

	return orders
}
