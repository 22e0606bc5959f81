package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `receipt_ref,ordered_at,item_name,category,quantity,unit_price
R-100,2025-05-01 19:32:00,Carbonara,Pasta,2,12.50
R-100,2025-05-01 19:32:00,House Red,Drinks,1,6.00
R-101,2025-05-01,Margherita,Pizza,1,9.90
`

func TestParseSalesCSV(t *testing.T) {
	result, err := GetImportService().ParseSalesCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowCount)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Orders, 2)

	first := result.Orders[0]
	assert.Equal(t, "R-100", first.ReceiptRef)
	require.Len(t, first.Items, 2)
	assert.Equal(t, int64(1250), first.Items[0].UnitPriceCents)
	assert.Equal(t, int64(2*1250+600), first.TotalCents)

	second := result.Orders[1]
	assert.Equal(t, "R-101", second.ReceiptRef)
	assert.Equal(t, int64(990), second.TotalCents)
}

func TestParseSalesCSVCollectsRowErrors(t *testing.T) {
	csv := `receipt_ref,ordered_at,item_name,category,quantity,unit_price
R-1,2025-05-01,Carbonara,Pasta,2,12.50
R-2,not-a-date,Margherita,Pizza,1,9.90
R-3,2025-05-02,,Pizza,1,9.90
R-4,2025-05-02,Tiramisu,Dessert,0,5.00
R-5,2025-05-02,Espresso,Drinks,1,oops
`

	result, err := GetImportService().ParseSalesCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err, "row problems are collected, not fatal")

	assert.Equal(t, 5, result.RowCount)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Reason, "ordered_at")
	assert.Contains(t, result.Errors[1].Reason, "item_name")
	assert.Contains(t, result.Errors[2].Reason, "quantity")
	assert.Contains(t, result.Errors[3].Reason, "unit_price")

	require.Len(t, result.Orders, 1)
	assert.Equal(t, "R-1", result.Orders[0].ReceiptRef)
}

func TestParseSalesCSVRejectsWrongHeader(t *testing.T) {
	csv := "receipt,date,item,cat,qty,price\nR-1,2025-05-01,Carbonara,Pasta,2,12.50\n"

	_, err := GetImportService().ParseSalesCSV(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestParseSalesCSVEmptyFile(t *testing.T) {
	_, err := GetImportService().ParseSalesCSV(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}

func TestParseSalesCSVLargeInputKeepsLineOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("receipt_ref,ordered_at,item_name,category,quantity,unit_price\n")
	for i := 0; i < 2000; i++ {
		b.WriteString("R-1,2025-05-01,Carbonara,Pasta,1,10.00\n")
	}

	result, err := GetImportService().ParseSalesCSV(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)

	assert.Equal(t, 2000, result.RowCount)
	require.Len(t, result.Orders, 1)
	require.Len(t, result.Orders[0].Items, 2000)
	for i, item := range result.Orders[0].Items {
		assert.Equal(t, i+2, item.Line, "rows must come back in CSV order despite parallel parsing")
	}
}
