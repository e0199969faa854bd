package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortFields(t *testing.T) {
	fields := ParseSortFields("stock_name,-quantity")

	assert.Len(t, fields, 2)
	assert.Equal(t, SortField{Name: "stock_name"}, fields[0])
	assert.Equal(t, SortField{Name: "quantity", Desc: true}, fields[1])
}

func TestParseSortFields_Empty(t *testing.T) {
	assert.Nil(t, ParseSortFields(""))
	assert.Nil(t, ParseSortFields(",,"))
	assert.Nil(t, ParseSortFields("-"))
}

func TestSortRecords_DescendingQuantity(t *testing.T) {
	items := []Record{
		{AttrCode: "A", AttrQuantity: 5.0},
		{AttrCode: "B", AttrQuantity: 20.0},
		{AttrCode: "C", AttrQuantity: 10.0},
	}

	SortRecords(items, ParseSortFields("-quantity"))

	assert.Equal(t, "B", items[0].Code())
	assert.Equal(t, "C", items[1].Code())
	assert.Equal(t, "A", items[2].Code())
}

func TestSortRecords_MultiField(t *testing.T) {
	items := []Record{
		{AttrCode: "A", "category": "tech", AttrQuantity: 5.0},
		{AttrCode: "B", "category": "food", AttrQuantity: 9.0},
		{AttrCode: "C", "category": "tech", AttrQuantity: 7.0},
	}

	SortRecords(items, ParseSortFields("category,-quantity"))

	assert.Equal(t, "B", items[0].Code())
	assert.Equal(t, "C", items[1].Code())
	assert.Equal(t, "A", items[2].Code())
}

func TestSortRecords_MissingFieldSortsLast(t *testing.T) {
	items := []Record{
		{AttrCode: "A"},
		{AttrCode: "B", AttrQuantity: 1.0},
	}

	SortRecords(items, ParseSortFields("quantity"))

	assert.Equal(t, "B", items[0].Code())
	assert.Equal(t, "A", items[1].Code())
}

func TestSortRecords_MissingFieldSortsLastDescending(t *testing.T) {
	items := []Record{
		{AttrCode: "A"},
		{AttrCode: "B", AttrQuantity: 1.0},
		{AttrCode: "C", AttrQuantity: 3.0},
	}

	SortRecords(items, ParseSortFields("-quantity"))

	assert.Equal(t, "C", items[0].Code())
	assert.Equal(t, "B", items[1].Code())
	assert.Equal(t, "A", items[2].Code())
}

func TestSortRecords_StableWithoutFields(t *testing.T) {
	items := []Record{
		{AttrCode: "B"},
		{AttrCode: "A"},
	}

	SortRecords(items, nil)

	assert.Equal(t, "B", items[0].Code())
	assert.Equal(t, "A", items[1].Code())
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		AttrCode:     "AAPL",
		AttrName:     "Apple",
		AttrQuantity: 10.0,
		"category":   "tech",
	}

	assert.Equal(t, "AAPL", rec.Code())
	assert.Equal(t, "Apple", rec.Name())

	q, ok := rec.Quantity()
	assert.True(t, ok)
	assert.Equal(t, 10.0, q)

	v, ok := rec.Field("category")
	assert.True(t, ok)
	assert.Equal(t, "tech", v)

	clone := rec.Clone()
	clone[AttrName] = "Changed"
	assert.Equal(t, "Apple", rec.Name())
}
