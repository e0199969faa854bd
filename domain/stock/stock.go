// Package stock defines the stock record model and its sort semantics.
//
// A stock record is schemaless beyond its key: stock_code uniquely
// identifies the record, stock_name and quantity are recognized optional
// attributes, and every other attribute is carried through verbatim.
package stock

// Attribute names recognized by the service. Everything else on a record
// is pass-through.
const (
	AttrCode     = "stock_code"
	AttrName     = "stock_name"
	AttrQuantity = "quantity"
)

// Record is a single stock item. Values follow encoding/json conventions:
// numbers are float64, nested objects are map[string]interface{}.
type Record map[string]interface{}

// Code returns the stock_code attribute, or "" when absent or not a string.
func (r Record) Code() string {
	code, _ := r[AttrCode].(string)
	return code
}

// Name returns the stock_name attribute, or "" when absent.
func (r Record) Name() string {
	name, _ := r[AttrName].(string)
	return name
}

// Quantity returns the quantity attribute and whether it was present as a
// number.
func (r Record) Quantity() (float64, bool) {
	q, ok := r[AttrQuantity].(float64)
	return q, ok
}

// Field returns an arbitrary attribute value.
func (r Record) Field(name string) (interface{}, bool) {
	v, ok := r[name]
	return v, ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
