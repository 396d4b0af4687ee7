package order

import vo "wagate/internal/domain/order/valueobjects"

// Attribute is a single product attribute on a line item, e.g. a variant
// selection such as warna=merah. Order of attributes is preserved.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Item is a line on the order. Metadata keeps the host's raw bookkeeping
// entries; internal keys are filtered out at render time, not here.
type Item struct {
	ProductID  uint
	Name       string
	Quantity   int
	LineTotal  vo.Money
	Attributes []Attribute
	Metadata   map[string]string
}

func NewItem(productID uint, name string, quantity int, lineTotal vo.Money) Item {
	return Item{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		LineTotal: lineTotal,
	}
}

// WithAttribute returns a copy of the item with the attribute appended.
func (i Item) WithAttribute(key, value string) Item {
	i.Attributes = append(i.Attributes, Attribute{Key: key, Value: value})
	return i
}

// WithMetadata returns a copy of the item with the metadata entry set.
func (i Item) WithMetadata(key, value string) Item {
	meta := make(map[string]string, len(i.Metadata)+1)
	for k, v := range i.Metadata {
		meta[k] = v
	}
	meta[key] = value
	i.Metadata = meta
	return i
}
