package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The catalog is read-only after load;
// prices are snapshots copied into cart lines at add time.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	NameHindi     string          `json:"nameHindi,omitempty"`
	Barcode       string          `json:"barcode"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	Brand         string          `json:"brand,omitempty"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	StockQuantity int             `json:"stockQuantity"`
	IsWeighable   bool            `json:"isWeighable"`
	IsAvailable   bool            `json:"isAvailable"`
}
