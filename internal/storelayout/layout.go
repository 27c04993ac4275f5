package storelayout

import (
	"context"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	"github.com/smartaisle/smartcart-backend/pkg/enums"
)

// Section is one floor-plan block on the store grid.
type Section struct {
	ID        enums.Section `json:"id"`
	Name      string        `json:"name"`
	NameHindi string        `json:"nameHindi"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Color     string        `json:"color"`
}

// Zone is a positioning beacon's coverage circle, anchored to a section.
type Zone struct {
	Section enums.Section `json:"section"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Range   float64       `json:"range"`
}

// Layout is the complete floor plan served to the shopping app.
type Layout struct {
	Sections []Section `json:"sections"`
	Zones    []Zone    `json:"lifiZones"`
}

// Store is a physical location with its layout.
type Store struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Layout Layout `json:"layout"`
}

// Service resolves stores and their layouts by id.
type Service interface {
	GetStore(ctx context.Context, id int64) (Store, error)
	GetLayout(ctx context.Context, storeID int64) (Layout, error)
}

type service struct {
	stores map[int64]Store
}

// NewService seeds the single demo store.
func NewService() Service {
	store := seedStore()
	return &service{stores: map[int64]Store{store.ID: store}}
}

func seedStore() Store {
	return Store{
		ID:   1,
		Name: "Smart Grocery Store",
		Layout: Layout{
			Sections: []Section{
				{ID: enums.SectionProduce, Name: "Fresh Produce", NameHindi: "सब्जी", X: 0, Y: 0, Width: 1, Height: 2, Color: "green"},
				{ID: enums.SectionDairy, Name: "Dairy", NameHindi: "डेयरी", X: 1, Y: 0, Width: 1, Height: 1, Color: "blue"},
				{ID: enums.SectionSpices, Name: "Spices", NameHindi: "मसाले", X: 2, Y: 0, Width: 1, Height: 1, Color: "yellow"},
				{ID: enums.SectionSnacks, Name: "Snacks", NameHindi: "नाश्ता", X: 0, Y: 2, Width: 1, Height: 1, Color: "purple"},
				{ID: enums.SectionCare, Name: "Personal Care", NameHindi: "व्यक्तिगत देखभाल", X: 1, Y: 1, Width: 1, Height: 1, Color: "pink"},
				{ID: enums.SectionCheckout, Name: "Checkout", NameHindi: "बिलिंग", X: 2, Y: 1, Width: 1, Height: 1, Color: "orange"},
			},
			Zones: []Zone{
				{Section: enums.SectionProduce, X: 0.5, Y: 1, Range: 2},
				{Section: enums.SectionDairy, X: 1.5, Y: 0.5, Range: 1.5},
				{Section: enums.SectionSpices, X: 2.5, Y: 0.5, Range: 1.5},
				{Section: enums.SectionSnacks, X: 0.5, Y: 2.5, Range: 1.5},
				{Section: enums.SectionCare, X: 1.5, Y: 1.5, Range: 1.5},
				{Section: enums.SectionCheckout, X: 2.5, Y: 1.5, Range: 1.5},
			},
		},
	}
}

func (s *service) GetStore(ctx context.Context, id int64) (Store, error) {
	store, ok := s.stores[id]
	if !ok {
		return Store{}, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
	}
	return store, nil
}

func (s *service) GetLayout(ctx context.Context, storeID int64) (Layout, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return Layout{}, err
	}
	return store.Layout, nil
}
