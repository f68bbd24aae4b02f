package enum

// LocationType scopes sales and product returns to a physical location.
type LocationType string

const (
	LocationTypeWarehouse LocationType = "warehouse"
	LocationTypeShop      LocationType = "shop"
)

func (t LocationType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known location types.
func (t LocationType) IsValid() bool {
	return t == LocationTypeWarehouse || t == LocationTypeShop
}
