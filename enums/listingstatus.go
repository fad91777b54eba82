package enums

type ListingStatus string

const (
	ListingStatusAvailable   ListingStatus = "available"
	ListingStatusSold        ListingStatus = "sold"
	ListingStatusRented      ListingStatus = "rented"
	ListingStatusNegotiating ListingStatus = "negotiating"
	ListingStatusReserved    ListingStatus = "reserved"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusAvailable, ListingStatusSold, ListingStatusRented,
		ListingStatusNegotiating, ListingStatusReserved:
		return true
	}
	return false
}
