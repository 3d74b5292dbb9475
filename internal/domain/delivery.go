package domain

// DeliveryRequest is one item to drop off at a network coordinate.
type DeliveryRequest struct {
	Item     string
	Location GeoCoord
}
