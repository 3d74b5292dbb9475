package domain

// DeliveryPlan is the output of delivery planning for one vehicle.
//
// Stops is the optimized visiting order (depot excluded). Segments is every
// street segment driven, depot to depot. Crow distances are the straight-line
// tour lengths before and after optimization, without the return leg.
type DeliveryPlan struct {
	Depot              GeoCoord
	Stops              []DeliveryRequest
	Instructions       []Instruction
	Segments           []StreetSegment
	TotalDistanceMiles float64
	OldCrowDistance    float64
	NewCrowDistance    float64
}
