package services

import (
	"context"
	"fmt"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/platform/obs"
	"delivery-route-planner/internal/ports"
)

type PlanDeliveriesRequest struct {
	Depot      domain.GeoCoord
	Deliveries []domain.DeliveryRequest
}

type legKind int

const (
	visitingStop legKind = iota
	returningToDepot
)

// leg is one routing step of a plan: drive to target, then act according to kind.
type leg struct {
	kind   legKind
	target domain.GeoCoord
	item   string
}

// PlanDeliveries optimizes the stop order, routes every leg from the depot
// through each stop and back, and produces turn-by-turn instructions.
//
// Legs are routed strictly in order because each starts where the previous one
// ended. The first failing leg aborts the plan and no partial plan is returned.
// No deliveries yields an empty plan with zero distance.
func PlanDeliveries(
	ctx context.Context,
	req PlanDeliveriesRequest,
	router ports.LegRouter,
) (_ *domain.DeliveryPlan, err error) {
	defer obs.Time(ctx, "services.PlanDeliveries")(&err)

	if req.Depot.IsZero() {
		return nil, fmt.Errorf("plan deliveries: depot: %w", domain.ErrBadCoordinate)
	}

	plan := &domain.DeliveryPlan{
		Depot:        req.Depot,
		Stops:        []domain.DeliveryRequest{},
		Instructions: []domain.Instruction{},
		Segments:     []domain.StreetSegment{},
	}
	if len(req.Deliveries) == 0 {
		return plan, nil
	}

	stops, oldCrow, newCrow := OptimizeDeliveryOrder(req.Depot, req.Deliveries)
	plan.Stops = stops
	plan.OldCrowDistance = oldCrow
	plan.NewCrowDistance = newCrow

	legs := make([]leg, 0, len(stops)+1)
	for _, s := range stops {
		legs = append(legs, leg{kind: visitingStop, target: s.Location, item: s.Item})
	}
	legs = append(legs, leg{kind: returningToDepot, target: req.Depot})

	current := req.Depot
	for i, l := range legs {
		route, err := router.RouteLeg(ctx, current, l.target)
		if err != nil {
			return nil, fmt.Errorf("plan deliveries: leg %d %s -> %s: %w", i+1, current, l.target, err)
		}

		plan.TotalDistanceMiles += route.DistanceMiles
		plan.Segments = append(plan.Segments, route.Segments...)
		plan.Instructions = append(plan.Instructions, BuildInstructions(route.Segments)...)

		if l.kind == visitingStop {
			plan.Instructions = append(plan.Instructions, domain.NewDeliver(l.item))
		}

		current = l.target
	}

	return plan, nil
}
