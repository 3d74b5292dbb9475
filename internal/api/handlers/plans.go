package handlers

import (
	"delivery-route-planner/internal/api/dto"
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/ports"
	"delivery-route-planner/internal/services"
	"fmt"
	"net/http"
	"strings"
)

const maxDeliveries = 200

type PlanHandler struct {
	Router    ports.LegRouter
	Locations *LocationResolver
}

// Plan resolves the depot and every delivery onto the network, then builds a
// single-vehicle tour with turn-by-turn instructions.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Deliveries) > maxDeliveries {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d deliveries per plan", maxDeliveries))
		return
	}

	depot, depotSnap, err := h.Locations.Resolve(r.Context(), req.Depot)
	if err != nil {
		writeServiceError(w, r, "resolve depot", err)
		return
	}

	svcReq := services.PlanDeliveriesRequest{
		Depot:      depot,
		Deliveries: make([]domain.DeliveryRequest, 0, len(req.Deliveries)),
	}
	for i, d := range req.Deliveries {
		item := strings.TrimSpace(d.Item)
		if item == "" {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("deliveries[%d]: item is required", i))
			return
		}

		loc, _, err := h.Locations.Resolve(r.Context(), d.Location)
		if err != nil {
			writeServiceError(w, r, fmt.Sprintf("resolve delivery %d", i), fmt.Errorf("deliveries[%d]: %w", i, err))
			return
		}
		svcReq.Deliveries = append(svcReq.Deliveries, domain.DeliveryRequest{Item: item, Location: loc})
	}

	plan, err := services.PlanDeliveries(r.Context(), svcReq, h.Router)
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	markers := make([]marker, 0, len(plan.Stops)+1)
	markers = append(markers, marker{at: plan.Depot, role: "depot"})

	res := dto.PlanResponse{
		Depot:                resolvedLocation(depot, depotSnap),
		Stops:                make([]dto.PlanStopResponse, 0, len(plan.Stops)),
		Instructions:         make([]dto.InstructionResponse, 0, len(plan.Instructions)),
		TotalDistanceMiles:   plan.TotalDistanceMiles,
		OldCrowDistanceMiles: plan.OldCrowDistance,
		NewCrowDistanceMiles: plan.NewCrowDistance,
		Polyline:             encodePolyline(plan.Segments),
	}
	for _, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.PlanStopResponse{Item: s.Item, Location: coordResponse(s.Location)})
		markers = append(markers, marker{at: s.Location, role: "stop", label: s.Item})
	}
	for _, in := range plan.Instructions {
		res.Instructions = append(res.Instructions, dto.InstructionResponse{
			Kind:          string(in.Kind),
			Text:          in.String(),
			Direction:     in.Direction,
			Street:        in.Street,
			DistanceMiles: in.DistanceMiles,
			Side:          string(in.Side),
			Item:          in.Item,
		})
	}
	res.GeoJSON = segmentsGeoJSON(plan.Segments, markers...)

	writeJSON(w, r, http.StatusOK, res)
}
