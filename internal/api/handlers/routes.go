package handlers

import (
	"delivery-route-planner/internal/api/dto"
	"delivery-route-planner/internal/geo"
	"delivery-route-planner/internal/ports"
	"net/http"
)

// RouteHandler answers point-to-point routing queries.
type RouteHandler struct {
	Router    ports.LegRouter
	Locations *LocationResolver
}

func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	from, fromSnap, err := h.Locations.Resolve(r.Context(), req.From)
	if err != nil {
		writeServiceError(w, r, "resolve from", err)
		return
	}
	to, toSnap, err := h.Locations.Resolve(r.Context(), req.To)
	if err != nil {
		writeServiceError(w, r, "resolve to", err)
		return
	}

	route, err := h.Router.RouteLeg(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, r, "route", err)
		return
	}

	res := dto.RouteResponse{
		From:               resolvedLocation(from, fromSnap),
		To:                 resolvedLocation(to, toSnap),
		Segments:           make([]dto.SegmentResponse, 0, len(route.Segments)),
		TotalDistanceMiles: route.DistanceMiles,
		Polyline:           encodePolyline(route.Segments),
		GeoJSON: segmentsGeoJSON(route.Segments,
			marker{at: from, role: "from"},
			marker{at: to, role: "to"},
		),
	}
	for _, s := range route.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			Start:         coordResponse(s.Start),
			End:           coordResponse(s.End),
			Street:        s.Name,
			DistanceMiles: geo.SegmentLength(s),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
