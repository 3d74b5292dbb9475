package handlers

import (
	"context"
	"delivery-route-planner/internal/api/dto"
	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/ports"
	"errors"
	"fmt"
	"strings"
)

var errInvalidLocation = errors.New("invalid location")

// LocationResolver turns request locations into network nodes.
//
// Geocoder is optional; without it only lat/lon locations are accepted.
// Without a Locator coordinates are used as given and must already be nodes.
type LocationResolver struct {
	Geocoder ports.Geocoder
	Locator  ports.NodeLocator
}

// Resolve returns the node for loc and how far loc was moved to reach it.
func (lr *LocationResolver) Resolve(ctx context.Context, loc dto.Location) (domain.GeoCoord, float64, error) {
	p, err := lr.point(ctx, loc)
	if err != nil {
		return domain.GeoCoord{}, 0, err
	}

	if lr.Locator == nil {
		c, err := domain.FormatGeoCoord(p.Lat, p.Lon)
		if err != nil {
			return domain.GeoCoord{}, 0, fmt.Errorf("%w: %v", errInvalidLocation, err)
		}
		return c, 0, nil
	}

	node, miles, ok := lr.Locator.Nearest(p)
	if !ok {
		return domain.GeoCoord{}, 0, fmt.Errorf("resolve location: road network is empty: %w", domain.ErrBadCoordinate)
	}
	return node, miles, nil
}

func (lr *LocationResolver) point(ctx context.Context, loc dto.Location) (domain.Coordinates, error) {
	addr := strings.TrimSpace(loc.Address)
	hasCoords := loc.Lat != nil || loc.Lon != nil

	switch {
	case hasCoords && addr != "":
		return domain.Coordinates{}, fmt.Errorf("%w: give lat/lon or address, not both", errInvalidLocation)
	case hasCoords:
		if loc.Lat == nil || loc.Lon == nil {
			return domain.Coordinates{}, fmt.Errorf("%w: lat and lon are both required", errInvalidLocation)
		}
		if _, err := domain.FormatGeoCoord(*loc.Lat, *loc.Lon); err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: %v", errInvalidLocation, err)
		}
		return domain.Coordinates{Lat: *loc.Lat, Lon: *loc.Lon}, nil
	case addr != "":
		if lr.Geocoder == nil {
			return domain.Coordinates{}, fmt.Errorf("%w: address lookup is not configured", errInvalidLocation)
		}
		p, err := lr.Geocoder.Geocode(ctx, addr)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("resolve location: geocode: %w", err)
		}
		return p, nil
	default:
		return domain.Coordinates{}, fmt.Errorf("%w: lat/lon or address is required", errInvalidLocation)
	}
}

func resolvedLocation(c domain.GeoCoord, snapMiles float64) dto.ResolvedLocation {
	return dto.ResolvedLocation{CoordResponse: coordResponse(c), SnapDistanceMiles: snapMiles}
}

func coordResponse(c domain.GeoCoord) dto.CoordResponse {
	return dto.CoordResponse{Lat: c.LatText(), Lon: c.LonText()}
}
