package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

type MeetupService interface {
	SearchFlights(ctx context.Context, req dto.SearchRequest) (dto.SearchFlightsResponse, error)
	SearchBestMatch(ctx context.Context, req dto.SearchRequest) (dto.BestMatchResponse, error)
	SearchBestDestinations(ctx context.Context, req dto.DestinationsRequest) (dto.DestinationsResponse, error)
	SearchEverywhere(ctx context.Context, req dto.EverywhereRequest) (dto.DestinationsResponse, error)
}

type MeetupEndpoint struct {
	SearchFlights      endpoint.Endpoint
	SearchBestMatch    endpoint.Endpoint
	SearchDestinations endpoint.Endpoint
	SearchEverywhere   endpoint.Endpoint
}

func MakeMeetupEndpoint(service MeetupService) MeetupEndpoint {
	return MeetupEndpoint{
		SearchFlights:      makeSearchFlightsEndpoint(service),
		SearchBestMatch:    makeSearchBestMatchEndpoint(service),
		SearchDestinations: makeSearchDestinationsEndpoint(service),
		SearchEverywhere:   makeSearchEverywhereEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service MeetupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("meetup service: %w", err)
		}

		return response, nil
	}
}

func makeSearchBestMatchEndpoint(service MeetupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchBestMatch(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("meetup service: %w", err)
		}

		return response, nil
	}
}

func makeSearchDestinationsEndpoint(service MeetupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.DestinationsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchBestDestinations(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("meetup service: %w", err)
		}

		return response, nil
	}
}

func makeSearchEverywhereEndpoint(service MeetupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.EverywhereRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchEverywhere(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("meetup service: %w", err)
		}

		return response, nil
	}
}
