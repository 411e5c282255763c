package handler

import (
	"context"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/usecase/dto"
)

// AccessService - реализуется usecase.AccessUseCase
type AccessService interface {
	Check(ctx context.Context, route, token string) domain.AccessDecision
}

// DirectoryService - реализуется usecase.DirectoryUseCase
type DirectoryService interface {
	List(ctx context.Context, req dto.DirectoryRequest) (*dto.DirectoryResponse, error)
	Stats(ctx context.Context) (*dto.DirectoryStatsResponse, error)
}

// RatingService - реализуется usecase.RatingUseCase
type RatingService interface {
	Submit(ctx context.Context, userID, poiID string, req dto.RatingRequest) (*dto.RatingAcceptedResponse, error)
}
