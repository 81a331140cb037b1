package interfaces

import (
	"context"

	"calistar_backend/internal/infrastructure/tryon"
)

// ITryOnGateway abstracts the external vision/try-on task API (FitRoom).
//
// FetchImage is part of the contract because multi-garment composition must
// re-download the intermediate result and re-upload it as binary input to
// the next task.
type ITryOnGateway interface {
	CreateTask(ctx context.Context, modelImage, clothImage []byte, clothType string) (tryon.TaskCreated, error)
	GetTask(ctx context.Context, taskID string) (tryon.TaskResult, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}
