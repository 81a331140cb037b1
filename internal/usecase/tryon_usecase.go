package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/infrastructure/tryon"
	"calistar_backend/internal/usecase/interfaces"
)

var (
	ErrMissingTryOnInput = errors.New("user photo and at least one garment are required")

	// ErrInvalidImageData is a client error: a photo that does not decode
	// will not decode on retry either.
	ErrInvalidImageData = errors.New("user photo is not valid base64 image data")

	// ErrInvalidGarmentSet rejects a full_set garment combined with other
	// garments: the provider composes the whole body in one task and a
	// second pass would overwrite it.
	ErrInvalidGarmentSet = errors.New("a full_set garment must be tried on alone")
)

// GarmentProcessingError reports which composition step failed and why,
// carrying the provider's diagnostic when there is one.
type GarmentProcessingError struct {
	Slot   entities.GarmentSlot
	Reason string
}

func (e *GarmentProcessingError) Error() string {
	return fmt.Sprintf("garment processing failed (slot=%s): %s", e.Slot, e.Reason)
}

// TaskTimeoutError means the poll ceiling was reached before the task
// finished. The pipeline stops polling; the task may still complete at the
// provider, but the result is abandoned.
type TaskTimeoutError struct {
	Slot   entities.GarmentSlot
	TaskID string
}

func (e *TaskTimeoutError) Error() string {
	return fmt.Sprintf("try-on task timed out (slot=%s task_id=%s)", e.Slot, e.TaskID)
}

type GarmentInput struct {
	ImageURL string
	Category string
}

type TryOnCommand struct {
	UserPhotoBase64 string
	Garments        []GarmentInput
}

type TryOnResult struct {
	ResultImageURL string
	TaskID         string
	Tasks          []entities.TryOnTask
}

type ITryOnUseCase interface {
	Submit(ctx context.Context, cmd TryOnCommand) (TryOnResult, error)
}

// TryOnUseCase runs the virtual try-on pipeline: one provider task per
// garment, strictly sequential, each step's output image feeding the next
// step's model input. Any failure aborts the remaining steps; a partial
// composite is never returned.

type TryOnUseCase struct {
	gateway         interfaces.ITryOnGateway
	pollInterval    time.Duration
	maxPollAttempts int
}

var _ ITryOnUseCase = (*TryOnUseCase)(nil)

func NewTryOnUseCase(gateway interfaces.ITryOnGateway, pollInterval time.Duration, maxPollAttempts int) *TryOnUseCase {
	return &TryOnUseCase{gateway: gateway, pollInterval: pollInterval, maxPollAttempts: maxPollAttempts}
}

type garmentStep struct {
	imageURL string
	slot     entities.GarmentSlot
}

func (u *TryOnUseCase) Submit(ctx context.Context, cmd TryOnCommand) (TryOnResult, error) {
	if strings.TrimSpace(cmd.UserPhotoBase64) == "" || len(cmd.Garments) == 0 {
		return TryOnResult{}, ErrMissingTryOnInput
	}

	currentPhoto, err := decodeImagePayload(cmd.UserPhotoBase64)
	if err != nil {
		return TryOnResult{}, err
	}

	steps, err := buildSteps(cmd.Garments)
	if err != nil {
		return TryOnResult{}, err
	}

	log.Printf("[tryon][usecase] submit start garments=%d", len(steps))

	var tasks []entities.TryOnTask
	lastURL := ""
	lastTaskID := ""

	for i, step := range steps {
		garmentImage, err := u.gateway.FetchImage(ctx, step.imageURL)
		if err != nil {
			log.Printf("[tryon][usecase] garment image fetch failed slot=%s err=%v", step.slot, err)
			return TryOnResult{}, wrapGarmentFailure(step.slot, "failed to fetch garment image: "+err.Error(), err)
		}

		created, err := u.gateway.CreateTask(ctx, currentPhoto, garmentImage, string(step.slot))
		if err != nil {
			return TryOnResult{}, wrapGarmentFailure(step.slot, "failed to create try-on task: "+err.Error(), err)
		}

		result, err := u.pollTask(ctx, created.TaskID, step.slot)
		if err != nil {
			return TryOnResult{}, err
		}
		if result.DownloadSignedURL == "" {
			return TryOnResult{}, &GarmentProcessingError{Slot: step.slot, Reason: "no result image URL returned"}
		}

		tasks = append(tasks, entities.TryOnTask{
			TaskID:         created.TaskID,
			Status:         entities.TryOnTaskCompleted,
			Progress:       result.Progress,
			ResultImageURL: result.DownloadSignedURL,
			GarmentSlot:    step.slot,
		})
		lastURL = result.DownloadSignedURL
		lastTaskID = created.TaskID
		log.Printf("[tryon][usecase] step %d/%d completed slot=%s task_id=%s", i+1, len(steps), step.slot, created.TaskID)

		// The next task needs the composited pixels, not a URL reference.
		if i < len(steps)-1 {
			currentPhoto, err = u.gateway.FetchImage(ctx, result.DownloadSignedURL)
			if err != nil {
				return TryOnResult{}, wrapGarmentFailure(step.slot, "failed to fetch intermediate result: "+err.Error(), err)
			}
		}
	}

	return TryOnResult{ResultImageURL: lastURL, TaskID: lastTaskID, Tasks: tasks}, nil
}

// pollTask reads the task at a fixed interval up to the attempt ceiling. A
// transient read failure consumes an attempt and polling continues; the
// ceiling is the hard cancellation point.
func (u *TryOnUseCase) pollTask(ctx context.Context, taskID string, slot entities.GarmentSlot) (tryon.TaskResult, error) {
	for attempt := 0; attempt < u.maxPollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return tryon.TaskResult{}, ctx.Err()
			case <-time.After(u.pollInterval):
			}
		}

		result, err := u.gateway.GetTask(ctx, taskID)
		if err != nil {
			if errors.Is(err, tryon.ErrInsufficientCredits) || errors.Is(err, tryon.ErrRateLimited) {
				return tryon.TaskResult{}, err
			}
			log.Printf("[tryon][usecase] poll read failed task_id=%s attempt=%d err=%v", taskID, attempt+1, err)
			continue
		}

		switch strings.ToUpper(strings.TrimSpace(result.Status)) {
		case "COMPLETED":
			return result, nil
		case "FAILED":
			reason := result.Error
			if reason == "" {
				reason = "task processing failed"
			}
			return tryon.TaskResult{}, &GarmentProcessingError{Slot: slot, Reason: reason}
		}
		log.Printf("[tryon][usecase] task %s status=%s progress=%d%%", taskID, result.Status, result.Progress)
	}

	return tryon.TaskResult{}, &TaskTimeoutError{Slot: slot, TaskID: taskID}
}

// buildSteps resolves slots and orders the work: upper before lower, because
// the second task composes over the first task's pixel output. full_set runs
// alone.
func buildSteps(garments []GarmentInput) ([]garmentStep, error) {
	steps := make([]garmentStep, 0, len(garments))
	fullSet := 0
	for _, g := range garments {
		if strings.TrimSpace(g.ImageURL) == "" {
			return nil, ErrMissingTryOnInput
		}
		slot := entities.SlotForCategory(g.Category)
		if slot == entities.SlotFullSet {
			fullSet++
		}
		steps = append(steps, garmentStep{imageURL: strings.TrimSpace(g.ImageURL), slot: slot})
	}
	if fullSet > 0 && len(steps) > 1 {
		return nil, ErrInvalidGarmentSet
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].slot.CompositionRank() < steps[j].slot.CompositionRank()
	})
	return steps, nil
}

// decodeImagePayload accepts a raw base64 string or a data URI and returns
// the binary image.
func decodeImagePayload(payload string) ([]byte, error) {
	s := strings.TrimSpace(payload)
	if i := strings.Index(s, ";base64,"); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidImageData
	}
	return data, nil
}

func wrapGarmentFailure(slot entities.GarmentSlot, reason string, cause error) error {
	// Quota and rate-limit failures keep their identity so the handler can
	// map them to differentiated responses.
	if errors.Is(cause, tryon.ErrInsufficientCredits) || errors.Is(cause, tryon.ErrRateLimited) {
		return cause
	}
	return &GarmentProcessingError{Slot: slot, Reason: reason}
}
