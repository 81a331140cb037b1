package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/infrastructure/tryon"
	mock_interfaces "calistar_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testPhoto = base64.StdEncoding.EncodeToString([]byte("fake-user-photo-bytes"))

func newTryOnUC(gw *mock_interfaces.MockITryOnGateway, attempts int) *TryOnUseCase {
	return NewTryOnUseCase(gw, time.Millisecond, attempts)
}

func TestTryOnUseCase_Submit_Validations(t *testing.T) {
	t.Run("missing photo", func(t *testing.T) {
		uc := NewTryOnUseCase(nil, time.Millisecond, 1)
		_, err := uc.Submit(context.Background(), TryOnCommand{Garments: []GarmentInput{{ImageURL: "https://cdn/x.jpg"}}})
		if !errors.Is(err, ErrMissingTryOnInput) {
			t.Fatalf("expected ErrMissingTryOnInput, got %v", err)
		}
	})

	t.Run("no garments", func(t *testing.T) {
		uc := NewTryOnUseCase(nil, time.Millisecond, 1)
		_, err := uc.Submit(context.Background(), TryOnCommand{UserPhotoBase64: testPhoto})
		if !errors.Is(err, ErrMissingTryOnInput) {
			t.Fatalf("expected ErrMissingTryOnInput, got %v", err)
		}
	})

	t.Run("garment without image url", func(t *testing.T) {
		uc := NewTryOnUseCase(nil, time.Millisecond, 1)
		_, err := uc.Submit(context.Background(), TryOnCommand{
			UserPhotoBase64: testPhoto,
			Garments:        []GarmentInput{{ImageURL: "  ", Category: "tops"}},
		})
		if !errors.Is(err, ErrMissingTryOnInput) {
			t.Fatalf("expected ErrMissingTryOnInput, got %v", err)
		}
	})

	t.Run("invalid base64 never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockITryOnGateway(ctrl)
		// No expectations: any gateway call fails the test.

		uc := newTryOnUC(gw, 1)
		_, err := uc.Submit(context.Background(), TryOnCommand{
			UserPhotoBase64: "!!!not-base64!!!",
			Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
		})
		if !errors.Is(err, ErrInvalidImageData) {
			t.Fatalf("expected ErrInvalidImageData, got %v", err)
		}
	})

	t.Run("full_set combined with another garment", func(t *testing.T) {
		uc := NewTryOnUseCase(nil, time.Millisecond, 1)
		_, err := uc.Submit(context.Background(), TryOnCommand{
			UserPhotoBase64: testPhoto,
			Garments: []GarmentInput{
				{ImageURL: "https://cdn/onepiece.jpg", Category: "maios"},
				{ImageURL: "https://cdn/bottom.jpg", Category: "calcinhas"},
			},
		})
		if !errors.Is(err, ErrInvalidGarmentSet) {
			t.Fatalf("expected ErrInvalidGarmentSet, got %v", err)
		}
	})
}

func TestTryOnUseCase_Submit_SingleGarment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	photoBytes, _ := base64.StdEncoding.DecodeString(testPhoto)
	garmentBytes := []byte("garment-image")

	gw.EXPECT().FetchImage(gomock.Any(), "https://cdn/top.jpg").Return(garmentBytes, nil)
	gw.EXPECT().
		CreateTask(gomock.Any(), photoBytes, garmentBytes, "upper").
		Return(tryon.TaskCreated{TaskID: "task-1", Status: "CREATED"}, nil)
	gw.EXPECT().
		GetTask(gomock.Any(), "task-1").
		Return(tryon.TaskResult{Status: "COMPLETED", Progress: 100, DownloadSignedURL: "https://signed/result-1.jpg"}, nil)

	uc := newTryOnUC(gw, 5)
	res, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: testPhoto,
		Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ResultImageURL != "https://signed/result-1.jpg" {
		t.Fatalf("unexpected result url: %s", res.ResultImageURL)
	}
	if res.TaskID != "task-1" {
		t.Fatalf("unexpected task id: %s", res.TaskID)
	}
	if len(res.Tasks) != 1 || res.Tasks[0].GarmentSlot != entities.SlotUpper {
		t.Fatalf("unexpected task trail: %+v", res.Tasks)
	}
}

func TestTryOnUseCase_Submit_DataURIPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	photoBytes := []byte("photo-from-data-uri")
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(photoBytes)

	gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
	gw.EXPECT().
		CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, model, _ []byte, _ string) (tryon.TaskCreated, error) {
			if !bytes.Equal(model, photoBytes) {
				t.Fatalf("data URI prefix not stripped, got %q", model)
			}
			return tryon.TaskCreated{TaskID: "t"}, nil
		})
	gw.EXPECT().GetTask(gomock.Any(), "t").Return(tryon.TaskResult{Status: "COMPLETED", DownloadSignedURL: "https://signed/r.jpg"}, nil)

	uc := newTryOnUC(gw, 3)
	if _, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: dataURI,
		Garments:        []GarmentInput{{ImageURL: "https://cdn/one.jpg", Category: "maios"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTryOnUseCase_Submit_SequentialComposition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	originalPhoto, _ := base64.StdEncoding.DecodeString(testPhoto)
	topBytes := []byte("top-garment")
	bottomBytes := []byte("bottom-garment")
	intermediate := []byte("composited-with-top")

	// Garments arrive lower-first; the pipeline must reorder to upper-first.
	gw.EXPECT().FetchImage(gomock.Any(), "https://cdn/top.jpg").Return(topBytes, nil)
	gw.EXPECT().
		CreateTask(gomock.Any(), originalPhoto, topBytes, "upper").
		Return(tryon.TaskCreated{TaskID: "task-upper"}, nil)
	gw.EXPECT().
		GetTask(gomock.Any(), "task-upper").
		Return(tryon.TaskResult{Status: "COMPLETED", Progress: 100, DownloadSignedURL: "https://signed/step1.jpg"}, nil)
	gw.EXPECT().FetchImage(gomock.Any(), "https://signed/step1.jpg").Return(intermediate, nil)

	gw.EXPECT().FetchImage(gomock.Any(), "https://cdn/bottom.jpg").Return(bottomBytes, nil)
	gw.EXPECT().
		CreateTask(gomock.Any(), gomock.Any(), bottomBytes, "lower").
		DoAndReturn(func(_ context.Context, model, _ []byte, _ string) (tryon.TaskCreated, error) {
			if !bytes.Equal(model, intermediate) {
				t.Fatalf("second task must compose over the first result, got %q", model)
			}
			if bytes.Equal(model, originalPhoto) {
				t.Fatal("second task reused the original photo")
			}
			return tryon.TaskCreated{TaskID: "task-lower"}, nil
		})
	gw.EXPECT().
		GetTask(gomock.Any(), "task-lower").
		Return(tryon.TaskResult{Status: "COMPLETED", Progress: 100, DownloadSignedURL: "https://signed/final.jpg"}, nil)

	uc := newTryOnUC(gw, 5)
	res, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: testPhoto,
		Garments: []GarmentInput{
			{ImageURL: "https://cdn/bottom.jpg", Category: "calcinhas"},
			{ImageURL: "https://cdn/top.jpg", Category: "tops"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ResultImageURL != "https://signed/final.jpg" || res.TaskID != "task-lower" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Tasks) != 2 || res.Tasks[0].GarmentSlot != entities.SlotUpper || res.Tasks[1].GarmentSlot != entities.SlotLower {
		t.Fatalf("unexpected task order: %+v", res.Tasks)
	}
}

func TestTryOnUseCase_Submit_PollCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	const attempts = 4
	gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
	gw.EXPECT().CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tryon.TaskCreated{TaskID: "slow"}, nil)
	gw.EXPECT().
		GetTask(gomock.Any(), "slow").
		Return(tryon.TaskResult{Status: "PROCESSING", Progress: 40}, nil).
		Times(attempts)

	uc := newTryOnUC(gw, attempts)
	_, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: testPhoto,
		Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
	})

	var timeout *TaskTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected TaskTimeoutError, got %v", err)
	}
	if timeout.TaskID != "slow" || timeout.Slot != entities.SlotUpper {
		t.Fatalf("unexpected timeout detail: %+v", timeout)
	}
}

func TestTryOnUseCase_Submit_TaskFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
	gw.EXPECT().CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tryon.TaskCreated{TaskID: "bad"}, nil)
	gw.EXPECT().
		GetTask(gomock.Any(), "bad").
		Return(tryon.TaskResult{Status: "FAILED", Error: "no person detected"}, nil)

	uc := newTryOnUC(gw, 5)
	_, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: testPhoto,
		Garments:        []GarmentInput{{ImageURL: "https://cdn/bottom.jpg", Category: "calcinhas"}},
	})

	var gpErr *GarmentProcessingError
	if !errors.As(err, &gpErr) {
		t.Fatalf("expected GarmentProcessingError, got %v", err)
	}
	if gpErr.Slot != entities.SlotLower || gpErr.Reason != "no person detected" {
		t.Fatalf("unexpected failure detail: %+v", gpErr)
	}
}

func TestTryOnUseCase_Submit_TransientPollErrorsContinue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockITryOnGateway(ctrl)

	gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
	gw.EXPECT().CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tryon.TaskCreated{TaskID: "flaky"}, nil)
	gomock.InOrder(
		gw.EXPECT().GetTask(gomock.Any(), "flaky").Return(tryon.TaskResult{}, errors.New("connection reset")),
		gw.EXPECT().GetTask(gomock.Any(), "flaky").Return(tryon.TaskResult{Status: "PROCESSING", Progress: 80}, nil),
		gw.EXPECT().GetTask(gomock.Any(), "flaky").Return(tryon.TaskResult{Status: "COMPLETED", Progress: 100, DownloadSignedURL: "https://signed/ok.jpg"}, nil),
	)

	uc := newTryOnUC(gw, 10)
	res, err := uc.Submit(context.Background(), TryOnCommand{
		UserPhotoBase64: testPhoto,
		Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ResultImageURL != "https://signed/ok.jpg" {
		t.Fatalf("unexpected result url: %s", res.ResultImageURL)
	}
}

func TestTryOnUseCase_Submit_ProviderErrorsKeepIdentity(t *testing.T) {
	t.Run("insufficient credits on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockITryOnGateway(ctrl)

		gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
		gw.EXPECT().
			CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(tryon.TaskCreated{}, tryon.ErrInsufficientCredits)

		uc := newTryOnUC(gw, 3)
		_, err := uc.Submit(context.Background(), TryOnCommand{
			UserPhotoBase64: testPhoto,
			Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
		})
		if !errors.Is(err, tryon.ErrInsufficientCredits) {
			t.Fatalf("expected ErrInsufficientCredits, got %v", err)
		}
	})

	t.Run("rate limited while polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockITryOnGateway(ctrl)

		gw.EXPECT().FetchImage(gomock.Any(), gomock.Any()).Return([]byte("g"), nil)
		gw.EXPECT().CreateTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tryon.TaskCreated{TaskID: "x"}, nil)
		gw.EXPECT().GetTask(gomock.Any(), "x").Return(tryon.TaskResult{}, tryon.ErrRateLimited)

		uc := newTryOnUC(gw, 10)
		_, err := uc.Submit(context.Background(), TryOnCommand{
			UserPhotoBase64: testPhoto,
			Garments:        []GarmentInput{{ImageURL: "https://cdn/top.jpg", Category: "tops"}},
		})
		if !errors.Is(err, tryon.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})
}
