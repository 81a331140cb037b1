package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calistar_backend/internal/adapter/http/handlers/mocks"
	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/infrastructure/tryon"
	"calistar_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func tryonRouter(h *TryOnHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/tryon", h.CreateTryOn)
	return r
}

func validTryOnBody() []byte {
	return []byte(`{
		"userPhotoBase64": "ZmFrZS1waG90bw==",
		"garments": [{"imageUrl": "https://cdn/top.jpg", "category": "tops"}]
	}`)
}

func TestTryOnHandler_CreateTryOn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITryOnUseCase(ctrl)
		r := tryonRouter(NewTryOnHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/tryon", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITryOnUseCase(ctrl)
		r := tryonRouter(NewTryOnHandler(uc))

		uc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.TryOnCommand) (usecase.TryOnResult, error) {
				if len(cmd.Garments) != 1 || cmd.Garments[0].Category != "tops" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.TryOnResult{ResultImageURL: "https://signed/r.jpg", TaskID: "task-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/tryon", bytes.NewBuffer(validTryOnBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Success        bool   `json:"success"`
			ResultImageURL string `json:"resultImageUrl"`
			TaskID         string `json:"taskId"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if !body.Success || body.ResultImageURL != "https://signed/r.jpg" || body.TaskID != "task-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
			code string
		}{
			{"missing input", usecase.ErrMissingTryOnInput, http.StatusBadRequest, "INVALID_TRYON_INPUT"},
			{"invalid image data", usecase.ErrInvalidImageData, http.StatusBadRequest, "INVALID_IMAGE_DATA"},
			{"full set combined", usecase.ErrInvalidGarmentSet, http.StatusBadRequest, "INVALID_GARMENT_SET"},
			{"insufficient credits", tryon.ErrInsufficientCredits, http.StatusPaymentRequired, "INSUFFICIENT_CREDITS"},
			{"rate limited", tryon.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
			{"timeout", &usecase.TaskTimeoutError{Slot: entities.SlotUpper, TaskID: "t1"}, http.StatusGatewayTimeout, "TRYON_TIMEOUT"},
			{"processing failure", &usecase.GarmentProcessingError{Slot: entities.SlotLower, Reason: "no person detected"}, http.StatusBadGateway, "TRYON_FAILED"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockITryOnUseCase(ctrl)
				r := tryonRouter(NewTryOnHandler(uc))

				uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.TryOnResult{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/tryon", bytes.NewBuffer(validTryOnBody()))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
				}
				var body struct {
					Code string `json:"code"`
				}
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body.Code != tc.code {
					t.Fatalf("expected code %s, got %s", tc.code, body.Code)
				}
			})
		}
	})
}
