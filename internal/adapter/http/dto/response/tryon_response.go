package response

import (
	"calistar_backend/internal/usecase"
)

type TryOnResponse struct {
	Success        bool   `json:"success"`
	ResultImageURL string `json:"resultImageUrl"`
	TaskID         string `json:"taskId"`
}

func FromTryOnResult(r usecase.TryOnResult) TryOnResponse {
	return TryOnResponse{
		Success:        true,
		ResultImageURL: r.ResultImageURL,
		TaskID:         r.TaskID,
	}
}
