package entities

import "strings"

// GarmentSlot classifies a garment by the body region it covers. The slot
// controls composition order: upper garments must be applied before lower
// ones, and a full_set garment is composed alone by the vision provider.

type GarmentSlot string

const (
	SlotUpper   GarmentSlot = "upper"
	SlotLower   GarmentSlot = "lower"
	SlotFullSet GarmentSlot = "full_set"
)

// garmentSlotByCategory is the catalog-category policy table. Categories not
// listed here fall back to full_set (one-piece swimwear, accessories shot on
// a full-body model). Extend it as catalog categories grow.
var garmentSlotByCategory = map[string]GarmentSlot{
	"tops":      SlotUpper,
	"calcinhas": SlotLower,
}

func SlotForCategory(category string) GarmentSlot {
	if s, ok := garmentSlotByCategory[strings.ToLower(strings.TrimSpace(category))]; ok {
		return s
	}
	return SlotFullSet
}

// CompositionRank orders garments for sequential try-on: upper before lower.
func (s GarmentSlot) CompositionRank() int {
	if s == SlotLower {
		return 1
	}
	return 0
}

type TryOnTaskStatus string

const (
	TryOnTaskQueued     TryOnTaskStatus = "queued"
	TryOnTaskProcessing TryOnTaskStatus = "processing"
	TryOnTaskCompleted  TryOnTaskStatus = "completed"
	TryOnTaskFailed     TryOnTaskStatus = "failed"
	TryOnTaskTimedOut   TryOnTaskStatus = "timed_out"
)

// TryOnTask mirrors one unit of asynchronous work at the vision provider.
type TryOnTask struct {
	TaskID         string          `json:"task_id"`
	Status         TryOnTaskStatus `json:"status"`
	Progress       int             `json:"progress"`
	ResultImageURL string          `json:"result_image_url,omitempty"`
	GarmentSlot    GarmentSlot     `json:"garment_slot"`
}
