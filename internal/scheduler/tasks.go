package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskGeocodeAddress = "places.geocode"

type GeocodeAddressPayload struct {
	Address string `json:"address"`
}

// geocodeTaskID deduplicates pending retries for one address.
func geocodeTaskID(address string) string {
	return "geocode:" + address
}

func NewGeocodeAddressTask(payload GeocodeAddressPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskGeocodeAddress, data), nil
}

func ParseGeocodeAddressPayload(task *asynq.Task) (GeocodeAddressPayload, error) {
	var payload GeocodeAddressPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return GeocodeAddressPayload{}, err
	}
	return payload, nil
}
