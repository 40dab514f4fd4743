package domain

import "time"

// Simulation is a stored engine run together with the inputs that produced it.
type Simulation struct {
	ID          string        `json:"id"`
	Inputs      ProjectInputs `json:"inputs"`
	Projection  Projection    `json:"projection"`
	Explanation string        `json:"explanation,omitempty"`
	Cached      bool          `json:"cached"`
	CreatedAt   time.Time     `json:"created_at"`
}
