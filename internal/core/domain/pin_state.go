package domain

import "time"

// PinState records the fingerprint of the last pin file written to an output path.
type PinState struct {
	Output      string    `json:"output,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Packages    int       `json:"packages,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
