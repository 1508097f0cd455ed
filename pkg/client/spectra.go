package client

import (
	"context"

	"github.com/synthspec/synthspec/pkg/types/common"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// SynthesizeRequest is the wire form of a synthesis call.  Modality and
// Nucleus accept the same lenient spellings as the server ("ir", "uv-vis",
// "1h", "proton").
type SynthesizeRequest struct {
	Descriptor string `json:"descriptor"`
	Modality   string `json:"modality"`
	Nucleus    string `json:"nucleus,omitempty"`
	Seed       *int64 `json:"seed,omitempty"`
}

// DetectResult pairs the echoed descriptor with its detected features.
type DetectResult struct {
	Descriptor string              `json:"descriptor"`
	Flags      stypes.FeatureFlags `json:"flags"`
}

// Synthesize generates a spectrum for the given descriptor.
func (c *Client) Synthesize(ctx context.Context, req SynthesizeRequest) (*stypes.SynthesisResult, error) {
	var env common.APIResponse[stypes.SynthesisResult]
	if err := c.post(ctx, "/api/v1/spectra/synthesize", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Detect runs functional-group detection on the given descriptor.
func (c *Client) Detect(ctx context.Context, descriptor string) (*DetectResult, error) {
	body := struct {
		Descriptor string `json:"descriptor"`
	}{Descriptor: descriptor}

	var env common.APIResponse[DetectResult]
	if err := c.post(ctx, "/api/v1/spectra/detect", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
