package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/application/spectra"
	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// SpectraHandler serves synthesis and detection endpoints.
type SpectraHandler struct {
	svc spectra.Service
}

// NewSpectraHandler creates the handler.
func NewSpectraHandler(svc spectra.Service) *SpectraHandler {
	return &SpectraHandler{svc: svc}
}

// synthesizeRequest is the wire form of a synthesis call.  Modality and
// nucleus arrive as free-form strings and are parsed leniently ("uv-vis",
// "UVVIS" and "uv_vis" all work).
type synthesizeRequest struct {
	Descriptor string `json:"descriptor"`
	Modality   string `json:"modality" binding:"required"`
	Nucleus    string `json:"nucleus"`
	Seed       *int64 `json:"seed"`
}

// Synthesize handles POST /api/v1/spectra/synthesize.
func (h *SpectraHandler) Synthesize(c *gin.Context) {
	var req synthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}

	modality, err := stypes.ParseModality(req.Modality)
	if err != nil {
		respondError(c, errors.Wrap(err, errors.CodeModalityUnsupported, err.Error()))
		return
	}

	var nucleus stypes.Nucleus
	if modality == stypes.ModalityNMR {
		nucleus, err = stypes.ParseNucleus(req.Nucleus)
		if err != nil {
			respondError(c, errors.Wrap(err, errors.CodeNucleusUnsupported, err.Error()))
			return
		}
	}

	res, err := h.svc.Synthesize(c.Request.Context(), stypes.SynthesisRequest{
		Descriptor: req.Descriptor,
		Modality:   modality,
		Nucleus:    nucleus,
		Seed:       req.Seed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, res)
}

type detectRequest struct {
	Descriptor string `json:"descriptor"`
}

type detectResponse struct {
	Descriptor string              `json:"descriptor"`
	Flags      stypes.FeatureFlags `json:"flags"`
}

// Detect handles POST /api/v1/spectra/detect.
func (h *SpectraHandler) Detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}

	flags, err := h.svc.Detect(c.Request.Context(), req.Descriptor)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detectResponse{Descriptor: req.Descriptor, Flags: flags})
}
