package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flashbots/protover"
	"github.com/flashbots/protover/metrics"
	"github.com/flashbots/protover/services"
)

// Handler serves the registry's HTTP API.
type Handler struct {
	store services.AdvertisementStore
	voter *services.Voter
	log   *slog.Logger
}

// NewHandler creates a handler over the given store and voter.
func NewHandler(store services.AdvertisementStore, voter *services.Voter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{store: store, voter: voter, log: log}
}

// RegisterRoutes registers the registry routes with the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/relay/advertise", h.advertise)
	r.Get("/consensus", h.consensus)
	r.Post("/parse", h.parse)
	r.Post("/vote", h.vote)
	r.Post("/all-supported", h.allSupported)
	r.Get("/supported", h.supported)
	r.Get("/supported/check", h.supportedCheck)
	r.Get("/legacy/{version}", h.legacy)
}

// ParseRequest carries a protocol list to canonicalize or check.
type ParseRequest struct {
	Protocols string `json:"protocols"`
}

// ParseResponse carries the canonical form of a parsed protocol list.
type ParseResponse struct {
	Protocols string `json:"protocols"`
}

// VoteRequest carries explicit protocol lists and a threshold to vote on.
type VoteRequest struct {
	Entries   []string `json:"entries"`
	Threshold int      `json:"threshold"`
}

// VoteResponse carries the canonical vote result.
type VoteResponse struct {
	Protocols string `json:"protocols"`
}

// SupportCheckResponse answers one (protocol, version) support query.
type SupportCheckResponse struct {
	Protocol  string           `json:"protocol"`
	Version   protover.Version `json:"version"`
	Supported bool             `json:"supported"`
}

// AllSupportedResponse reports whether a remote requirement set is fully
// supported here, and the unsupported remainder when it is not.
type AllSupportedResponse struct {
	Supported bool   `json:"supported"`
	Missing   string `json:"missing,omitempty"`
}

func (h *Handler) advertise(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	adv, err := services.DecodeMessage[services.RelayAdvertisement](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}

	if adv.Fingerprint == "" {
		http.Error(w, "Missing relay fingerprint", http.StatusBadRequest)
		return
	}

	// Validate the protocol list on submission so votes never see
	// unparseable advertisements.
	if adv.Protocols != "" {
		if _, err := protover.ParseEntry(adv.Protocols); err != nil {
			metrics.IncParseError()
			http.Error(w, fmt.Sprintf("Invalid protocol list: %v", err), http.StatusBadRequest)
			return
		}
	}

	if err := h.store.SaveAdvertisement(adv); err != nil {
		http.Error(w, fmt.Sprintf("Failed to store advertisement: %v", err), http.StatusInternalServerError)
		return
	}
	metrics.IncAdvertisementStored()

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": "Advertisement stored",
	})
}

func (h *Handler) consensus(w http.ResponseWriter, r *http.Request) {
	signed, err := h.voter.ComputeConsensus()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute consensus: %v", err), http.StatusInternalServerError)
		return
	}
	metrics.IncConsensusComputed()

	responseData, err := services.SerializeMessage(signed)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to serialize consensus: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(responseData)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := services.DecodeMessage[ParseRequest](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}

	entry, err := protover.ParseEntry(req.Protocols)
	if err != nil {
		metrics.IncParseError()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ParseResponse{Protocols: entry.String()})
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := services.DecodeMessage[VoteRequest](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	metrics.IncVoteComputed()

	result := protover.ComputeVoteFromList(req.Entries, req.Threshold)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VoteResponse{Protocols: result})
}

func (h *Handler) allSupported(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := services.DecodeMessage[ParseRequest](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}

	entry, err := protover.ParseEntry(req.Protocols)
	if err != nil {
		metrics.IncParseError()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := AllSupportedResponse{Supported: true}
	if missing := entry.AllSupported(); missing != nil {
		resp.Supported = false
		resp.Missing = missing.String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) supported(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(protover.SupportedProtocols))
}

func (h *Handler) supportedCheck(w http.ResponseWriter, r *http.Request) {
	protocolID, err := strconv.ParseUint(r.URL.Query().Get("protocol"), 10, 32)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid protocol identifier: %v", err), http.StatusBadRequest)
		return
	}
	version, err := strconv.ParseUint(r.URL.Query().Get("version"), 10, 32)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid version: %v", err), http.StatusBadRequest)
		return
	}

	protocol, err := protover.ProtocolByID(uint32(protocolID))
	if err != nil {
		// An unrecognized identifier is a distinct error, never mapped to
		// a default protocol.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SupportCheckResponse{
		Protocol:  protocol.String(),
		Version:   protover.Version(version),
		Supported: protover.IsSupportedHere(protocol, protover.Version(version)),
	})
}

func (h *Handler) legacy(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")

	entry := protover.ComputeForOldTor(version)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ParseResponse{Protocols: entry.String()})
}
