package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"figmarelay/appctx"
	"figmarelay/core"
	"figmarelay/models"
)

const maxEventBodyBytes = 1 << 20

// FigmaEventsUseCase formats and delivers the supported Figma webhook events
type FigmaEventsUseCase interface {
	HandleFileComment(ctx context.Context, event *models.FigmaEvent) models.NotificationResult
	HandleVersionUpdate(ctx context.Context, event *models.FigmaEvent) models.NotificationResult
}

type FigmaEventsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FigmaEventsHandler struct {
	useCase        FigmaEventsUseCase
	passcode       string
	requestTimeout time.Duration
}

// NewFigmaEventsHandler creates the webhook handler. An empty passcode accepts every event.
func NewFigmaEventsHandler(useCase FigmaEventsUseCase, passcode string, requestTimeout time.Duration) *FigmaEventsHandler {
	return &FigmaEventsHandler{
		useCase:        useCase,
		passcode:       passcode,
		requestTimeout: requestTimeout,
	}
}

func (h *FigmaEventsHandler) HandleFigmaEvent(w http.ResponseWriter, r *http.Request) {
	requestID := core.NewID("evt")
	log.Printf("📨 [%s] Figma webhook received from %s", requestID, r.RemoteAddr)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBodyBytes))
	if err != nil {
		log.Printf("❌ [%s] Failed to read request body: %v", requestID, err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var event models.FigmaEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("❌ [%s] Failed to parse Figma event: %v", requestID, err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if h.passcode != "" && event.Passcode != h.passcode {
		log.Printf("❌ [%s] Rejecting %s event with invalid passcode", requestID, event.EventType)
		http.Error(w, "invalid passcode", http.StatusUnauthorized)
		return
	}

	ctx := appctx.SetRequestID(r.Context(), requestID)
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	var result models.NotificationResult
	switch event.EventType {
	case models.FigmaEventTypeFileComment:
		result = h.useCase.HandleFileComment(ctx, &event)
	case models.FigmaEventTypeFileVersionUpdate:
		result = h.useCase.HandleVersionUpdate(ctx, &event)
	default:
		log.Printf("⚠️ [%s] Unknown event type %q", requestID, event.EventType)
		h.writeTextResponse(w, http.StatusBadRequest, "Unknown event type")
		return
	}

	log.Printf("📋 [%s] %s event handled: %d %s", requestID, event.EventType, result.StatusCode, result.Message)
	h.writeJSONResponse(w, result.StatusCode, FigmaEventsResponse{
		Success: result.Success,
		Message: result.Message,
	})
}

func (h *FigmaEventsHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FigmaEventsHandler) SetupEndpoints(router *mux.Router, webhookPath string) {
	log.Printf("🚀 Registering Figma webhook endpoints")

	router.HandleFunc(webhookPath, h.HandleFigmaEvent).Methods("POST")
	log.Printf("✅ POST %s endpoint registered", webhookPath)

	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
	log.Printf("✅ GET /health endpoint registered")

	log.Printf("✅ All Figma webhook endpoints registered successfully")
}

func (h *FigmaEventsHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

func (h *FigmaEventsHandler) writeTextResponse(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Printf("❌ Failed to write response: %v", err)
	}
}
