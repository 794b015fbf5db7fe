package models

import "net/http"

// Outcome messages returned to the webhook caller
const (
	ResultMessageSent            = "Notification sent"
	ResultMessageUnknownFileName = "Unknown file name"
	ResultMessageNodeNotFound    = "Node ID not found"
	ResultMessageSendFailed      = "Error sending notification"
)

// NotificationResult is the outcome of formatting and delivering one event
type NotificationResult struct {
	StatusCode int
	Success    bool
	Message    string
}

func NotificationSent() NotificationResult {
	return NotificationResult{StatusCode: http.StatusOK, Success: true, Message: ResultMessageSent}
}

func UnknownFileName() NotificationResult {
	return NotificationResult{StatusCode: http.StatusBadRequest, Message: ResultMessageUnknownFileName}
}

func NodeNotFound() NotificationResult {
	return NotificationResult{StatusCode: http.StatusNotFound, Message: ResultMessageNodeNotFound}
}

func SendFailed() NotificationResult {
	return NotificationResult{StatusCode: http.StatusInternalServerError, Message: ResultMessageSendFailed}
}
