package utils

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error répond avec un message public ; l'erreur interne part dans les logs,
// jamais dans la réponse.
func Error(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		LogError("[%d] %s: %v", status, msg, err)
	} else {
		LogError("[%d] %s", status, msg)
	}
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

func ErrorSimple(w http.ResponseWriter, status int, msg string) {
	Error(w, status, msg, nil)
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
