package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Home         *HomeHandler
	Note         *NoteHandler
	Todo         *TodoHandler
	Budget       *BudgetHandler
	Reminder     *ReminderHandler
	Subscription *SubscriptionHandler
	WebSocket    *WebSocketHandler
}

func RegisterRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/home", h.Home.List).Methods("GET", "OPTIONS")

	r.HandleFunc("/note", h.Note.Save).Methods("POST", "OPTIONS")
	r.HandleFunc("/note/{id:[0-9]+}", h.Note.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/note/{id:[0-9]+}", h.Note.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/todo", h.Todo.Save).Methods("POST", "OPTIONS")
	r.HandleFunc("/todo/{id:[0-9]+}", h.Todo.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/todo/{id:[0-9]+}", h.Todo.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/budget", h.Budget.Save).Methods("POST", "OPTIONS")
	r.HandleFunc("/budget/{id:[0-9]+}", h.Budget.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/budget/{id:[0-9]+}", h.Budget.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/reminders", h.Reminder.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/reminders/{noteId:[0-9]+}", h.Reminder.List).Methods("GET", "OPTIONS")
	r.HandleFunc("/reminders/{id:[0-9]+}", h.Reminder.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/subscribe", h.Subscription.Subscribe).Methods("POST", "OPTIONS")
	r.HandleFunc("/push/public-key", h.Subscription.PublicKey).Methods("GET", "OPTIONS")

	if h.WebSocket != nil {
		r.HandleFunc("/ws", h.WebSocket.HandleConnection)
	}

	r.HandleFunc("/health", healthHandler).Methods("GET")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"homefeed-server"}`))
}
