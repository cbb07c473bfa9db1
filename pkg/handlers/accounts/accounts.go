// Package accounts holds the HTTP handlers for the account surface.
package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/greenmiles/odometer-rewards/pkg/api"
	"github.com/greenmiles/odometer-rewards/pkg/mapping"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.ApiStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.ApiStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newAccount.UserId == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), mapping.ToDomainNewAccount(&newAccount))
	if err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			http.Error(w, "Account for this user already exists", http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create account: %v", err), http.StatusInternalServerError)
		return
	}

	apiAccount := mapping.ToApiAccount(created)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAccountByUserId handles the logic for retrieving a user's account.
func (h *AccountsHandler) GetAccountByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	account, err := h.Store.GetAccount(r.Context(), userId)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusInternalServerError)
		return
	}

	apiAccount := mapping.ToApiAccount(account)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
