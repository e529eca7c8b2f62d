package controllers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dragonpearl/reservation-app/models"
)

func TestGetPaymentConfig(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	r := setupRouterForTest(db, &stubSMS{}, &stubPayments{})
	token := loginAdmin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/payments/config", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "SB-Mid-client-test", resp.Data["client_key"])
	assert.Equal(t, "sandbox", resp.Data["environment"])
}

func TestGetPaymentConfigUnconfigured(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	r := setupRouterForTest(db, &stubSMS{}, &stubPayments{configErr: errors.New("MIDTRANS_SERVER_KEY is not set")})
	token := loginAdmin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/payments/config", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChargeDeposit(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)

	reservation := models.Reservation{
		Reference: uuid.NewString(),
		Name:      "Amélie Laurent",
		Email:     "amelie@example.com",
		Phone:     "+33700000001",
		Guests:    2,
		Date:      "2026-09-14",
		Time:      "19:30",
		Status:    "pending",
	}
	db.Create(&reservation)

	r := setupRouterForTest(db, &stubSMS{}, &stubPayments{})
	token := loginAdmin(t, r)

	url := fmt.Sprintf("/admin/reservations/%d/deposit", reservation.ID)
	req := httptest.NewRequest(http.MethodPost, url, jsonBody(`{"amount":2500}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			OrderID           string `json:"order_id"`
			TransactionStatus string `json:"transaction_status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "DEPOSIT-"+reservation.Reference, resp.Data.OrderID)
	assert.Equal(t, "pending", resp.Data.TransactionStatus)
}

func TestChargeDepositUnknownReservation(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	r := setupRouterForTest(db, &stubSMS{}, &stubPayments{})
	token := loginAdmin(t, r)

	req := httptest.NewRequest(http.MethodPost, "/admin/reservations/999/deposit", jsonBody(`{"amount":2500}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckDepositStatus(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	r := setupRouterForTest(db, &stubSMS{}, &stubPayments{status: "success"})
	token := loginAdmin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/payments/DEPOSIT-abc/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			OrderID string `json:"order_id"`
			Status  string `json:"status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "DEPOSIT-abc", resp.Data.OrderID)
	assert.Equal(t, "success", resp.Data.Status)
}
