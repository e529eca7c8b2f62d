package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go/coreapi"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/database"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/router"
	"github.com/dragonpearl/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		JWTSecret:     "test-secret",
		DefaultLocale: "fr",
		AdminUsername: "admin",
		AdminPassword: "secret123",
	}
}

// stubSMS records messages; set fail to simulate the gateway erroring.
type stubSMS struct {
	fail bool
	sent []string
}

func (s *stubSMS) Send(to, body string) error {
	if s.fail {
		return errors.New("sms gateway down")
	}
	s.sent = append(s.sent, to+": "+body)
	return nil
}

// stubPayments satisfies services.PaymentProvider without network calls.
type stubPayments struct {
	configErr error
	status    string
}

func (s *stubPayments) ValidateConfig() error {
	return s.configErr
}

func (s *stubPayments) ClientConfig() map[string]interface{} {
	return map[string]interface{}{"client_key": "SB-Mid-client-test", "environment": "sandbox"}
}

func (s *stubPayments) ChargeDeposit(reservation models.Reservation, amount int64) (*coreapi.ChargeResponse, error) {
	return &coreapi.ChargeResponse{
		TransactionID:     "txn-test-1",
		OrderID:           "DEPOSIT-" + reservation.Reference,
		TransactionStatus: "pending",
	}, nil
}

func (s *stubPayments) CheckStatus(orderID string) (string, error) {
	if s.status == "" {
		return "pending", nil
	}
	return s.status, nil
}

func setupRouterForTest(db *gorm.DB, sms *stubSMS, payments *stubPayments) *gin.Engine {
	return router.SetupRouter(db, testConfig(), sms, payments)
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if err := db.Create(&models.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		Role:         "admin",
	}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func jsonBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	body, _ := json.Marshal(map[string]string{
		"username": "admin",
		"password": "secret123",
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Data.Token
}
