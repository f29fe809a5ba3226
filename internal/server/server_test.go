package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(db))

	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	srv := NewServer(
		testSecret,
		service.NewCheckoutService(db, orderRepo, paymentRepo, repository.NewProductRepository(db)),
		service.NewOrderService(db, orderRepo),
		service.NewPaymentService(db, orderRepo, paymentRepo),
		service.NewAddressService(db, repository.NewAddressRepository(db)),
		service.NewSavedCardService(db, repository.NewSavedCardRepository(db)),
		service.NewUserService(repository.NewUserRepository(db)),
	)
	return srv, db
}

func bearerToken(t *testing.T, username string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	require.NoError(t, db.Create(&model.User{Username: "alice"}).Error)
	token := bearerToken(t, "alice")

	body := `{
		"customerName": "Alice Smith",
		"phoneNumber": "555-0100",
		"addressLine": "1 Main St",
		"city": "Springfield",
		"postalCode": "12345",
		"cardholderName": "Alice Smith",
		"cardNumber": "4111111111111111",
		"amount": "49.99",
		"items": [{"productId": 9999, "quantity": 2, "price": "10.00"}]
	}`

	rec := doJSON(srv, http.MethodPost, "/api/checkout/complete", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		OrderID uint   `json:"orderId"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotZero(t, resp.OrderID)

	rec = doJSON(srv, http.MethodGet, fmt.Sprintf("/api/payments/order/%d", resp.OrderID), token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutEndpoint_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/checkout/complete", "", `{"amount": "1.00"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutEndpoint_InvalidAmount(t *testing.T) {
	srv, db := newTestServer(t)
	require.NoError(t, db.Create(&model.User{Username: "alice"}).Error)

	rec := doJSON(srv, http.MethodPost, "/api/checkout/complete", bearerToken(t, "alice"), `{"amount": "0"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetDefaultAddressEndpoint_CrossOwner(t *testing.T) {
	srv, db := newTestServer(t)
	require.NoError(t, db.Create(&model.User{Username: "alice"}).Error)
	require.NoError(t, db.Create(&model.User{Username: "mallory"}).Error)

	rec := doJSON(srv, http.MethodPost, "/api/addresses", bearerToken(t, "alice"),
		`{"fullName": "Alice Smith", "addressLine": "1 Main St", "city": "Springfield", "postalCode": "12345", "isDefault": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(srv, http.MethodPut, "/api/addresses/1/set-default", bearerToken(t, "mallory"), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
