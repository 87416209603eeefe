package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Password != "correct_password" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
			return
		}

		json.NewEncoder(w).Encode(AuthResponse{
			User:  &User{ID: "u-1", Email: req.Email, IsActive: true},
			Token: "issued-token",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	// Successful login stores the token for later requests
	resp, err := client.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "correct_password",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Token != "issued-token" {
		t.Errorf("Expected issued token, got %s", resp.Token)
	}
	if client.token != "issued-token" {
		t.Error("Expected token to be stored on the client")
	}

	// Bad credentials surface the API error message
	_, err = client.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "wrong_password",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Errorf("Unexpected error message: %s", apiErr.Message)
	}

	// Missing fields are rejected before any request is made
	if _, err := client.Login(context.Background(), &LoginRequest{Email: "user@example.com"}); err == nil {
		t.Error("Expected error for missing password")
	}
	if _, err := client.Login(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestCreateVehicle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/vehicles/" {
			t.Errorf("Expected /api/vehicles/ path, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}

		var req VehicleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.VIN == "1HGCM82633A004352" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Vehicle with VIN 1HGCM82633A004352 already exists"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Vehicle{ID: "v-1", VIN: req.VIN, OwnerID: "u-1"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("test-token")

	vehicle, err := client.CreateVehicle(context.Background(), &VehicleRequest{VIN: "5YJSA1E26HF000337"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if vehicle.ID != "v-1" {
		t.Errorf("Expected vehicle ID v-1, got %s", vehicle.ID)
	}

	// Duplicate VIN surfaces the API error message
	_, err = client.CreateVehicle(context.Background(), &VehicleRequest{VIN: "1HGCM82633A004352"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Message != "Vehicle with VIN 1HGCM82633A004352 already exists" {
		t.Errorf("Unexpected error message: %s", apiErr.Message)
	}

	// Missing VIN is rejected before any request is made
	if _, err := client.CreateVehicle(context.Background(), &VehicleRequest{}); err == nil {
		t.Error("Expected error for missing VIN")
	}
}

func TestListVehicles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/vehicles/" {
			t.Errorf("Expected /api/vehicles/ path, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("Expected limit=10, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(List[Vehicle]{
			Data:  []Vehicle{{ID: "v-1", VIN: "5YJSA1E26HF000337"}},
			Count: 1,
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("test-token")

	list, err := client.ListVehicles(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if list.Count != 1 || len(list.Data) != 1 {
		t.Errorf("Unexpected list result: count=%d len=%d", list.Count, len(list.Data))
	}
}

func TestOrganizationContacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/organizations/":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Organization{ID: "o-1", Name: "Lakeside Motors"})
		case "/api/organizations/o-1/emails":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Email{ID: "e-1", Address: "sales@lakeside.example", OrganizationID: "o-1"})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("test-token")

	org, err := client.CreateOrganization(context.Background(), &OrganizationRequest{Name: "Lakeside Motors"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	email, err := client.AddOrganizationEmail(context.Background(), org.ID, &EmailRequest{Address: "sales@lakeside.example"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if email.Address != "sales@lakeside.example" {
		t.Errorf("Unexpected email address: %s", email.Address)
	}
}
