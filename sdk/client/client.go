// Package client is a small Go client for the motorlot HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config represents the configuration for the API client
type Config struct {
	// BaseURL is the base URL of the motorlot API
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to the motorlot API. After Login or Signup the access token is
// held on the client and sent with every subsequent request.
type Client struct {
	config *Config
	client *http.Client
	token  string
}

// NewClient creates a new API client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken installs an access token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.token = token
}

// User is the API representation of a user account.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Organization is the API representation of an organization.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	Emails    []Email   `json:"emails,omitempty"`
	Phones    []Phone   `json:"phones,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Email is a contact address attached to an organization.
type Email struct {
	ID             string `json:"id"`
	Address        string `json:"email_address"`
	IsPrimary      bool   `json:"is_primary"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// Phone is a contact number attached to an organization.
type Phone struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	PhoneType      string `json:"phone_type"`
	IsPrimary      bool   `json:"is_primary"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// Vehicle is the API representation of a vehicle.
type Vehicle struct {
	ID             string    `json:"id"`
	VIN            string    `json:"vin"`
	FinancingType  *string   `json:"financing_type,omitempty"`
	Make           *string   `json:"make,omitempty"`
	Model          *string   `json:"model,omitempty"`
	Year           *int      `json:"year,omitempty"`
	Color          *string   `json:"color,omitempty"`
	Mileage        *int      `json:"mileage,omitempty"`
	Price          *float64  `json:"price,omitempty"`
	MSRP           *float64  `json:"msrp,omitempty"`
	HasLien        *bool     `json:"has_lien,omitempty"`
	OwnerID        string    `json:"owner_id"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by Signup and Login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Signup registers an account and stores the returned token on the client.
func (c *Client) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/signup", req, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

// Me returns the authenticated user's own record.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List is the envelope for paginated collections.
type List[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

// ListVehicles returns the vehicles visible to the caller.
func (c *Client) ListVehicles(ctx context.Context, skip, limit int) (*List[Vehicle], error) {
	var resp List[Vehicle]
	if err := c.get(ctx, fmt.Sprintf("/api/vehicles/?skip=%d&limit=%d", skip, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetVehicle returns a single vehicle by ID.
func (c *Client) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	var vehicle Vehicle
	if err := c.get(ctx, "/api/vehicles/"+url.PathEscape(id), &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// VehicleRequest carries vehicle attributes for create and update calls. Nil
// fields are omitted, leaving the stored values untouched on update.
type VehicleRequest struct {
	VIN            string   `json:"vin,omitempty"`
	FinancingType  *string  `json:"financing_type,omitempty"`
	Make           *string  `json:"make,omitempty"`
	Model          *string  `json:"model,omitempty"`
	Year           *int     `json:"year,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Mileage        *int     `json:"mileage,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	MSRP           *float64 `json:"msrp,omitempty"`
	HasLien        *bool    `json:"has_lien,omitempty"`
	OrganizationID *string  `json:"organization_id,omitempty"`
}

// CreateVehicle registers a new vehicle owned by the caller.
func (c *Client) CreateVehicle(ctx context.Context, req *VehicleRequest) (*Vehicle, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.VIN == "" {
		return nil, errors.New("vin is required")
	}

	var vehicle Vehicle
	if err := c.post(ctx, "/api/vehicles/", req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicle applies a sparse update to a vehicle.
func (c *Client) UpdateVehicle(ctx context.Context, id string, req *VehicleRequest) (*Vehicle, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	var vehicle Vehicle
	if err := c.put(ctx, "/api/vehicles/"+url.PathEscape(id), req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}
	return c.delete(ctx, "/api/vehicles/"+url.PathEscape(id))
}

// ListOrganizations returns the organizations visible to the caller.
func (c *Client) ListOrganizations(ctx context.Context, skip, limit int) (*List[Organization], error) {
	var resp List[Organization]
	if err := c.get(ctx, fmt.Sprintf("/api/organizations/?skip=%d&limit=%d", skip, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrganization returns a single organization, including its contact records.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	var org Organization
	if err := c.get(ctx, "/api/organizations/"+url.PathEscape(id), &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// OrganizationRequest carries organization attributes for create and update.
type OrganizationRequest struct {
	Name string `json:"name"`
}

// CreateOrganization creates an organization owned by the caller.
func (c *Client) CreateOrganization(ctx context.Context, req *OrganizationRequest) (*Organization, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	var org Organization
	if err := c.post(ctx, "/api/organizations/", req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization renames an organization.
func (c *Client) UpdateOrganization(ctx context.Context, id string, req *OrganizationRequest) (*Organization, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	var org Organization
	if err := c.put(ctx, "/api/organizations/"+url.PathEscape(id), req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization removes an organization and its contact records.
func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}
	return c.delete(ctx, "/api/organizations/"+url.PathEscape(id))
}

// EmailRequest attaches a contact email to an organization.
type EmailRequest struct {
	Address   string `json:"email_address"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// AddOrganizationEmail attaches a contact email to an organization.
func (c *Client) AddOrganizationEmail(ctx context.Context, orgID string, req *EmailRequest) (*Email, error) {
	if orgID == "" {
		return nil, errors.New("organization id is required")
	}
	if req == nil || req.Address == "" {
		return nil, errors.New("email_address is required")
	}

	var email Email
	if err := c.post(ctx, "/api/organizations/"+url.PathEscape(orgID)+"/emails", req, &email); err != nil {
		return nil, err
	}
	return &email, nil
}

// PhoneRequest attaches a contact phone to an organization.
type PhoneRequest struct {
	Number    string `json:"number"`
	PhoneType string `json:"phone_type"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// AddOrganizationPhone attaches a contact phone to an organization.
func (c *Client) AddOrganizationPhone(ctx context.Context, orgID string, req *PhoneRequest) (*Phone, error) {
	if orgID == "" {
		return nil, errors.New("organization id is required")
	}
	if req == nil || req.Number == "" {
		return nil, errors.New("number is required")
	}

	var phone Phone
	if err := c.post(ctx, "/api/organizations/"+url.PathEscape(orgID)+"/phones", req, &phone); err != nil {
		return nil, err
	}
	return &phone, nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the given path and unmarshals the response
// into resp.
func (c *Client) post(ctx context.Context, path string, req interface{}, resp interface{}) error {
	return c.do(ctx, http.MethodPost, path, req, resp)
}

// put performs a PUT request to the given path and unmarshals the response
// into resp.
func (c *Client) put(ctx context.Context, path string, req interface{}, resp interface{}) error {
	return c.do(ctx, http.MethodPut, path, req, resp)
}

// get performs a GET request to the given path and unmarshals the response
// into resp.
func (c *Client) get(ctx context.Context, path string, resp interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, resp)
}

// delete performs a DELETE request to the given path.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body *bytes.Buffer
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	} else {
		body = &bytes.Buffer{}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if resp == nil {
		return nil
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
