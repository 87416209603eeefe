package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dangerclosesec/motorlot/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:8080"
)

func main() {
	// Initialize the client
	config := &client.Config{
		BaseURL: serviceURL,
		Timeout: 10 * time.Second,
	}
	c := client.NewClient(config)

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Run the example
	if err := runExample(ctx, c); err != nil {
		log.Fatalf("Error running example: %v", err)
	}
}

func runExample(ctx context.Context, c *client.Client) error {
	fmt.Println("Running motorlot SDK example...")

	// Step 1: Register an account. The client keeps the token for the
	// requests that follow.
	fmt.Println("\n1. Signing up...")
	auth, err := c.Signup(ctx, &client.SignupRequest{
		Email:    fmt.Sprintf("dealer+%d@example.com", time.Now().Unix()),
		Password: "correct_horse_battery",
		FullName: "Example Dealer",
	})
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	fmt.Printf("Signed up as %s\n", auth.User.Email)

	// Step 2: Create an organization with a primary contact email
	fmt.Println("\n2. Creating organization...")
	org, err := c.CreateOrganization(ctx, &client.OrganizationRequest{Name: "Lakeside Motors"})
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	if _, err := c.AddOrganizationEmail(ctx, org.ID, &client.EmailRequest{
		Address:   "sales@lakeside.example",
		IsPrimary: true,
	}); err != nil {
		return fmt.Errorf("failed to add contact email: %w", err)
	}
	fmt.Printf("Organization created: %s (%s)\n", org.Name, org.ID)

	// Step 3: Register a vehicle in that organization
	fmt.Println("\n3. Creating vehicle...")
	vehicleMake, vehicleModel := "Honda", "Accord"
	price := 4250.0
	vehicle, err := c.CreateVehicle(ctx, &client.VehicleRequest{
		VIN:            "1HGCM82633A004352",
		Make:           &vehicleMake,
		Model:          &vehicleModel,
		Price:          &price,
		OrganizationID: &org.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	fmt.Printf("Vehicle created: %s (%s)\n", vehicle.VIN, vehicle.ID)

	// Step 4: List the caller's vehicles
	fmt.Println("\n4. Listing vehicles...")
	list, err := c.ListVehicles(ctx, 0, 100)
	if err != nil {
		return fmt.Errorf("failed to list vehicles: %w", err)
	}
	fmt.Printf("Found %d vehicle(s)\n", list.Count)

	// Step 5: Sparse update, then clean up
	fmt.Println("\n5. Updating and deleting...")
	color := "black"
	if _, err := c.UpdateVehicle(ctx, vehicle.ID, &client.VehicleRequest{Color: &color}); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if err := c.DeleteVehicle(ctx, vehicle.ID); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if err := c.DeleteOrganization(ctx, org.ID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	fmt.Println("\nDone.")
	return nil
}
