// Command mint-token signs a development session token with the configured JWT secret,
// so the API can be exercised locally without the identity provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
)

func main() {
	userID := flag.String("user", "", "user id (uuid); random when empty")
	email := flag.String("email", "dev@example.com", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	id := uuid.New()
	if *userID != "" {
		if id, err = uuid.Parse(*userID); err != nil {
			log.Fatalf("invalid user id %q: %v", *userID, err)
		}
	}

	validator, err := auth.NewTokenValidator(cfg.Auth)
	if err != nil {
		log.Fatalf("invalid auth configuration: %v", err)
	}

	token, err := validator.SignToken(model.User{ID: id, Email: *email, Role: "authenticated"}, *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Fprintln(os.Stderr, "Development token generated successfully!")
	fmt.Fprintln(os.Stderr, "======================================")
	fmt.Fprintf(os.Stderr, "User ID: %s\n", id)
	fmt.Fprintf(os.Stderr, "Expires: %s\n", time.Now().Add(*ttl).Format(time.RFC3339))
	fmt.Fprintln(os.Stderr, "======================================")
	fmt.Println(token)
}
