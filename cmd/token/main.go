// Command token issues a signed access token for local testing.
//
//	go run ./cmd/token -user 6f1c... -role admin -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	userFlag := flag.String("user", "", "user id (UUID); a random one is generated when empty")
	roleFlag := flag.String("role", string(identity.RoleUser), `role: user, "restaurant owner", admin or deliveryagent`)
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	tokens, err := httpin.NewTokenCodec(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("JWT_SECRET: %v", err)
	}

	userID := kernel.NewUUID()
	if *userFlag != "" {
		if userID, err = kernel.UUIDFromString(*userFlag); err != nil {
			log.Fatalf("Invalid user id: %v", err)
		}
	}

	role, err := identity.ParseRole(*roleFlag)
	if err != nil {
		log.Fatalf("Invalid role: %v", err)
	}

	principal, err := identity.NewPrincipal(userID, role)
	if err != nil {
		log.Fatalf("Invalid principal: %v", err)
	}

	now := time.Now()
	token, err := tokens.Issue(principal, now, now.Add(*ttl))
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, role %q, expires %s\n", userID, role, now.Add(*ttl).Format(time.RFC3339))
	fmt.Println(token)
}
