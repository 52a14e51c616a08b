package main

import (
	"fmt"
	"log"
	"os"

	"team-lifecycle-backend/internal/auth"
	"team-lifecycle-backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Roster lists the platform identities to mint tokens for
type Roster struct {
	Users []RosterUser `yaml:"users"`
}

// RosterUser is one platform identity
type RosterUser struct {
	UserID   string `yaml:"user_id"`
	Username string `yaml:"username"`
}

// Issues bearer tokens for every user in a YAML roster, for local testing of chat front ends.
// Usage: go run scripts/issue_tokens.go [roster.yaml]
func main() {
	path := "scripts/data/roster.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	roster, err := loadRoster(path)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	svc, err := auth.NewAuthService(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	out := make(map[string]string, len(roster.Users))
	for _, u := range roster.Users {
		tok, err := svc.GenerateJWT(u.UserID, u.Username)
		if err != nil {
			log.Fatalf("Failed to issue token for %q: %v", u.UserID, err)
		}
		out[u.UserID] = tok.AccessToken
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(map[string]interface{}{"tokens": out}); err != nil {
		log.Fatalf("Failed to write tokens: %v", err)
	}
}

func loadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, u := range roster.Users {
		if u.UserID == "" {
			return nil, fmt.Errorf("user %d has no user_id", i+1)
		}
	}
	return &roster, nil
}
