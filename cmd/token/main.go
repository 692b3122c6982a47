// Command token issues a member token signed with the server's JWT_SECRET.
//
//	go run ./cmd/token -member alice -name Alice
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/tripsplit/internal/auth"
	"github.com/mmynk/tripsplit/internal/config"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/pkg/logging"
)

func main() {
	memberID := flag.String("member", "", "member ID to embed in the token")
	name := flag.String("name", "", "display name")
	flag.Parse()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set to issue tokens")
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	token, err := jwtManager.Generate(models.Member{ID: *memberID, Name: *name})
	if err != nil {
		slog.Error("Failed to generate token", "member_id", *memberID, "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
