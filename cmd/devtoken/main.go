// Command devtoken mints a bearer token for local runs with auth.provider=jwt.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pymerp/config"
	"pymerp/internal/infra/auth"
)

func main() {
	uid := flag.String("uid", "", "user id (token subject)")
	email := flag.String("email", "", "user email")
	companyID := flag.String("company", "", "company id claim")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		slog.Error("Failed to create jwt service", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := jwtService.Mint(*uid, *email, *companyID)
	if err != nil {
		slog.Error("Failed to mint token", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}
