package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/interfaces/api"
)

// TokenConfig holds configuration for the token command
type TokenConfig struct {
	Settings *config.Config
	Subject  string
	Out      io.Writer
}

// TokenCommand prints a bearer token accepted by the API server
type TokenCommand struct {
	config TokenConfig
	out    io.Writer
}

// NewTokenCommand creates a new token command
func NewTokenCommand(config TokenConfig) *TokenCommand {
	return &TokenCommand{config: config, out: stdout(config.Out)}
}

// Execute signs and prints the token
func (c *TokenCommand) Execute(_ context.Context) error {
	server := c.config.Settings.Server
	if server.JWTSecret == "" {
		return fmt.Errorf("server.jwt_secret must be set to issue tokens")
	}

	token, err := api.GenerateToken(server.JWTSecret, server.JWTIssuer, c.config.Subject, server.TokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, token)
	return nil
}
