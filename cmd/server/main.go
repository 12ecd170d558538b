package main

import (
	"blackjack_backend/internal/app"
	"blackjack_backend/internal/config"
	"blackjack_backend/internal/config/env"
	"blackjack_backend/pkg/token"
	"context"
	"fmt"

	"github.com/alecthomas/kong"
)

type Globals struct {
	EnvFile string `name:"env-file" default:".env" help:"Path to the .env file."`
	Config  string `short:"c" default:"config.yaml" help:"Path to the table rules YAML file."`
}

type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	return app.NewApp(g.EnvFile, g.Config).Run(context.Background())
}

// TokenCmd выпускает access токен для игрока. Нужен для локальной отладки,
// в бою токены выдает сервис авторизации
type TokenCmd struct {
	UserID int `arg:"" name:"user-id" help:"Player ID to put into the token."`
}

func (c *TokenCmd) Run(g *Globals) error {
	if err := config.Load(g.EnvFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	cfg, err := env.NewJWTConfig()
	if err != nil {
		return err
	}

	tok, err := token.GenerateAccessToken(c.UserID, cfg.AccessTokenSecretKey(), cfg.AccessTokenDuration())
	if err != nil {
		return err
	}

	fmt.Println(tok)
	return nil
}

type CLI struct {
	Globals

	Serve ServeCmd `cmd:"" default:"1" help:"Run the blackjack HTTP server."`
	Token TokenCmd `cmd:"" help:"Issue an access token for a player."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack round engine backend"),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
