package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrRequestFailed is returned after printing a FAILED envelope so the
	// process can exit non-zero.
	ErrRequestFailed = errors.New("request failed")
)

type App struct {
	adapter adapter.ServerAdapter
	command config.Command
	out     io.Writer

	logger *logger.Logger
}

// NewApp returns a client that runs cmd through serverAdapter and writes the
// envelope as indented JSON to out.
func NewApp(serverAdapter adapter.ServerAdapter, cmd config.Command, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, command: cmd, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	creds := models.Credentials{Email: a.command.Email, Password: a.command.Password}

	var (
		resp models.Response
		err  error
	)

	switch a.command.Operation {
	case config.OperationSignup:
		resp, err = a.adapter.Signup(ctx, creds)
	case config.OperationSignin:
		resp, err = a.adapter.Signin(ctx, creds)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, a.command.Operation)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", a.command.Operation, err)
	}

	a.logger.Info().
		Str("operation", a.command.Operation).
		Str("email", creds.Email).
		Str("status", string(resp.Status)).
		Msg("request done")

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(resp); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}

	if !resp.IsSuccess() {
		return ErrRequestFailed
	}
	return nil
}
