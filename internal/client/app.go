package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-recipe-share/internal/adapter"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/jessevdk/go-flags"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid command usage")
)

// App runs one go-flags sub-command per invocation against the API client.
type App struct {
	api    adapter.RecipeAPI
	out    io.Writer
	logger *logger.Logger

	// ctx is the context of the running invocation. go-flags commands have
	// no context parameter, so Run sets it before dispatching.
	ctx context.Context
}

func NewApp(api adapter.RecipeAPI, token string, out io.Writer, logger *logger.Logger) *App {
	if token != "" {
		api.SetToken(token)
	}
	return &App{api: api, out: out, logger: logger, ctx: context.Background()}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.ctx = ctx

	parser := flags.NewParser(newCommands(a), flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "recipe-share"

	_, err := parser.ParseArgs(args)
	if err == nil {
		return nil
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		switch flagsErr.Type {
		case flags.ErrHelp:
			_, err = fmt.Fprintln(a.out, flagsErr.Message)
			return err
		case flags.ErrUnknownCommand:
			parser.WriteHelp(a.out)
			return fmt.Errorf("%w: %s", ErrUnknownCommand, flagsErr.Message)
		default:
			parser.WriteHelp(a.out)
			return fmt.Errorf("%w: %s", ErrUsage, flagsErr.Message)
		}
	}

	if errors.Is(err, ErrUsage) {
		parser.WriteHelp(a.out)
	}
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
