package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/pizza-specials/internal/adapter"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const usage = "usage: pizza-specials-client [flags] list | get <id> | create -name N -price P | update <id> -name N -price P | delete <id> | version | token"

var (
	errUsage          = errors.New(usage)
	errUnknownCommand = errors.New("unknown command")
	errMissingID      = errors.New("special id is required")
	errInvalidID      = errors.New("invalid special id")
	errInvalidPrice   = errors.New("invalid price")
)

// cli dispatches one command against the server and prints the result as
// indented JSON.
type cli struct {
	specials  adapter.SpecialsAdapter
	auth      service.AuthService
	buildInfo models.AppBuildInfo
	out       io.Writer
}

type clientVersion struct {
	Client models.VersionResponse `json:"client"`
	Server models.VersionResponse `json:"server"`
}

type tokenOutput struct {
	Token string `json:"token"`
}

type deletedOutput struct {
	Deleted uuid.UUID `json:"deleted"`
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		specials, err := c.specials.List(ctx)
		if err != nil {
			return err
		}
		return c.print(specials)

	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		special, err := c.specials.Get(ctx, id)
		if err != nil {
			return err
		}
		return c.print(special)

	case "create":
		fields, err := parseSpecialFlags("create", rest)
		if err != nil {
			return err
		}
		created, err := c.specials.Create(ctx, models.CreateRequest(fields))
		if err != nil {
			return err
		}
		return c.print(created)

	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		fields, err := parseSpecialFlags("update", rest[1:])
		if err != nil {
			return err
		}
		updated, err := c.specials.Update(ctx, id, models.UpdateRequest(fields))
		if err != nil {
			return err
		}
		return c.print(updated)

	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = c.specials.Delete(ctx, id); err != nil {
			return err
		}
		return c.print(deletedOutput{Deleted: id})

	case "version":
		server, err := c.specials.Version(ctx)
		if err != nil {
			return err
		}
		return c.print(clientVersion{
			Client: c.buildInfo.VersionResponse(""),
			Server: server,
		})

	case "token":
		return c.token(ctx, rest)

	default:
		return fmt.Errorf("%w %q; %s", errUnknownCommand, cmd, usage)
	}
}

// token signs a development token locally with the configured key.
func (c *cli) token(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	subject := fs.String("subject", "cli", "Token subject")
	scopes := fs.String("scopes", "read,write", "Comma separated scopes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var granted []string
	for _, scope := range strings.Split(*scopes, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			granted = append(granted, scope)
		}
	}

	token, err := c.auth.CreateToken(ctx, *subject, granted)
	if err != nil {
		return err
	}

	return c.print(tokenOutput{Token: token.String()})
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(args []string) (uuid.UUID, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return uuid.Nil, errMissingID
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errInvalidID, err)
	}

	return id, nil
}

// specialFields mirrors the shared layout of create and update bodies.
type specialFields struct {
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

func parseSpecialFlags(name string, args []string) (specialFields, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var fields specialFields
	var price string
	fs.StringVar(&fields.Name, "name", "", "Special name")
	fs.StringVar(&price, "price", "", "Base price, e.g. 12.50")
	fs.StringVar(&fields.Description, "description", "", "Description")
	fs.StringVar(&fields.ImageURL, "image", "", "Image URL")
	if err := fs.Parse(args); err != nil {
		return specialFields{}, err
	}

	if price != "" {
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			return specialFields{}, fmt.Errorf("%w %q: %w", errInvalidPrice, price, err)
		}
		fields.BasePrice = parsed
	}

	return fields, nil
}
