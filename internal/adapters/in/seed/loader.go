// Package seed loads an initial set of routes from a YAML file at startup.
// The file is only read; routes added at runtime are never written back.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"dispatch/internal/core/application/usecases/commands"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout:
//
//	routes:
//	  - from: Warehouse
//	    to: Loc1
//	    distance: 5
type File struct {
	Routes []Route `yaml:"routes"`
}

type Route struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// Parse decodes a seed document. Unknown keys are rejected so typos do not
// silently drop routes.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("decode seed file: %w", err)
	}
	return f, nil
}

// Loader feeds seed routes through the AddRoute use case, so they get the same
// validation as routes posted over HTTP.
type Loader struct {
	handler commands.AddRouteCommandHandler
}

func NewLoader(handler commands.AddRouteCommandHandler) Loader {
	return Loader{handler: handler}
}

// LoadFile reads path and adds every route. It stops at the first invalid
// route and reports its position; routes before it stay added.
func (l Loader) LoadFile(ctx context.Context, path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return 0, err
	}
	return l.Load(ctx, f)
}

// Load adds the routes of f in file order and returns how many were added.
func (l Loader) Load(ctx context.Context, f File) (int, error) {
	for i, r := range f.Routes {
		cmd, err := commands.NewAddRouteCommand(r.From, r.To, r.Distance)
		if err != nil {
			return i, fmt.Errorf("route #%d (%s -> %s): %w", i+1, r.From, r.To, err)
		}
		if _, err = l.handler.Handle(ctx, cmd); err != nil {
			return i, fmt.Errorf("route #%d (%s -> %s): %w", i+1, r.From, r.To, err)
		}
	}
	return len(f.Routes), nil
}
