// Package provider supplies the ordered item lists each screen mounts with.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

var ErrInvalidData = errors.New("invalid data set")

// Provider is read-only from the screens' point of view. Each call returns a
// fresh slice the caller may keep.
//
//go:generate mockgen -destination=mock_provider/mock_provider.go -package=mock_provider github.com/akyairhashvil/conciergerie/internal/provider Provider
type Provider interface {
	Tasks(ctx context.Context) ([]models.Task, error)
	Suggestions(ctx context.Context) ([]models.Suggestion, error)
	TodayTasks(ctx context.Context) ([]models.TodayTask, error)
	Connections(ctx context.Context) ([]models.Connection, error)
}

var ErrUnknownScreen = errors.New("unknown screen")

// Screens lists the screen identifiers in tab order.
var Screens = []string{"home", "today", "suggestions", "connections"}

// Items returns the list behind one screen as generic items.
func Items(ctx context.Context, p Provider, screen string) ([]models.Item, error) {
	switch screen {
	case "home":
		v, err := p.Tasks(ctx)
		return asItems(v), err
	case "today":
		v, err := p.TodayTasks(ctx)
		return asItems(v), err
	case "suggestions":
		v, err := p.Suggestions(ctx)
		return asItems(v), err
	case "connections":
		v, err := p.Connections(ctx)
		return asItems(v), err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
}
