package notify

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byType map[string]actionFunc
}

func newActionFactory(onSubmitted actionFunc) *actionFactory {
	return &actionFactory{
		byType: map[string]actionFunc{
			EventRequestSubmitted: onSubmitted,
		},
	}
}

func (f *actionFactory) get(eventType string) (actionFunc, bool) {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	fn, ok := f.byType[eventType]
	return fn, ok
}
