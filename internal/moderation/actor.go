package moderation

import "context"

// Actor is the authenticated identity a moderation call is made on behalf of.
// A nil *Actor or one with an empty ID is unauthenticated.
type Actor struct {
	ID    string
	Email string
	Name  string
}

func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != ""
}

type actorContextKey struct{}

func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor, or nil.
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(actorContextKey{}).(*Actor)
	return actor
}
