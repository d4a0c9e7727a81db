package handlers

import (
	"errors"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/middleware"
	"internmatch-bot/internal/config"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/search"
	"internmatch-bot/internal/session"
	"internmatch-bot/internal/storage/redis"
	"internmatch-bot/internal/view"
)

// Context contains deps for all handlers
type Context struct {
	Catalog   []models.JobRecord
	Locations []string
	Skills    []string

	Views    *view.Registry
	Sessions *session.Manager
	Cache    *redis.Cache
	Config   *config.Config
	Logger   *zap.Logger

	// Now defaults to time.Now
	Now func() time.Time
}

func (ctx *Context) now() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}

// view mounts (or touches) the browsing view of the sender.
func (ctx *Context) view(c tele.Context) *view.View {
	return ctx.Views.Mount(c.Sender().ID, ctx.now())
}

// mounted touches the view of userID only if it is still mounted. Flows
// that keep state in the view use it so a swept view is not remounted empty.
func (ctx *Context) mounted(userID int64) (*view.View, bool) {
	if _, ok := ctx.Views.Lookup(userID); !ok {
		return nil, false
	}
	return ctx.Views.Mount(userID, ctx.now()), true
}

// guard wraps h so it only runs for logged-in users of the given types.
func (ctx *Context) guard(h tele.HandlerFunc, types ...models.UserType) tele.HandlerFunc {
	return middleware.RequireSession(ctx.Sessions, ctx.Logger, types...)(h)
}

func (ctx *Context) summarize(state search.FilterState) search.Summary {
	matched := search.Filter(ctx.Catalog, state, ctx.now())
	return search.Summarize(len(ctx.Catalog), len(matched), state)
}

// editOrSend edits the message a callback came from, falling back to a new
// message when it can no longer be edited.
func editOrSend(c tele.Context, text string, opts ...interface{}) error {
	err := c.Edit(text, opts...)
	if err == nil || errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}
	return c.Send(text, opts...)
}
