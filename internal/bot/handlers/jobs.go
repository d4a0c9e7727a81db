package handlers

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/search"
	"internmatch-bot/internal/view"
)

// /jobs
func HandleJobs(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		text, markup := jobsPage(ctx, ctx.view(c), 0)
		return c.Send(text, markup, tele.ModeMarkdownV2)
	}
}

// jobsPage evaluates the view's filters against the catalog and renders
// the requested page, clamped to the available range.
func jobsPage(ctx *Context, v *view.View, page int) (string, *tele.ReplyMarkup) {
	var state search.FilterState
	v.Do(func(s *view.State) { state = s.Filters.Get() })

	matched := search.Filter(ctx.Catalog, state, ctx.now())
	summary := search.Summarize(len(ctx.Catalog), len(matched), state)

	start, end, current, pages := utils.Paginate(len(matched), ctx.Config.PageSize, page)
	v.Do(func(s *view.State) { s.Page = current })

	listed := matched[start:end]
	return utils.FormatJobPage(listed, start, summary, current, pages),
		utils.JobsPageKeyboard(listed, start, current, pages)
}

func handleJobsPage(ctx *Context, c tele.Context, parts []string) error {
	page, ok := parseIntArg(parts, 1)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid page"})
	}

	text, markup := jobsPage(ctx, ctx.view(c), page)
	_ = c.Respond()
	return editOrSend(c, text, markup, tele.ModeMarkdownV2)
}

func handleJobDetails(ctx *Context, c tele.Context, parts []string) error {
	id, ok := parseIntArg(parts, 1)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid job"})
	}

	job, found := catalog.Find(ctx.Catalog, id)
	if !found {
		ctx.Logger.Warn("job not found", zap.Int("job_id", id))
		return c.Respond(&tele.CallbackResponse{Text: "🤷 This job is no longer listed"})
	}

	var page int
	ctx.view(c).Do(func(s *view.State) { page = s.Page })

	_ = c.Respond()
	return editOrSend(c,
		utils.FormatJobDetails(job, ctx.now()),
		utils.JobDetailsKeyboard(job.ID, page),
		tele.ModeMarkdownV2,
	)
}
