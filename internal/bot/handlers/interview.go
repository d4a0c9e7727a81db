package handlers

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/interview"
	"internmatch-bot/internal/view"
)

// handleJobApply starts a mock interview for the chosen job. A running
// interview is replaced.
func handleJobApply(ctx *Context, c tele.Context, parts []string) error {
	id, ok := parseIntArg(parts, 1)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid job"})
	}

	job, found := catalog.Find(ctx.Catalog, id)
	if !found {
		return c.Respond(&tele.CallbackResponse{Text: "🤷 This job is no longer listed"})
	}

	iv := interview.New(job)
	if err := iv.Start(ctx.now()); err != nil {
		ctx.Logger.Error("failed to start interview", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Something went wrong"})
	}

	var question string
	ctx.view(c).Do(func(s *view.State) {
		s.Interview = iv
		question = utils.FormatInterviewQuestion(iv)
	})

	if err := setUserState(ctx, c.Sender().ID, StateInterview); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
	}

	ctx.Logger.Info("interview started",
		zap.Int64("user_id", c.Sender().ID),
		zap.Int("job_id", job.ID),
		zap.String("interview_id", iv.ID.String()),
	)

	_ = c.Respond(&tele.CallbackResponse{Text: "🚀 Interview started"})
	return c.Send(question, utils.CancelKeyboard(), tele.ModeMarkdownV2)
}

func handleInterviewAnswer(ctx *Context, c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	userID := c.Sender().ID

	v, ok := ctx.mounted(userID)

	if text == utils.BtnCancel {
		if ok {
			v.Do(func(s *view.State) { s.Interview = nil })
		}
		_ = clearUserState(ctx, userID)
		return c.Send("❌ Interview cancelled", utils.MainMenuKeyboard())
	}
	if !ok {
		return noInterview(ctx, c)
	}

	var (
		reply    string
		finished bool
		err      error
	)
	v.Do(func(s *view.State) {
		iv := s.Interview
		if iv == nil {
			err = interview.ErrNotStarted
			return
		}
		if err = iv.Answer(text, ctx.now()); err != nil {
			return
		}
		if iv.Status == interview.StatusCompleted {
			finished = true
			reply = utils.FormatInterviewComplete(iv)
			s.Interview = nil
			return
		}
		reply = utils.FormatInterviewQuestion(iv)
	})

	switch {
	case errors.Is(err, interview.ErrEmptyAnswer):
		return c.Send("✍️ Please type an answer, or press cancel.", utils.CancelKeyboard())
	case err != nil:
		return noInterview(ctx, c)
	}

	if finished {
		_ = clearUserState(ctx, userID)
		ctx.Logger.Info("interview completed", zap.Int64("user_id", userID))
		return c.Send(reply, utils.MainMenuKeyboard(), tele.ModeMarkdownV2)
	}
	return c.Send(reply, utils.CancelKeyboard(), tele.ModeMarkdownV2)
}

// noInterview drops a stale interview state, left behind when the view was
// swept or the interview already finished.
func noInterview(ctx *Context, c tele.Context) error {
	_ = clearUserState(ctx, c.Sender().ID)
	return c.Send("ℹ️ No interview in progress.", utils.MainMenuKeyboard())
}
