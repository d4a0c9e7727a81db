package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/resume"
)

// /resume
func HandleResume(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		u, err := ctx.Cache.GetResume(dbCtx, userID)
		if err != nil {
			ctx.Logger.Error("failed to get resume", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Could not load your resume. Please try again later.")
		}

		text := utils.FormatResume(u, ctx.Config.MaxResumeBytes)
		if u == nil {
			return c.Send(text, utils.MainMenuKeyboard(), tele.ModeMarkdownV2)
		}
		return c.Send(text, utils.ResumeKeyboard(), tele.ModeMarkdownV2)
	}
}

func handleResumeDownload(ctx *Context, c tele.Context) error {
	userID := c.Sender().ID

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := ctx.Cache.GetResume(dbCtx, userID)
	if err != nil {
		ctx.Logger.Error("failed to get resume", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Download failed", ShowAlert: true})
	}
	if u == nil {
		return c.Respond(&tele.CallbackResponse{Text: "📭 No resume found. Please upload a resume first.", ShowAlert: true})
	}

	doc, err := resumeDocument(*u)
	if err != nil {
		ctx.Logger.Error("stored resume is corrupt", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Download failed", ShowAlert: true})
	}

	_ = c.Respond(&tele.CallbackResponse{Text: "⬇️ Resume downloaded"})
	return c.Send(doc)
}

// resumeDocument rebuilds the uploaded file for sending back to the user.
func resumeDocument(u resume.Upload) (*tele.Document, error) {
	data, err := u.Bytes()
	if err != nil {
		return nil, err
	}
	return &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		MIME:     u.MIME,
		FileName: u.Name,
	}, nil
}

// HandleDocument stores an uploaded resume file.
func HandleDocument(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		msg := c.Message()
		if msg == nil || msg.Document == nil {
			return nil
		}
		doc := msg.Document
		userID := c.Sender().ID
		maxBytes := ctx.Config.MaxResumeBytes

		mime, err := resume.DetectMIME(doc.FileName, doc.MIME)
		if err != nil {
			return c.Reply("⚠️ Only PDF, DOC and DOCX files are accepted.")
		}
		if err := resume.CheckSize(int64(doc.FileSize), maxBytes); err != nil {
			return c.Reply(uploadError(err, maxBytes))
		}

		rc, err := c.Bot().File(&doc.File)
		if err != nil {
			ctx.Logger.Error("failed to download resume", zap.Int64("user_id", userID), zap.Error(err))
			return c.Reply("😔 Could not download the file. Please try again.")
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
		if err != nil {
			ctx.Logger.Error("failed to read resume", zap.Int64("user_id", userID), zap.Error(err))
			return c.Reply("😔 Could not download the file. Please try again.")
		}

		u, err := resume.New(doc.FileName, mime, data, maxBytes, ctx.now())
		if err != nil {
			return c.Reply(uploadError(err, maxBytes))
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := ctx.Cache.SaveResume(dbCtx, userID, u); err != nil {
			ctx.Logger.Error("failed to save resume", zap.Int64("user_id", userID), zap.Error(err))
			return c.Reply("😔 Could not save your resume. Please try again later.")
		}

		return c.Send(utils.FormatResume(&u, maxBytes), utils.ResumeKeyboard(), tele.ModeMarkdownV2)
	}
}

func uploadError(err error, maxBytes int64) string {
	switch {
	case errors.Is(err, resume.ErrEmpty):
		return "⚠️ The file is empty."
	case errors.Is(err, resume.ErrTooLarge):
		return fmt.Sprintf("⚠️ The file is too large. The limit is %s.", utils.FormatSize(maxBytes))
	case errors.Is(err, resume.ErrUnsupportedType):
		return "⚠️ Only PDF, DOC and DOCX files are accepted."
	}
	return "😔 Could not process the file."
}
