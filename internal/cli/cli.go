// Package cli is the interactive text front end. Menus form a table of
// screens; each screen does its work through the service.Controller and
// names the screen to show next.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"smapp/internal/models"
	"smapp/internal/observability"
	"smapp/internal/service"
)

// Screen names a state of the menu machine.
type Screen string

const (
	ScreenLogin         Screen = "login"
	ScreenCreateAccount Screen = "create_account"
	ScreenHome          Screen = "home"
	ScreenChooseUser    Screen = "choose_user"
	ScreenShowPosts     Screen = "show_posts"
	ScreenLikePost      Screen = "like_post"
	ScreenCommentPost   Screen = "comment_post"
	ScreenWritePost     Screen = "write_post"
	ScreenExit          Screen = "exit"
)

type screenFunc func(ctx context.Context) (Screen, error)

// CLI runs one interactive session.
type CLI struct {
	ctrl    *service.Controller
	session *service.Session
	p       *prompter
	screens map[Screen]screenFunc
}

// New returns a CLI reading answers from in and writing to out.
func New(ctrl *service.Controller, in io.Reader, out io.Writer) *CLI {
	c := &CLI{
		ctrl:    ctrl,
		session: service.NewSession(),
		p:       &prompter{in: bufio.NewScanner(in), out: out},
	}
	c.screens = map[Screen]screenFunc{
		ScreenLogin:         c.login,
		ScreenCreateAccount: c.createAccount,
		ScreenHome:          c.home,
		ScreenChooseUser:    c.chooseUser,
		ScreenShowPosts:     c.showPosts,
		ScreenLikePost:      c.likePost,
		ScreenCommentPost:   c.commentPost,
		ScreenWritePost:     c.writePost,
	}
	return c
}

// Session exposes the session state, mainly for tests.
func (c *CLI) Session() *service.Session {
	return c.session
}

// Run drives the menus from the login screen until the user exits or the
// input ends. Domain errors are shown and the session falls back to a safe
// screen; internal errors end the run.
func (c *CLI) Run(ctx context.Context) error {
	current := ScreenLogin
	for current != ScreenExit {
		screen, ok := c.screens[current]
		if !ok {
			return errors.New("unknown screen " + string(current))
		}

		next, err := screen(ctx)
		switch {
		case errors.Is(err, io.EOF):
			c.p.printf("\nGoodbye\n")
			return nil
		case err != nil:
			if code := models.CodeOf(err); code == "" || code == models.CodeInternal {
				return err
			}
			observability.Logger.DebugContext(ctx, "screen failed", slog.String("screen", string(current)), slog.String("error", err.Error()))
			c.p.printf("Error: %s\n", err.Error())
			next = c.fallback(current)
		}
		current = next
	}
	c.p.printf("Goodbye\n")
	return nil
}

// fallback is the screen shown after a screen fails.
func (c *CLI) fallback(failed Screen) Screen {
	if failed == ScreenHome || !c.session.LoggedIn() {
		c.ctrl.Logout(c.session)
		return ScreenLogin
	}
	return ScreenHome
}
