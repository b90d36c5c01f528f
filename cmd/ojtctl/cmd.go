package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/helpers"
	"github.com/yigit/ojtportal/internal/pkg/session"
	"github.com/yigit/ojtportal/internal/pkg/validation"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	stdinFd          = int(os.Stdin.Fd())

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("not logged in, run: ojtctl login -username USERNAME|EMAIL")
	errInvalidID   = errors.New("invalid student ID")
)

type commandLine struct {
	store    *session.Store
	auth     *services.AuthService
	timeLogs *services.TimeLogService
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -username USERNAME|EMAIL - sign in, the password is prompted next")
	fmt.Fprintln(cli.out, "  logout - forget the stored session")
	fmt.Fprintln(cli.out, "  whoami - show the signed-in account")
	fmt.Fprintln(cli.out, "  clock -action IN|OUT|LUNCH IN|LUNCH OUT - record a clock action")
	fmt.Fprintln(cli.out, "  today - list today's time logs")
	fmt.Fprintln(cli.out, "  timelogs [-from YYYY-MM-DD] [-to YYYY-MM-DD] - show rendered hours and logs")
	fmt.Fprintln(cli.out, "  validate-id ID - format and check a student ID")
}

func (cli *commandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	// every command sees the stored session, the way portal requests do
	ctx := session.WithStore(context.Background(), cli.store)

	loginCmd := cli.flagSet("login")
	loginUname := loginCmd.String("username", "", "The username or email. The password will be prompted next.")

	clockCmd := cli.flagSet("clock")
	clockAction := clockCmd.String("action", "", "One of IN, OUT, LUNCH IN, LUNCH OUT.")

	timeLogsCmd := cli.flagSet("timelogs")
	timeLogsFrom := timeLogsCmd.String("from", "", "First day, YYYY-MM-DD.")
	timeLogsTo := timeLogsCmd.String("to", "", "Last day, YYYY-MM-DD.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(stdinFd)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginUname, string(pwd))
	case "logout":
		return cli.logout(ctx)
	case "whoami":
		return cli.whoami(ctx)
	case "clock":
		if err := clockCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *clockAction == "" {
			clockCmd.Usage()
			return errHelp
		}
		return cli.clock(ctx, *clockAction)
	case "today":
		return cli.today(ctx)
	case "timelogs":
		if err := timeLogsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listTimeLogs(ctx, *timeLogsFrom, *timeLogsTo)
	case "validate-id":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.validateID(args[2])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) requireLogin(ctx context.Context) error {
	if !cli.store.IsAuthenticated(ctx) {
		return errNotLoggedIn
	}
	return nil
}

func (cli *commandLine) login(ctx context.Context, username, password string) error {
	resp, err := cli.auth.Login(ctx, dto.LoginRequest{UsernameOrEmail: username, Password: password})
	if err != nil {
		return err
	}
	name := resp.User.Username
	if identity := cli.store.Identity(); name == "" && identity != nil {
		name = identity.Username
	}
	fmt.Fprintf(cli.out, "Logged in as %s\n", name)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	if _, err := cli.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	state := cli.auth.Session(ctx)
	if !state.Authenticated {
		return errNotLoggedIn
	}
	if state.User == nil {
		fmt.Fprintln(cli.out, "Logged in, identity unknown")
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", state.User.ID)
	fmt.Fprintf(w, "Username\t%s\n", state.User.Username)
	if state.User.Email != "" {
		fmt.Fprintf(w, "Email\t%s\n", state.User.Email)
	}
	if state.User.Position != "" {
		fmt.Fprintf(w, "Position\t%s\n", state.User.Position)
	}
	return w.Flush()
}

func (cli *commandLine) clock(ctx context.Context, action string) error {
	if err := cli.requireLogin(ctx); err != nil {
		return err
	}
	resp, err := cli.timeLogs.Clock(ctx, dto.ClockRequest{Action: models.TimeLogAction(action)})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, resp.Message)
	return nil
}

func (cli *commandLine) today(ctx context.Context) error {
	if err := cli.requireLogin(ctx); err != nil {
		return err
	}
	logs, err := cli.timeLogs.Today(ctx)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(cli.out, "No time logs today")
		return nil
	}
	if err := cli.printLogs(logs); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Last action: %s\n", services.LastAction(logs))
	return nil
}

func (cli *commandLine) listTimeLogs(ctx context.Context, from, to string) error {
	if err := cli.requireLogin(ctx); err != nil {
		return err
	}
	summary, err := cli.timeLogs.List(ctx, dto.TimeLogFilterRequest{From: from, To: to})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Rendered:  %s\n", helpers.FormatHoursMinutes(summary.TotalHours, summary.TotalMinutes))
	fmt.Fprintf(cli.out, "Remaining: %s\n", helpers.FormatHoursMinutes(summary.RemainingHours, summary.RemainingMinutes))
	if len(summary.Logs) == 0 {
		return nil
	}
	return cli.printLogs(summary.Logs)
}

func (cli *commandLine) printLogs(logs []models.TimeLog) error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tACTION")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\n", l.Timestamp, l.Action)
	}
	return w.Flush()
}

func (cli *commandLine) validateID(raw string) error {
	id := validation.FormatStudentID(raw)
	if !validation.IsStudentIDValid(id) {
		fmt.Fprintf(cli.out, "%s: %s\n", id, validation.MsgStudentIDFormat)
		return errInvalidID
	}
	fmt.Fprintf(cli.out, "%s: valid\n", id)
	return nil
}

// errorMessage is the line shown for a failed command
func errorMessage(err error) string {
	return apperrors.BannerMessage(err, err.Error())
}
