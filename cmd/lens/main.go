package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"
	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/gnana997/cassandra-lens/pkg/config"
	"github.com/gnana997/cassandra-lens/pkg/executor"
	"github.com/gnana997/cassandra-lens/pkg/history"
	"github.com/gnana997/cassandra-lens/pkg/runner"
)

type options struct {
	PositionalArgs struct {
		Files []string `positional-arg-name:"files" description:"cql files or directories to run"`
	} `positional-args:"yes" positional-optional:"yes"`

	Config     string `short:"f" long:"config" env:"LENS_CONFIG" description:"connections file" default:"connections.yml"`
	Conn       string `short:"c" long:"conn" description:"connection name, overrides the config default"`
	User       string `short:"u" long:"user" description:"username for all connections"`
	AskPass    bool   `long:"ask-pass" description:"prompt for password"`
	Concurrent int    `long:"concurrent" description:"how many files to run at once" default:"1"`
	Yes        bool   `short:"y" long:"yes" description:"switch connections without confirmation"`

	Version bool `long:"version" description:"show version"`

	Dry     bool `long:"dry" description:"dry run"`
	Verbose bool `short:"v" long:"verbose" description:"verbose mode"`
	Dbg     bool `long:"dbg" description:"debug mode"`
}

var revision = "latest"

func main() {
	fmt.Printf("cassandra-lens %s\n", revision)

	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}
	if opts.Version {
		os.Exit(0) // already printed
	}
	setupLog(opts.Dbg)

	if err := run(opts); err != nil {
		if opts.Dbg {
			log.Panicf("[ERROR] %v", err)
		}
		fmt.Printf("failed, %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.Dry {
		msg := color.New(color.FgHiRed).SprintfFunc()("dry run - no statements will be sent to any cluster\n")
		fmt.Print(msg)
	}

	st := time.Now()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	overrides := &config.Overrides{Default: opts.Conn, Username: opts.User}
	if opts.AskPass {
		passwd, err := askPassword()
		if err != nil {
			return fmt.Errorf("can't read password: %w", err)
		}
		overrides.Password = passwd
	}

	conf, err := config.New(opts.Config, overrides)
	if err != nil {
		return fmt.Errorf("can't load connections %q: %w", opts.Config, err)
	}

	manager := executor.NewManager(conf, connectFunc(opts), confirmFunc(opts))
	defer func() {
		if err := manager.Close(); err != nil {
			log.Printf("[WARN] can't close sessions: %v", err)
		}
	}()

	files, err := cqlFiles(opts.PositionalArgs.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no cql files to run")
	}
	log.Printf("[DEBUG] files to run: %v", files)

	proc := runner.Process{
		Executor:  manager,
		Targets:   manager,
		Presenter: newTermPresenter(os.Stdout, opts.Verbose),
		History:   history.NewStore(),
	}

	// each file is one strictly sequential run; different files never share
	// state, so they can go in parallel
	wg := syncs.NewErrSizedGroup(opts.Concurrent, syncs.Context(ctx), syncs.Preemptive)
	for _, file := range files {
		file := file
		wg.Go(func() error {
			return runFile(ctx, &proc, file)
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	log.Printf("[INFO] completed %d files in %v", len(files), time.Since(st).Truncate(100*time.Millisecond))
	return nil
}

func runFile(ctx context.Context, proc *runner.Process, file string) error {
	data, err := os.ReadFile(file) // nolint
	if err != nil {
		return fmt.Errorf("can't read %q: %w", file, err)
	}

	res, err := proc.Run(ctx, runner.RunRequest{DocID: file, Text: string(data)})
	if err != nil {
		return fmt.Errorf("can't run %q: %w", file, err)
	}
	if len(res.Statements) == 0 && res.Executed == 0 {
		fmt.Printf("%s: nothing to execute\n", file)
		return nil
	}
	if res.Aborted {
		fmt.Printf("%s: cancelled after %d statements (%v)\n", file, res.Executed, res.Total.Truncate(time.Millisecond))
		return nil
	}
	fmt.Printf("%s: %d statements in %v\n", file, res.Executed, res.Total.Truncate(time.Millisecond))
	return nil
}

// cqlFiles expands the positional args to the list of cql files, directories
// are scanned one level deep.
func cqlFiles(args []string) (res []string, err error) {
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("can't access %q: %w", arg, err)
		}
		if !fi.IsDir() {
			res = append(res, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.cql"))
		if err != nil {
			return nil, fmt.Errorf("can't list %q: %w", arg, err)
		}
		res = append(res, matches...)
	}
	return res, nil
}

// connectFunc picks the real gocql connector or the dry one.
func connectFunc(opts options) executor.ConnectFunc {
	if !opts.Dry {
		return nil // manager defaults to the gocql connector
	}
	return func(_ context.Context, conn config.Connection) (executor.Interface, error) {
		return executor.NewDry(conn.Name, os.Stdout), nil
	}
}

// confirmFunc asks the user before a directive switches the active connection,
// unless -y was given.
func confirmFunc(opts options) executor.ConfirmFunc {
	if opts.Yes {
		return nil
	}
	return func(from, to string) bool {
		fmt.Printf("switch connection %q -> %q? [y/N] ", from, to)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(answer), "y")
	}
}

func askPassword() (string, error) {
	fmt.Print("password: ")
	passwd, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)} // default to discard
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
