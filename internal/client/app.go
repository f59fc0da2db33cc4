package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) (any, error)
}

// App dispatches subcommands to the client services.
type App struct {
	auth     service.ClientAuthService
	services *service.ClientServices

	commands map[string]command
	out      io.Writer
	now      func() time.Time

	logger *logger.Logger
}

// NewApp builds the command table over auth and services. Results are
// written to out.
func NewApp(auth service.ClientAuthService, services *service.ClientServices, out io.Writer, logger *logger.Logger) (*App, error) {
	if auth == nil || services == nil {
		return nil, errors.New("client app requires auth and dapp services")
	}

	a := &App{
		auth:     auth,
		services: services,
		out:      out,
		now:      time.Now,
		logger:   logger,
	}
	a.commands = map[string]command{
		"login":  {usage: "login", run: a.login},
		"logout": {usage: "logout", run: a.logout},
		"whoami": {usage: "whoami", run: a.whoami},
		"status": {usage: "status", run: a.status},
		"health": {usage: "health [service]", run: a.health},

		"subscribe-group":   {usage: "subscribe-group <leader-name> <group-name> <member-name> <member-principal> [<member-name> <member-principal>...]", run: a.subscribeGroup},
		"groups":            {usage: "groups", run: a.groups},
		"group-members":     {usage: "group-members <group-id>", run: a.groupMembers},
		"remove-group":      {usage: "remove-group <group-id>", run: a.removeGroup},
		"remove-all-groups": {usage: "remove-all-groups", run: a.removeAllGroups},
		"create-event":      {usage: "create-event -text <s> | -int <n> | -nat <n> | -file <path> <title> <description>", run: a.createEvent},
		"events":            {usage: "events", run: a.events},
		"remove-event":      {usage: "remove-event <event-id>", run: a.removeEvent},
		"assign-event":      {usage: "assign-event [-group <group-id>] <event-id> [<member-name> <member-principal>...]", run: a.assignEvent},

		"collections":     {usage: "collections", run: a.collections},
		"my-collections":  {usage: "my-collections", run: a.myCollections},
		"my-tokens":       {usage: "my-tokens", run: a.myTokens},
		"collection-info": {usage: "collection-info <collection>", run: a.collectionInfo},
		"owner-of":        {usage: "owner-of <collection> <token-id>...", run: a.ownerOf},
		"tokens":          {usage: "tokens [-prev <id>] [-take <n>] <collection>", run: a.tokens},
		"tokens-of":       {usage: "tokens-of [-prev <id>] [-take <n>] <collection> <account>", run: a.tokensOf},
		"balance-of":      {usage: "balance-of <collection> <account>...", run: a.balanceOf},
		"token-metadata":  {usage: "token-metadata <collection> <token-id>...", run: a.tokenMetadata},
		"transfer":        {usage: "transfer [-memo <text>] [-from-subaccount <hex>] [-timestamp] <collection> <to-account> <token-id>...", run: a.transfer},
		"mint-collection": {usage: "mint-collection -symbol <s> -name <s> [options] [-owner <account>]", run: a.mintCollection},
	}

	return a, nil
}

// Run executes args[0] with the remaining arguments and prints its result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrMissingCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	log := a.logger.With().Str("command", name).Logger()
	log.Debug().Strs("args", args[1:]).Msg("running command")

	result, err := cmd.run(ctx, args[1:])
	if errors.Is(err, ErrInvalidArguments) {
		fmt.Fprintf(a.out, "usage: %s\n", cmd.usage)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}

	return a.print(result)
}

func (a *App) print(result any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprint(a.out, b.String())
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs parses flags and checks the number of positional arguments.
// max < 0 means unbounded.
func parseArgs(fs *flag.FlagSet, args []string, min, max int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	rest := fs.Args()
	if len(rest) < min || (max >= 0 && len(rest) > max) {
		return nil, fmt.Errorf("%w: %s expects %s, got %d", ErrInvalidArguments, fs.Name(), arity(min, max), len(rest))
	}
	return rest, nil
}

func arity(min, max int) string {
	switch {
	case min == max:
		return fmt.Sprintf("%d argument(s)", min)
	case max < 0:
		return fmt.Sprintf("at least %d argument(s)", min)
	default:
		return fmt.Sprintf("%d to %d argument(s)", min, max)
	}
}
