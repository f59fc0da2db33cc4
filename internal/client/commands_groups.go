package client

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/icrc7-dapp/models"
)

func (a *App) subscribeGroup(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("subscribe-group"), args, 4, -1)
	if err != nil {
		return nil, err
	}

	members, err := parseMembers(rest[2:])
	if err != nil {
		return nil, err
	}

	return a.services.DappService.SubscribeGroup(ctx, models.SubscribeGroupRequest{
		Members:    members,
		LeaderName: rest[0],
		GroupName:  rest[1],
	})
}

func (a *App) groups(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("groups"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.Groups(ctx)
}

func (a *App) groupMembers(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("group-members"), args, 1, 1)
	if err != nil {
		return nil, err
	}
	return a.services.DappService.GroupMembers(ctx, rest[0])
}

func (a *App) removeGroup(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("remove-group"), args, 1, 1)
	if err != nil {
		return nil, err
	}
	return a.services.DappService.RemoveGroup(ctx, rest[0])
}

func (a *App) removeAllGroups(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("remove-all-groups"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.RemoveAllGroups(ctx)
}

func (a *App) createEvent(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("create-event")
	text := fs.String("text", "", "Text metadata")
	intValue := fs.String("int", "", "Int metadata")
	natValue := fs.String("nat", "", "Nat metadata")
	file := fs.String("file", "", "File read into Blob metadata")

	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return nil, err
	}

	var given []string
	fs.Visit(func(f *flag.Flag) { given = append(given, f.Name) })
	if len(given) != 1 {
		return nil, fmt.Errorf("%w: exactly one of -text, -int, -nat or -file is required", ErrInvalidArguments)
	}

	var metadata models.MetadataValue
	switch given[0] {
	case "text":
		metadata = models.TextValue(*text)
	case "int":
		v, err := strconv.ParseInt(*intValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -int %q", ErrInvalidArguments, *intValue)
		}
		metadata = models.IntValue(v)
	case "nat":
		v, err := strconv.ParseUint(*natValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -nat %q", ErrInvalidArguments, *natValue)
		}
		metadata = models.NatValue(v)
	case "file":
		blob, err := os.ReadFile(*file)
		if err != nil {
			return nil, fmt.Errorf("read event metadata: %w", err)
		}
		metadata = models.BlobValue(blob)
	}

	return a.services.DappService.CreateEvent(ctx, models.CreateEventRequest{
		Title:       rest[0],
		Description: rest[1],
		Metadata:    metadata,
	})
}

func (a *App) events(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("events"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.Events(ctx)
}

func (a *App) removeEvent(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("remove-event"), args, 1, 1)
	if err != nil {
		return nil, err
	}
	return a.services.DappService.RemoveEvent(ctx, rest[0])
}

// assignEvent takes explicit members for the envelope revision and -group
// for the variant revision; the dapp service rejects the wrong shape.
func (a *App) assignEvent(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("assign-event")
	groupID := fs.String("group", "", "Group id the event is assigned to")

	rest, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return nil, err
	}

	members, err := parseMembers(rest[1:])
	if err != nil {
		return nil, err
	}

	return a.services.DappService.AssignEvent(ctx, models.AssignEventRequest{
		EventID: rest[0],
		GroupID: *groupID,
		Members: members,
	})
}
