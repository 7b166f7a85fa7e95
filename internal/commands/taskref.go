package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todoview/internal/exitcode"
	"todoview/internal/service"
	"todoview/internal/view"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based row number as printed by list; 0 if ID is set
	ID  string // raw task ID given as #<id>
}

func (r TaskRef) String() string {
	if r.ID != "" {
		return "#" + r.ID
	}
	return strconv.Itoa(r.Num)
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskNotFound indicates the reference matched no rendered row.
var ErrTaskNotFound = errors.New("task not found")

// ParseTaskRef parses a task reference.
//
// Accepted forms:
//  1. all digits (e.g. 3) → row number from the list output
//  2. #<id> (e.g. #65a1f0) → task ID as stored by the server
func ParseTaskRef(arg string) (TaskRef, error) {
	if arg == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	if strings.HasPrefix(arg, "#") {
		id := strings.TrimPrefix(arg, "#")
		if strings.TrimSpace(id) == "" {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id}, nil
	}

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil || num < 1 {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveRow fetches the current list and returns the row the reference
// points at. Numbers are resolved against a fresh render, so they match
// what list prints right now.
func ResolveRow(ctx context.Context, svc service.Service, ref TaskRef) (view.Row, error) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return view.Row{}, err
	}
	v := view.Render(tasks)

	if ref.ID != "" {
		row, ok := v.Find(ref.ID)
		if !ok {
			return view.Row{}, &lookupError{msg: fmt.Sprintf("task not found: %s", ref)}
		}
		return row, nil
	}

	row, ok := v.At(ref.Num - 1)
	if !ok {
		return view.Row{}, &lookupError{msg: fmt.Sprintf("task number out of range: %d", ref.Num)}
	}
	return row, nil
}

// lookupError is a reference that matched no row. It matches ErrTaskNotFound.
type lookupError struct {
	msg string
}

func (e *lookupError) Error() string { return e.msg }

func (e *lookupError) Is(target error) bool { return target == ErrTaskNotFound }

// resolveArg parses and resolves a reference argument, printing user errors.
// Returns the row and exitcode.Success, or the exit code to stop with.
func resolveArg(ctx context.Context, env *Env, arg string) (view.Row, int) {
	ref, err := ParseTaskRef(arg)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return view.Row{}, exitcode.UserError
	}

	row, err := ResolveRow(ctx, env.Service, ref)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			fmt.Fprintf(env.ErrOut, "error: %v\n", err)
			return view.Row{}, exitcode.UserError
		}
		env.Logger.Error("error fetching tasks", "err", err)
		return view.Row{}, exitCodeFor(err)
	}
	return row, exitcode.Success
}
