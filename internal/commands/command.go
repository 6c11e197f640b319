package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/intervald/internal/model"
)

type Type string

const (
	TypeStart   Type = "start"
	TypeSet     Type = "set"
	TypePreset  Type = "preset"
	TypePause   Type = "pause"
	TypeResume  Type = "resume"
	TypeReset   Type = "reset"
	TypeCancel  Type = "cancel"
	TypeHistory Type = "history"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type StartArgs struct {
	Duration *model.Duration
}

type SetArgs struct {
	Duration model.Duration
}

type PresetArgs struct {
	Index int
}

type HistoryArgs struct {
	Limit int
}

type Command struct {
	Type    Type
	Raw     string
	Start   *StartArgs
	Set     *SetArgs
	Preset  *PresetArgs
	History *HistoryArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeStart:
		return parseStart(input, args)
	case TypeSet:
		return parseSet(input, args)
	case TypePreset:
		return parsePreset(input, args)
	case TypeHistory:
		return parseHistory(input, args)
	case TypePause, TypeResume, TypeReset, TypeCancel:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseStart(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Type: TypeStart, Raw: raw, Start: &StartArgs{}}, nil
	}
	d, err := parseDurationArgs(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeStart, Raw: raw, Start: &StartArgs{Duration: &d}}, nil
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "set requires a duration like 7:30"}
	}
	d, err := parseDurationArgs(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Duration: d}}, nil
}

func parsePreset(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "preset requires a single number"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid preset number: %s", args[0])}
	}
	return Command{Type: TypePreset, Raw: raw, Preset: &PresetArgs{Index: n}}, nil
}

func parseHistory(raw string, args []string) (Command, error) {
	limit := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid history limit: %s", args[0])}
		}
		limit = n
	}
	return Command{Type: TypeHistory, Raw: raw, History: &HistoryArgs{Limit: limit}}, nil
}

func parseDurationArgs(args []string) (model.Duration, error) {
	if len(args) != 1 {
		return model.Duration{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "expected one duration like 7:30, 90 or 1m30s"}
	}
	d, err := model.ParseDuration(args[0])
	if err != nil {
		return model.Duration{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return d, nil
}
