package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Start   func(StartArgs) (Result, error)
	Set     func(SetArgs) (Result, error)
	Preset  func(PresetArgs) (Result, error)
	Pause   func() (Result, error)
	Resume  func() (Result, error)
	Reset   func() (Result, error)
	Cancel  func() (Result, error)
	History func(HistoryArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeStart:
		if handlers.Start == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Start(*cmd.Start)
	case TypeSet:
		if handlers.Set == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Set(*cmd.Set)
	case TypePreset:
		if handlers.Preset == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Preset(*cmd.Preset)
	case TypeHistory:
		if handlers.History == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.History(*cmd.History)
	case TypePause:
		return runNoArg(cmd.Type, handlers.Pause)
	case TypeResume:
		return runNoArg(cmd.Type, handlers.Resume)
	case TypeReset:
		return runNoArg(cmd.Type, handlers.Reset)
	case TypeCancel:
		return runNoArg(cmd.Type, handlers.Cancel)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func runNoArg(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
