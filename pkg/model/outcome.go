package model

import (
	"context"
	"fmt"

	"github.com/glorpus-work/rtenv/pkg/errors"
)

// Exit statuses with a fixed meaning in the builder contract.
const (
	StatusSuccess            = 0
	StatusDefinitionNotFound = 2
	StatusInterrupted        = 130
)

// Outcome classifies how an install run ended.
type Outcome int

// Possible outcomes.
const (
	OutcomeSuccess Outcome = iota
	OutcomeSkipped
	OutcomeBuildFailure
	OutcomeDefinitionNotFound
	OutcomeInterrupted
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeBuildFailure:
		return "build-failure"
	case OutcomeDefinitionNotFound:
		return "definition-not-found"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Installed reports whether the outcome leaves a usable installation behind.
func (o Outcome) Installed() bool {
	return o == OutcomeSuccess || o == OutcomeSkipped
}

// ClassifyStatus maps a builder exit status to an outcome. Interruption wins
// over whatever status the child reported while being torn down.
func ClassifyStatus(status int, interrupted bool) Outcome {
	switch {
	case interrupted:
		return OutcomeInterrupted
	case status == StatusSuccess:
		return OutcomeSuccess
	case status == StatusDefinitionNotFound:
		return OutcomeDefinitionNotFound
	default:
		return OutcomeBuildFailure
	}
}

// InterruptStatus is the exit status of a run stopped through ctx: 128 plus
// the signal recorded as the cancellation cause, StatusInterrupted otherwise.
func InterruptStatus(ctx context.Context) int {
	var interrupt *errors.Interrupt
	if errors.As(context.Cause(ctx), &interrupt) {
		return interrupt.ExitCode()
	}
	return StatusInterrupted
}

// Result is the outcome of an install run together with its process exit code.
type Result struct {
	Outcome     Outcome
	ExitCode    int
	VersionName string
	Prefix      string
}

// NewResult builds a Result for an outcome, deriving the exit code from the builder status.
func NewResult(outcome Outcome, status int) Result {
	code := status
	switch outcome {
	case OutcomeSuccess, OutcomeSkipped:
		code = StatusSuccess
	case OutcomeDefinitionNotFound:
		code = StatusDefinitionNotFound
	case OutcomeInterrupted:
		code = StatusInterrupted
	case OutcomeDeclined:
		code = 1
	case OutcomeBuildFailure:
		if code == StatusSuccess {
			code = 1
		}
	}
	return Result{Outcome: outcome, ExitCode: code}
}
