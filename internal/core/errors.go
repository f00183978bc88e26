package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const maxErrorBodyLength = 500

// HostedBundleError reports a non-success response from a hosted bundle
// service. It is never recovered by local synthesis.
func HostedBundleError(status int, url string, body string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(fmt.Sprintf("hosted bundle request failed with status %d", status)).
		WithCause(fmt.Errorf("status=%d url=%s response=%s", status, url, TruncateBody(body)))
}

// PayloadShapeError reports a bundle without a usable starter.files map.
func PayloadShapeError(source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeDataLoss).
		WithMsg(fmt.Sprintf("bundle payload missing starter files (%s)", source))
}

// DirectoryConflictError reports a non-empty target without --force.
func DirectoryConflictError(dir string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("target directory %s is not empty (use --force to overwrite)", dir))
}

// ValidationError carries every failed assertion of a validator run.
func ValidationError(failures []string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(strings.Join(failures, "; "))
}

func IsHostedBundleError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeUnavailable
}

func IsPayloadShapeError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeDataLoss
}

func IsDirectoryConflictError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeAlreadyExists
}

func IsValidationError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition
}

// TruncateBody trims a response body for inclusion in error messages.
func TruncateBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if len(trimmed) <= maxErrorBodyLength {
		return trimmed
	}
	return trimmed[:maxErrorBodyLength] + "..."
}
