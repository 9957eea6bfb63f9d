// Package form owns the recommendation form state machine: field state,
// validation, submission orchestration, and the mapping of request outcomes
// into the view shown to the user.
package form

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/readnext/readnext/internal/completion"
	"github.com/readnext/readnext/internal/prompt"
)

const (
	authErrorMessage    = "It seems that your API key might be wrong, please double-check it."
	quotaErrorMessage   = "You have exceeded your current quota, please check your plan and billing details."
	genericErrorMessage = "Something went wrong with the request, please try again."
	lengthWarningFormat = "The list may be incomplete: the response reached the maximum length of %d tokens."
)

var errEmptyResponseMessage = errors.New("completion succeeded with no response message")

// Phase enumerates the controller's submission states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// Fields is the mutable form state. It is seeded with catalog defaults at
// construction and lives for the whole session.
type Fields struct {
	Credential       string
	SelectedModel    string
	SelectedSubject  string
	SelectedQuantity string
	Favourites       string
}

// ViewState is what the presentation layer renders. After a completed request
// at most one of ErrorMessage and FinalResponse is non-empty.
type ViewState struct {
	IsLoading     bool
	ErrorMessage  string
	LengthWarning string
	FinalResponse string
}

// Controller drives a single-session recommendation form. It is the sole
// writer of its state; the IsLoading gate keeps at most one request in flight.
type Controller struct {
	fields Fields
	phase  Phase
	view   ViewState
	client completion.Requester
	logger *zap.Logger
}

// NewController seeds the form with the provided defaults. A nil logger is
// replaced with a no-op logger.
func NewController(client completion.Requester, defaults Fields, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{fields: defaults, phase: PhaseIdle, client: client, logger: logger}
}

func (c *Controller) SetCredential(value string) { c.fields.Credential = value }
func (c *Controller) SetModel(value string)      { c.fields.SelectedModel = value }
func (c *Controller) SetSubject(value string)    { c.fields.SelectedSubject = value }
func (c *Controller) SetQuantity(value string)   { c.fields.SelectedQuantity = value }
func (c *Controller) SetFavourites(value string) { c.fields.Favourites = value }

// Fields returns a copy of the current form state.
func (c *Controller) Fields() Fields { return c.fields }

// Phase reports the current submission phase.
func (c *Controller) Phase() Phase { return c.phase }

// View returns a copy of the current view state.
func (c *Controller) View() ViewState { return c.view }

// Valid is a pure derivation over the raw field values: every tracked field
// must be non-empty. Values are deliberately not trimmed, so whitespace-only
// input counts as filled in.
func (c *Controller) Valid() bool {
	return c.fields.Credential != "" &&
		c.fields.SelectedSubject != "" &&
		c.fields.SelectedQuantity != "" &&
		c.fields.Favourites != ""
}

// CanSubmit gates submission: the form must be valid and no request may be in
// flight. This is the only concurrency control the controller needs.
func (c *Controller) CanSubmit() bool {
	return c.Valid() && c.phase != PhaseSubmitting
}

// Submit runs one submission cycle: compose the prompt, await the single
// completion call, and map the outcome into the view. There are no retries and
// no controller-side timeout; deadlines are the client's concern. When
// CanSubmit is false the call is a no-op and the current view is returned.
func (c *Controller) Submit(ctx context.Context) ViewState {
	if !c.CanSubmit() {
		return c.view
	}

	c.phase = PhaseSubmitting
	c.view.ErrorMessage = ""
	c.view.LengthWarning = ""
	c.view.IsLoading = true

	userPrompt := prompt.Compose(c.fields.SelectedSubject, c.fields.Favourites, c.fields.SelectedQuantity)
	result, requestErr := c.client.SendCompletionRequest(ctx, c.fields.Credential, userPrompt, c.fields.SelectedModel)

	// Loading ends on every resolution path, including unexpected failures.
	c.view.IsLoading = false

	if requestErr != nil {
		c.resolveFailure(messageForError(requestErr), requestErr)
		return c.view
	}
	if result.ResponseMessage == "" {
		c.resolveFailure(genericErrorMessage, errEmptyResponseMessage)
		return c.view
	}

	if result.Reason == completion.TruncationReason {
		c.view.LengthWarning = fmt.Sprintf(lengthWarningFormat, completion.MaxTokens)
	}
	c.view.FinalResponse = FormatResponse(result.ResponseMessage)
	c.phase = PhaseSucceeded
	return c.view
}

// resolveFailure surfaces one user-visible message and clears any prior
// response so the view never shows an error and a result at the same time.
func (c *Controller) resolveFailure(message string, cause error) {
	c.logger.Debug("completion request failed", zap.Error(cause))
	c.view.ErrorMessage = message
	c.view.FinalResponse = ""
	c.phase = PhaseFailed
}

func messageForError(err error) string {
	var statusErr *completion.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized:
			return authErrorMessage
		case http.StatusTooManyRequests:
			return quotaErrorMessage
		}
	}
	return genericErrorMessage
}
