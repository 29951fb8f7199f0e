// Package orchestrator drives a chat session against the backend API.
//
// It owns the transcript: user input becomes a user turn immediately,
// the gateway is asked for a reply, and failures surface as localized
// placeholder turns rather than errors. One request runs at a time; a
// second call while one is in flight returns ErrBusy instead of queuing.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/conversation"
	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/i18n"
	"github.com/agrimitra/agrimitra/internal/log"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// ErrBusy is returned when a request is already in flight.
var ErrBusy = errors.New("request already in flight")

// ChatReply is the backend's answer to a chat message.
type ChatReply struct {
	Response  string
	Timestamp time.Time
	AISource  string
}

// Gateway is the backend API surface the orchestrator talks to.
type Gateway interface {
	Chat(ctx context.Context, message, chatContext, language string) (ChatReply, error)
	Location(ctx context.Context) (geo.Location, error)
	Weather(ctx context.Context) (weather.Snapshot, error)
	Soil(ctx context.Context) (farm.SoilProfile, error)
	Recommend(ctx context.Context, soil farm.SoilProfile, w weather.Snapshot, loc geo.Location) (string, error)
	DetectDisease(ctx context.Context, filename string, image []byte, plantType string) (string, error)
}

// Orchestrator mediates between a UI, a Session and a Gateway.
type Orchestrator struct {
	session *conversation.Session
	gw      Gateway
	surface advisor.Surface
	lang    string
	logger  log.Logger

	inFlight atomic.Bool
}

// New creates an orchestrator for one surface and language.
func New(session *conversation.Session, gw Gateway, surface advisor.Surface, lang string, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		session: session,
		gw:      gw,
		surface: surface,
		lang:    i18n.Normalize(lang),
		logger:  logger,
	}
}

// Session returns the transcript this orchestrator appends to.
func (o *Orchestrator) Session() *conversation.Session {
	return o.session
}

// Surface returns the assistant surface this orchestrator serves.
func (o *Orchestrator) Surface() advisor.Surface {
	return o.surface
}

// begin claims the in-flight slot. Callers must invoke the returned
// release exactly once.
func (o *Orchestrator) begin() (release func(), err error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	o.session.SetPending(true)
	return func() {
		o.session.SetPending(false)
		o.inFlight.Store(false)
	}, nil
}

// Send submits a user message and appends the reply to the session.
// Blank input is ignored: no turns are added and no call is made.
func (o *Orchestrator) Send(ctx context.Context, message string) (conversation.Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return conversation.Turn{}, nil
	}

	release, err := o.begin()
	if err != nil {
		return conversation.Turn{}, err
	}
	defer release()

	o.session.Append(conversation.RoleUser, message)

	reply, err := o.gw.Chat(ctx, message, o.surface.String(), o.lang)
	if err != nil {
		o.logger.Warn("chat request failed, showing placeholder", "error", err)
		return o.session.Append(conversation.RoleAssistant, o.placeholder()), nil
	}
	return o.session.Append(conversation.RoleAssistant, reply.Response), nil
}

// SmartRecommend gathers location, weather and soil data and asks for a
// crop recommendation. The result lands in the transcript as a single
// assistant turn; on failure an apology turn is added instead.
func (o *Orchestrator) SmartRecommend(ctx context.Context) (conversation.Turn, error) {
	release, err := o.begin()
	if err != nil {
		return conversation.Turn{}, err
	}
	defer release()

	text, err := o.smartRecommend(ctx)
	if err != nil {
		o.logger.Warn("smart recommendation failed", "error", err)
		text = i18n.T(o.lang, "cropBot.recommendationError")
	}
	return o.session.Append(conversation.RoleAssistant, text), nil
}

func (o *Orchestrator) smartRecommend(ctx context.Context) (string, error) {
	loc, err := o.gw.Location(ctx)
	if err != nil {
		return "", err
	}
	w, err := o.gw.Weather(ctx)
	if err != nil {
		return "", err
	}
	soil, err := o.gw.Soil(ctx)
	if err != nil {
		return "", err
	}
	return o.gw.Recommend(ctx, soil, w, loc)
}

// AnalyzeImage uploads a plant image for disease analysis. Empty image
// data is ignored without adding turns.
func (o *Orchestrator) AnalyzeImage(ctx context.Context, filename string, image []byte, plantType string) (conversation.Turn, error) {
	if len(image) == 0 {
		return conversation.Turn{}, nil
	}

	release, err := o.begin()
	if err != nil {
		return conversation.Turn{}, err
	}
	defer release()

	o.session.Append(conversation.RoleUser, "Uploaded image: "+filename)

	text, err := o.gw.DetectDisease(ctx, filename, image, plantType)
	if err != nil {
		o.logger.Warn("disease detection failed, showing placeholder", "error", err)
		text = i18n.T(o.lang, "diseaseBot.placeholderResponse")
	}
	return o.session.Append(conversation.RoleAssistant, text), nil
}

// Clear resets the transcript to its welcome turn.
func (o *Orchestrator) Clear() {
	o.session.Clear()
}

// placeholder picks the localized canned reply for this surface.
func (o *Orchestrator) placeholder() string {
	var key string
	switch o.surface {
	case advisor.SurfaceMarket:
		key = "marketBot.placeholderResponse"
	case advisor.SurfaceDisease:
		key = "diseaseBot.placeholderResponse"
	default:
		key = "cropBot.placeholderResponse"
	}
	return i18n.T(o.lang, key)
}
