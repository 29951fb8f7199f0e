package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/conversation"
	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/i18n"
	"github.com/agrimitra/agrimitra/internal/log"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// fakeGateway returns canned data, optionally failing, and counts calls.
type fakeGateway struct {
	mu        sync.Mutex
	failWith  error
	chatReply string
	recoText  string
	detect    string
	calls     int
	block     chan struct{} // when set, Chat blocks until closed
}

func (f *fakeGateway) bump() error {
	f.mu.Lock()
	f.calls++
	err := f.failWith
	f.mu.Unlock()
	return err
}

func (f *fakeGateway) Chat(ctx context.Context, message, chatContext, language string) (ChatReply, error) {
	if err := f.bump(); err != nil {
		return ChatReply{}, err
	}
	if f.block != nil {
		<-f.block
	}
	return ChatReply{Response: f.chatReply, Timestamp: time.Now(), AISource: "gemini"}, nil
}

func (f *fakeGateway) Location(ctx context.Context) (geo.Location, error) {
	if err := f.bump(); err != nil {
		return geo.Location{}, err
	}
	return geo.DefaultLocation(), nil
}

func (f *fakeGateway) Weather(ctx context.Context) (weather.Snapshot, error) {
	if err := f.bump(); err != nil {
		return weather.Snapshot{}, err
	}
	return weather.FallbackSnapshot(), nil
}

func (f *fakeGateway) Soil(ctx context.Context) (farm.SoilProfile, error) {
	if err := f.bump(); err != nil {
		return farm.SoilProfile{}, err
	}
	return farm.DefaultSoil(), nil
}

func (f *fakeGateway) Recommend(ctx context.Context, soil farm.SoilProfile, w weather.Snapshot, loc geo.Location) (string, error) {
	if err := f.bump(); err != nil {
		return "", err
	}
	return f.recoText, nil
}

func (f *fakeGateway) DetectDisease(ctx context.Context, filename string, image []byte, plantType string) (string, error) {
	if err := f.bump(); err != nil {
		return "", err
	}
	return f.detect, nil
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestOrchestrator(gw Gateway, surface advisor.Surface) *Orchestrator {
	return New(conversation.NewSession("welcome"), gw, surface, "en", log.NewNop())
}

func TestSend_AppendsUserAndAssistantTurns(t *testing.T) {
	gw := &fakeGateway{chatReply: "Plant rice."}
	o := newTestOrchestrator(gw, advisor.SurfaceCrop)

	turn, err := o.Send(context.Background(), "what should I plant?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if turn.Content != "Plant rice." {
		t.Errorf("reply turn = %q", turn.Content)
	}

	turns := o.Session().Turns()
	if len(turns) != 3 {
		t.Fatalf("len(turns) = %d, want 3", len(turns))
	}
	if turns[1].Role != conversation.RoleUser || turns[1].Content != "what should I plant?" {
		t.Errorf("user turn = %+v", turns[1])
	}
	if turns[2].Role != conversation.RoleAssistant {
		t.Errorf("reply role = %q", turns[2].Role)
	}
	if o.Session().Pending() {
		t.Error("pending not reset after Send")
	}
}

func TestSend_BlankInputIsIgnored(t *testing.T) {
	gw := &fakeGateway{}
	o := newTestOrchestrator(gw, advisor.SurfaceGeneral)

	turn, err := o.Send(context.Background(), "   \n\t ")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if turn.ID != "" {
		t.Errorf("blank input produced a turn: %+v", turn)
	}
	if gw.callCount() != 0 {
		t.Errorf("gateway called %d times for blank input", gw.callCount())
	}
	if o.Session().Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.Session().Len())
	}
}

func TestSend_GatewayFailureShowsPlaceholder(t *testing.T) {
	gw := &fakeGateway{failWith: errors.New("connection refused")}
	o := newTestOrchestrator(gw, advisor.SurfaceMarket)

	turn, err := o.Send(context.Background(), "wheat prices?")
	if err != nil {
		t.Fatalf("Send() error = %v, want nil", err)
	}
	want := i18n.T("en", "marketBot.placeholderResponse")
	if turn.Content != want {
		t.Errorf("placeholder = %q, want %q", turn.Content, want)
	}

	turns := o.Session().Turns()
	if len(turns) != 3 {
		t.Fatalf("len(turns) = %d, want 3 (welcome, user, placeholder)", len(turns))
	}
	if o.Session().Pending() {
		t.Error("pending not reset after failure")
	}
}

func TestSend_BusyReturnsErrBusy(t *testing.T) {
	block := make(chan struct{})
	gw := &fakeGateway{chatReply: "ok", block: block}
	o := newTestOrchestrator(gw, advisor.SurfaceGeneral)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = o.Send(context.Background(), "first")
	}()

	// Wait for the first call to claim the slot.
	deadline := time.After(2 * time.Second)
	for gw.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("first Send never reached the gateway")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := o.Send(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("second Send error = %v, want ErrBusy", err)
	}

	close(block)
	<-done

	// Slot released; a new request goes through.
	if _, err := o.Send(context.Background(), "third"); err != nil {
		t.Errorf("third Send error = %v", err)
	}
}

func TestSmartRecommend_Success(t *testing.T) {
	gw := &fakeGateway{recoText: "Recommended crop: Maize"}
	o := newTestOrchestrator(gw, advisor.SurfaceCrop)

	turn, err := o.SmartRecommend(context.Background())
	if err != nil {
		t.Fatalf("SmartRecommend() error = %v", err)
	}
	if turn.Content != "Recommended crop: Maize" {
		t.Errorf("turn = %q", turn.Content)
	}

	// welcome + one assistant turn, no user turn
	turns := o.Session().Turns()
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}
	if turns[1].Role != conversation.RoleAssistant {
		t.Errorf("role = %q", turns[1].Role)
	}
}

func TestSmartRecommend_FailureAppendsApology(t *testing.T) {
	gw := &fakeGateway{failWith: errors.New("boom")}
	o := newTestOrchestrator(gw, advisor.SurfaceCrop)

	turn, err := o.SmartRecommend(context.Background())
	if err != nil {
		t.Fatalf("SmartRecommend() error = %v, want nil", err)
	}
	want := "Sorry, I could not get the crop recommendation at this time. Please try again later."
	if turn.Content != want {
		t.Errorf("apology = %q, want %q", turn.Content, want)
	}
	if o.Session().Pending() {
		t.Error("pending not reset after failure")
	}
}

func TestAnalyzeImage(t *testing.T) {
	gw := &fakeGateway{detect: "Detected disease: Leaf spot."}
	o := newTestOrchestrator(gw, advisor.SurfaceDisease)

	turn, err := o.AnalyzeImage(context.Background(), "leaf.jpg", []byte{0xff, 0xd8}, "tomato")
	if err != nil {
		t.Fatalf("AnalyzeImage() error = %v", err)
	}
	if turn.Content != "Detected disease: Leaf spot." {
		t.Errorf("turn = %q", turn.Content)
	}

	turns := o.Session().Turns()
	if len(turns) != 3 {
		t.Fatalf("len(turns) = %d, want 3", len(turns))
	}
	if turns[1].Content != "Uploaded image: leaf.jpg" {
		t.Errorf("user turn = %q", turns[1].Content)
	}
}

func TestAnalyzeImage_EmptyImageIgnored(t *testing.T) {
	gw := &fakeGateway{}
	o := newTestOrchestrator(gw, advisor.SurfaceDisease)

	turn, err := o.AnalyzeImage(context.Background(), "empty.png", nil, "")
	if err != nil {
		t.Fatalf("AnalyzeImage() error = %v", err)
	}
	if turn.ID != "" || gw.callCount() != 0 || o.Session().Len() != 1 {
		t.Error("empty image should be a no-op")
	}
}

func TestClear(t *testing.T) {
	gw := &fakeGateway{chatReply: "hi"}
	o := newTestOrchestrator(gw, advisor.SurfaceGeneral)
	_, _ = o.Send(context.Background(), "hello")

	o.Clear()
	if o.Session().Len() != 1 {
		t.Errorf("Len() after Clear = %d, want 1", o.Session().Len())
	}
}
