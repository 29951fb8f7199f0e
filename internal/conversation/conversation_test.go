package conversation

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewSession_SeedsWelcome(t *testing.T) {
	s := NewSession("Hello, farmer!")
	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("len(turns) = %d, want 1", len(turns))
	}
	if turns[0].Role != RoleAssistant {
		t.Errorf("seed role = %q, want assistant", turns[0].Role)
	}
	if turns[0].Content != "Hello, farmer!" {
		t.Errorf("seed content = %q", turns[0].Content)
	}
	if turns[0].ID == "" || turns[0].Timestamp.IsZero() {
		t.Error("seed turn missing ID or timestamp")
	}
}

func TestNewSession_EmptyWelcome(t *testing.T) {
	s := NewSession("")
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestAppend_PreservesOrder(t *testing.T) {
	s := NewSession("welcome")
	s.Append(RoleUser, "first")
	s.Append(RoleAssistant, "second")
	s.Append(RoleUser, "third")

	turns := s.Turns()
	want := []string{"welcome", "first", "second", "third"}
	if len(turns) != len(want) {
		t.Fatalf("len(turns) = %d, want %d", len(turns), len(want))
	}
	for i, w := range want {
		if turns[i].Content != w {
			t.Errorf("turns[%d] = %q, want %q", i, turns[i].Content, w)
		}
	}
}

func TestTurns_ReturnsCopy(t *testing.T) {
	s := NewSession("welcome")
	turns := s.Turns()
	turns[0].Content = "mutated"
	if s.Turns()[0].Content != "welcome" {
		t.Error("Turns() exposed internal slice")
	}
}

func TestPending(t *testing.T) {
	s := NewSession("welcome")
	if s.Pending() {
		t.Error("new session should not be pending")
	}
	s.SetPending(true)
	if !s.Pending() {
		t.Error("SetPending(true) not observed")
	}
}

func TestClear(t *testing.T) {
	s := NewSession("welcome")
	s.Append(RoleUser, "hi")
	s.SetPending(true)
	s.Clear()

	if s.Len() != 1 {
		t.Errorf("Len() after Clear = %d, want 1", s.Len())
	}
	if s.Turns()[0].Content != "welcome" {
		t.Errorf("Clear did not reseed welcome turn")
	}
	if s.Pending() {
		t.Error("Clear did not reset pending")
	}
}

func TestAppend_Concurrent(t *testing.T) {
	s := NewSession("")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append(RoleUser, fmt.Sprintf("msg-%d", n))
		}(i)
	}
	wg.Wait()
	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}
