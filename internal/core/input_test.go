package core

import (
	"sync"
	"testing"
)

func TestIntentBoxRoundTrip(t *testing.T) {
	var box IntentBox

	if got := box.Load(); got.Moving || got.Vertical != VerticalNone || got.Horizontal != HorizontalNone {
		t.Fatalf("zero IntentBox should be idle, got %+v", got)
	}

	want := MovementIntent{Moving: true, Vertical: VerticalDown, Horizontal: HorizontalLeft}
	box.Store(want)
	if got := box.Load(); got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}

	box.Clear()
	if got := box.Load(); got != (MovementIntent{}) {
		t.Errorf("after Clear, Load() = %+v", got)
	}
}

func TestIntentBoxUpdateKeepsOtherAxis(t *testing.T) {
	var box IntentBox
	box.Update(func(m MovementIntent) MovementIntent {
		m.Moving = true
		m.Vertical = VerticalUp
		return m
	})
	got := box.Update(func(m MovementIntent) MovementIntent {
		m.Horizontal = HorizontalRight
		return m
	})

	if got.Vertical != VerticalUp || got.Horizontal != HorizontalRight || !got.Moving {
		t.Errorf("diagonal intent = %+v", got)
	}
	if got.String() != "upright" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestIntentBoxConcurrentWriters(t *testing.T) {
	var box IntentBox
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					box.Store(MovementIntent{Moving: true, Vertical: VerticalUp})
				} else {
					box.Store(MovementIntent{Moving: true, Horizontal: HorizontalLeft})
				}
			}
		}(i)
	}
	wg.Wait()

	got := box.Load()
	if !got.Moving {
		t.Errorf("final intent should be moving, got %+v", got)
	}
}

func TestDirectionSigns(t *testing.T) {
	if VerticalUp.Sign() != -1 || VerticalDown.Sign() != 1 || VerticalNone.Sign() != 0 {
		t.Error("vertical signs wrong")
	}
	if HorizontalLeft.Sign() != -1 || HorizontalRight.Sign() != 1 || HorizontalNone.Sign() != 0 {
		t.Error("horizontal signs wrong")
	}
}
