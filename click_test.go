package cosmic

import (
	"testing"
	"time"
)

func TestClickEscalation(t *testing.T) {
	base := time.Now()
	p := Point{X: 100, Y: 40}

	first := NewClick(p, MouseButtonLeft, nil, base)
	if first.Kind() != ClickSingle {
		t.Errorf("Expected first click to be Single, got %v", first.Kind())
	}

	second := NewClick(p, MouseButtonLeft, &first, base.Add(100*time.Millisecond))
	if second.Kind() != ClickDouble {
		t.Errorf("Expected second click to be Double, got %v", second.Kind())
	}

	third := NewClick(p, MouseButtonLeft, &second, base.Add(200*time.Millisecond))
	if third.Kind() != ClickTriple {
		t.Errorf("Expected third click to be Triple, got %v", third.Kind())
	}

	// A fourth click inside the window wraps back to Single.
	fourth := NewClick(p, MouseButtonLeft, &third, base.Add(300*time.Millisecond))
	if fourth.Kind() != ClickSingle {
		t.Errorf("Expected fourth click to wrap to Single, got %v", fourth.Kind())
	}
}

func TestClickResetsAfterInterval(t *testing.T) {
	base := time.Now()
	p := Point{X: 100, Y: 40}

	first := NewClick(p, MouseButtonLeft, nil, base)
	late := NewClick(p, MouseButtonLeft, &first, base.Add(MultiClickInterval+time.Millisecond))
	if late.Kind() != ClickSingle {
		t.Errorf("Expected late click to reset to Single, got %v", late.Kind())
	}
}

func TestClickResetsOutsideRadius(t *testing.T) {
	base := time.Now()

	first := NewClick(Point{X: 100, Y: 40}, MouseButtonLeft, nil, base)
	far := NewClick(Point{X: 110, Y: 40}, MouseButtonLeft, &first, base.Add(50*time.Millisecond))
	if far.Kind() != ClickSingle {
		t.Errorf("Expected distant click to reset to Single, got %v", far.Kind())
	}

	near := NewClick(Point{X: 103, Y: 43}, MouseButtonLeft, &first, base.Add(50*time.Millisecond))
	if near.Kind() != ClickDouble {
		t.Errorf("Expected click inside radius to escalate, got %v", near.Kind())
	}
}

func TestClickResetsOnDifferentButton(t *testing.T) {
	base := time.Now()
	p := Point{X: 100, Y: 40}

	first := NewClick(p, MouseButtonLeft, nil, base)
	other := NewClick(p, MouseButtonRight, &first, base.Add(50*time.Millisecond))
	if other.Kind() != ClickSingle {
		t.Errorf("Expected other-button click to reset to Single, got %v", other.Kind())
	}
}
