package diorama

import "testing"

func TestOverlayUpsert(t *testing.T) {
	o := NewOverlay(nil)

	o.Upsert(NewDialogue("hello").WithID("intro"))
	if o.Len() != 1 {
		t.Fatalf("Len = %d, want 1", o.Len())
	}

	// Same key replaces in place.
	o.Upsert(NewDialogue("hello again").WithID("intro"))
	if o.Len() != 1 {
		t.Fatalf("Len = %d after replace, want 1", o.Len())
	}
	got, ok := o.Get("id:intro")
	if !ok || got.Text != "hello again" {
		t.Errorf("Get = %+v, want replaced text", got)
	}
}

func TestOverlayContentKeyCollision(t *testing.T) {
	o := NewOverlay(nil)

	// ID-less dialogues with the same speaker and text share a key.
	o.Upsert(NewDialogue("same line"))
	o.Upsert(NewDialogue("same line"))
	if o.Len() != 1 {
		t.Errorf("Len = %d, want 1 for identical content", o.Len())
	}

	o.Upsert(NewDialogue("same line").WithSpeaker("Bo"))
	if o.Len() != 2 {
		t.Errorf("Len = %d, want 2 after distinct speaker", o.Len())
	}
}

func TestOverlayUpdateKeepsPosition(t *testing.T) {
	o := NewOverlay(nil)
	o.Upsert(NewDialogue("first").WithID("a"))
	o.Upsert(NewDialogue("second").WithID("b"))

	// Updating the first entry must not move it behind the second.
	o.Upsert(NewDialogue("first, revised").WithID("a"))

	panels := o.Instructions(1000, 1000)
	if len(panels) != 2 {
		t.Fatalf("panels = %d, want 2", len(panels))
	}
	if panels[0].Text != "first, revised" || panels[1].Text != "second" {
		t.Errorf("order = [%q, %q]", panels[0].Text, panels[1].Text)
	}
}

func TestOverlayInstructionsLayout(t *testing.T) {
	o := NewOverlay(nil)
	o.Upsert(NewDialogue("one").WithID("a"))
	o.Upsert(NewDialogue("two").WithID("b").WithSpeaker("Bo"))

	panels := o.Instructions(1000, 1000)
	if len(panels) != 2 {
		t.Fatalf("panels = %d, want 2", len(panels))
	}

	first := panels[0]
	if first.Width != 860 || first.Height != 220 {
		t.Errorf("size = %vx%v, want 860x220", first.Width, first.Height)
	}
	if first.X != 70 {
		t.Errorf("X = %v, want 70 (centered)", first.X)
	}
	if first.Y != 760 {
		t.Errorf("Y = %v, want 760 (20px above the bottom)", first.Y)
	}
	if first.Speaker != DefaultSpeaker || first.Text != "one" {
		t.Errorf("content = %q/%q", first.Speaker, first.Text)
	}

	// Second panel stacks one height plus the gap above the first.
	second := panels[1]
	if second.Y != 760-220-12 {
		t.Errorf("second Y = %v, want %v", second.Y, 760-220-12)
	}
	if second.Speaker != "Bo" {
		t.Errorf("second speaker = %q", second.Speaker)
	}
}

func TestOverlayInstructionsMinHeight(t *testing.T) {
	o := NewOverlay(nil)
	o.Upsert(NewDialogue("short viewport").WithID("a"))

	// 22% of 400 is 88, below the floor.
	panels := o.Instructions(640, 400)
	if len(panels) != 1 {
		t.Fatalf("panels = %d, want 1", len(panels))
	}
	if panels[0].Height != 120 {
		t.Errorf("Height = %v, want floor 120", panels[0].Height)
	}
	if panels[0].Y != 400-120-20 {
		t.Errorf("Y = %v, want %v", panels[0].Y, 400-120-20)
	}
}

func TestOverlayInstructionsSkipsHidden(t *testing.T) {
	o := NewOverlay(nil)
	o.Upsert(NewDialogue("visible").WithID("a"))
	o.Upsert(NewDialogue("hidden").WithID("b").WithHidden(true))

	panels := o.Instructions(1000, 1000)
	if len(panels) != 1 || panels[0].Text != "visible" {
		t.Fatalf("panels = %+v, want only the visible entry", panels)
	}
	if o.Len() != 2 {
		t.Errorf("Len = %d, hidden entries must stay registered", o.Len())
	}

	// Hiding the first entry moves the second down into its slot.
	o.Upsert(NewDialogue("visible").WithID("a").WithHidden(true))
	o.Upsert(NewDialogue("hidden").WithID("b"))
	panels = o.Instructions(1000, 1000)
	if len(panels) != 1 || panels[0].Y != 760 {
		t.Errorf("panels = %+v, want one panel at the bottom slot", panels)
	}
}

func TestOverlayInstructionsEmpty(t *testing.T) {
	o := NewOverlay(nil)
	if panels := o.Instructions(1000, 1000); len(panels) != 0 {
		t.Errorf("panels = %+v, want none", panels)
	}
}
