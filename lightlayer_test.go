package seedling

import "testing"

func TestLightLayerDarkness(t *testing.T) {
	ll := NewLightLayer()
	if got := ll.Darkness(MeadowLighting()); got != 0 {
		t.Errorf("meadow darkness = %f, want 0", got)
	}
	// Dark preset: 0.85 * (1 - 0.3).
	assertNear(t, "dark", ll.Darkness(DarkLighting()), 0.595)

	l := DarkLighting()
	l.AmbientIntensity = 1
	if got := ll.Darkness(l); got != 0 {
		t.Errorf("full flat light darkness = %f, want 0", got)
	}
	l.AmbientIntensity = -1
	if got := ll.Darkness(l); got != 0.85 {
		t.Errorf("darkness = %f, want clamped to 0.85", got)
	}
}

func TestFalloff(t *testing.T) {
	assertNear(t, "center", falloff(0), 1)
	assertNear(t, "half", falloff(0.5), 0.5)
	assertNear(t, "edge", falloff(1), 0)
	assertNear(t, "outside", falloff(2), 0)
}

func TestCirclePixels(t *testing.T) {
	pix := circlePixels(4)
	if len(pix) != 8*8*4 {
		t.Fatalf("len = %d, want %d", len(pix), 8*8*4)
	}
	corner := pix[0:4]
	if corner[3] != 0 {
		t.Errorf("corner alpha = %d, want 0", corner[3])
	}
	// Pixel (3, 3) is next to the center.
	center := pix[(3*8+3)*4:]
	if center[3] < 200 {
		t.Errorf("center alpha = %d, want nearly opaque", center[3])
	}
	if center[0] != center[3] {
		t.Error("circle pixels should be premultiplied white")
	}
}
