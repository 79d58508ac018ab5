package treemap

import "testing"

func TestRGBChannels(t *testing.T) {
	c := RGB(10, 20, 30)
	r, g, b := c.Channels()
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("Channels() = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
}

func TestGraphColorFlags(t *testing.T) {
	c := RGB(1, 2, 3) | GraphColor(ColorFlagDarker)
	if c.Flags() != ColorFlagDarker {
		t.Fatalf("Flags() = %d, want %d", c.Flags(), ColorFlagDarker)
	}
	r, g, b := c.WithoutFlags().Channels()
	if r != 1 || g != 2 || b != 3 {
		t.Fatalf("WithoutFlags().Channels() = (%d, %d, %d), want (1, 2, 3)", r, g, b)
	}
}

func TestBrightnessOfWhiteIsOne(t *testing.T) {
	white := RGB(255, 255, 255)
	if got := Brightness(white); got < 0.999 || got > 1.001 {
		t.Fatalf("Brightness(white) = %v, want ~1.0", got)
	}
}

func TestBrightnessOfBlackIsZero(t *testing.T) {
	black := RGB(0, 0, 0)
	if got := Brightness(black); got != 0 {
		t.Fatalf("Brightness(black) = %v, want 0", got)
	}
}

func TestMakeBrightHitsTargetBrightness(t *testing.T) {
	c := RGB(100, 50, 25)
	bright := MakeBright(c, 0.6)
	got := Brightness(bright)
	// Channels are truncated to integers, so the result lands within one
	// 8-bit step (1/255) of the target rather than exactly on it.
	if got < 0.6-1.0/255 || got > 0.6+1.0/255 {
		t.Fatalf("Brightness(MakeBright(c, 0.6)) = %v, want ~0.6", got)
	}
}

func TestMakeBrightZeroColorNoPanic(t *testing.T) {
	got := MakeBright(RGB(0, 0, 0), 0.6)
	if got != RGB(0, 0, 0) {
		t.Fatalf("MakeBright(black, 0.6) = %v, want black", got)
	}
}

func TestNormalizeColorClampsRange(t *testing.T) {
	red, green, blue := -10, 300, 128
	NormalizeColor(&red, &green, &blue)
	for _, v := range []int{red, green, blue} {
		if v < 0 || v > 255 {
			t.Fatalf("NormalizeColor produced out-of-range channel %d", v)
		}
	}
}

func TestEqualizePaletteHitsTargetBrightness(t *testing.T) {
	palette := EqualizePalette([]GraphColor{RGB(200, 10, 10), RGB(10, 200, 10)})
	for i, c := range palette {
		b := Brightness(c)
		if b < PaletteBrightness-0.01 || b > PaletteBrightness+0.01 {
			t.Fatalf("palette[%d] brightness = %v, want ~%v", i, b, PaletteBrightness)
		}
	}
}

func TestDefaultPaletteNonEmpty(t *testing.T) {
	if len(DefaultPalette()) == 0 {
		t.Fatal("DefaultPalette() is empty")
	}
	if len(DefaultPalette256()) == 0 {
		t.Fatal("DefaultPalette256() is empty")
	}
}
