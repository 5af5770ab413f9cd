package font

import "testing"

import "golang.org/x/image/font/gofont/goregular"

// goregular ships with x/image, which keeps these tests free of
// external testdata while still exercising a real outline font.
func parseGoRegular(t *testing.T) *Asset {
	t.Helper()
	asset, name, err := ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if name == "" { t.Fatal("expected a non-empty font name") }
	return asset
}

func TestAssetGlyphIndex(t *testing.T) {
	asset := parseGoRegular(t)
	if asset.GlyphIndex('A') == 0 { t.Fatal("expected a glyph for 'A'") }
	if asset.GlyphIndex(' ') == 0 { t.Fatal("expected a glyph for space") }
	if asset.GlyphIndex('') != 0 {
		t.Fatal("expected the zero sentinel for an unmapped code point")
	}
	if asset.NumGlyphs() <= 0 { t.Fatal("expected a positive glyph count") }
}

func TestAssetScaleFactor(t *testing.T) {
	asset := parseGoRegular(t)
	upem := asset.UnitsPerEm()
	if upem <= 0 { t.Fatal("expected positive units per em") }
	if asset.ScaleFactor(upem) != 1.0 {
		t.Fatalf("expected scale factor 1.0 at size %d", upem)
	}
	if asset.ScaleFactor(upem*2) != 2.0 {
		t.Fatal("expected scale factor 2.0 at twice the upem")
	}
}

func TestAssetMetrics(t *testing.T) {
	asset := parseGoRegular(t)
	upem := asset.UnitsPerEm()

	// at size == upem, scaled metrics must match raw font units
	advance, _, ok := asset.Metrics('A', upem)
	if !ok { t.Fatal("expected metrics for 'A'") }
	rawAdvance, ok := asset.RawAdvance('A')
	if !ok { t.Fatal("expected a raw advance for 'A'") }
	if advance != rawAdvance {
		t.Fatalf("expected %d, got %d", rawAdvance, advance)
	}

	smallAdvance, _, ok := asset.Metrics('A', 16)
	if !ok { t.Fatal("expected metrics for 'A'") }
	if smallAdvance <= 0 || smallAdvance >= 16 {
		t.Fatalf("suspicious 16px advance %d", smallAdvance)
	}

	_, _, ok = asset.Metrics('', 16)
	if ok { t.Fatal("expected no metrics for an unmapped code point") }
	_, ok = asset.RawAdvance('')
	if ok { t.Fatal("expected no raw advance for an unmapped code point") }

	spaceAdvance, ok := asset.RawAdvance(' ')
	if !ok || spaceAdvance <= 0 {
		t.Fatal("expected a positive raw advance for space")
	}
}

func TestAssetKern(t *testing.T) {
	asset := parseGoRegular(t)
	if asset.Kern(0, 'A', 16) != 0 {
		t.Fatal("expected zero kern against the NUL sentinel")
	}
	if asset.Kern('A', '', 16) != 0 {
		t.Fatal("expected zero kern against an unmapped code point")
	}

	// whatever the font says, kerns must stay small relative to size
	kern := asset.Kern('A', 'V', 16)
	if kern < -16 || kern > 16 { t.Fatalf("suspicious kern %d", kern) }
}

func TestAssetProperties(t *testing.T) {
	asset := parseGoRegular(t)
	family, err := GetFamily(asset)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if family == "" { t.Fatal("expected a non-empty family name") }

	missing := GetMissingRunes(asset, "Hello")
	if len(missing) != 0 { t.Fatalf("unexpected missing runes %v", missing) }
	missing = GetMissingRunes(asset, "ab")
	if len(missing) != 2 { t.Fatalf("expected 2 missing runes, got %v", missing) }
}
