package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		face := name.Get()
		if w := font.MeasureString(face, "Score: 10"); w <= 0 {
			t.Errorf("%s: measured width %v", name, w)
		}
	}
	if font.MeasureString(Title.Get(), "Pop") <= font.MeasureString(Small.Get(), "Pop") {
		t.Error("title face is not larger than the small face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected a parse error")
	}
}
