package leveldata

import (
	"os"
	"testing"
	"testing/fstest"
)

const testSky = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="50" tileheight="50" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="Clouds">
  <object id="1" x="100" y="80" width="60" height="20">
   <properties>
    <property name="drift" type="float" value="-0.5"/>
   </properties>
  </object>
  <object id="2" x="10" y="5" width="40" height="15"/>
 </objectgroup>
</map>
`

func TestLoadSky(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testSky)}}

	sky, err := LoadSky(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadSky: %v", err)
	}
	if sky.Width != 200 || sky.Height != 150 {
		t.Errorf("size = %dx%d, want 200x150", sky.Width, sky.Height)
	}
	if sky.Name != "test" {
		t.Errorf("name = %q, want the file stem", sky.Name)
	}
	if len(sky.Clouds) != 2 {
		t.Fatalf("clouds = %d, want 2", len(sky.Clouds))
	}

	// Sorted back to front
	first, second := sky.Clouds[0], sky.Clouds[1]
	if first.Y != 5 || first.Drift != 0 {
		t.Errorf("first cloud = %+v", first)
	}
	if second.X != 100 || second.W != 60 || second.H != 20 || second.Drift != -0.5 {
		t.Errorf("second cloud = %+v", second)
	}
}

const namedSky = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="50" tileheight="50" infinite="0" nextlayerid="1" nextobjectid="1">
 <properties>
  <property name="name" value="Dusk"/>
 </properties>
</map>
`

func TestLoadSkyNames(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"map without properties falls back to the file stem", testSky, "sky"},
		{"name property wins", namedSky, "Dusk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"sky.tmx": {Data: []byte(tt.data)}}
			sky, err := LoadSky(fsys, "sky.tmx")
			if err != nil {
				t.Fatalf("LoadSky: %v", err)
			}
			if sky.Name != tt.want {
				t.Errorf("name = %q, want %q", sky.Name, tt.want)
			}
		})
	}
}

func TestLoadSkyMissingFile(t *testing.T) {
	if _, err := LoadSky(fstest.MapFS{}, "levels/none.tmx"); err == nil {
		t.Fatal("expected an error for a missing layout")
	}
}

func TestShippedSkyMatchesGameArea(t *testing.T) {
	sky, err := LoadSky(os.DirFS("../../assets"), "levels/sky.tmx")
	if err != nil {
		t.Fatalf("LoadSky: %v", err)
	}
	if sky.Width != 1500 || sky.Height != 1000 {
		t.Errorf("size = %dx%d, want 1500x1000", sky.Width, sky.Height)
	}
	if sky.Name != "Clear Sky" {
		t.Errorf("name = %q", sky.Name)
	}
	if len(sky.Clouds) == 0 {
		t.Error("no clouds parsed")
	}
}
