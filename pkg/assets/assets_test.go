package assets

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

func TestFromBounds(t *testing.T) {
	m := FromBounds("Oak", CategoryTree, geo.V3(4, 6, 10))

	if m.BoundingRadius != 3.0 {
		t.Errorf("radius: got %f, want 3 (half the larger footprint axis)", m.BoundingRadius)
	}
	if m.Height != 10 {
		t.Errorf("height: got %f, want 10", m.Height)
	}
	if m.MinSpacing != 6.0 {
		t.Errorf("min spacing: got %f, want 6 (2x radius)", m.MinSpacing)
	}
}

func TestFromBoundsCategoryDefaults(t *testing.T) {
	tree := FromBounds("t", CategoryTree, geo.V3(2, 2, 6))
	if tree.MaxSlope != 30.0 || tree.Clustering != "grouped" {
		t.Errorf("tree defaults: %+v", tree)
	}

	rock := FromBounds("r", CategoryRock, geo.V3(2, 2, 1))
	if rock.MaxSlope != 90.0 || rock.Clustering != "scattered" {
		t.Errorf("rock defaults: %+v", rock)
	}
}

func TestFromBoundsDegenerateBox(t *testing.T) {
	m := FromBounds("broken", CategoryRock, geo.Vec3{})

	if m.BoundingRadius != 1.0 {
		t.Errorf("degenerate box should get default radius 1.0, got %f", m.BoundingRadius)
	}
	if m.Height != 2.0 {
		t.Errorf("degenerate box should get default height 2.0, got %f", m.Height)
	}
}

func TestLibraryAddAndCounts(t *testing.T) {
	lib := NewLibrary()

	if !lib.Add(FromBounds("a", CategoryTree, geo.V3(2, 2, 5))) {
		t.Fatal("valid category rejected")
	}
	if lib.Add(Metadata{Name: "x", Category: "building"}) {
		t.Error("unknown category accepted")
	}

	if lib.Count(CategoryTree) != 1 || lib.Total() != 1 {
		t.Errorf("counts: tree=%d total=%d", lib.Count(CategoryTree), lib.Total())
	}
	if !lib.Has(CategoryTree) || lib.Has(CategoryRock) {
		t.Error("Has mismatch")
	}
}

func TestLibraryRandom(t *testing.T) {
	lib := NewLibrary()
	rng := rand.New(rand.NewSource(1))

	if _, ok := lib.Random(CategoryTree, rng); ok {
		t.Error("empty category should report no asset")
	}

	lib.Add(FromBounds("a", CategoryTree, geo.V3(2, 2, 5)))
	lib.Add(FromBounds("b", CategoryTree, geo.V3(3, 3, 7)))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		m, ok := lib.Random(CategoryTree, rng)
		if !ok {
			t.Fatal("random pick failed on stocked category")
		}
		seen[m.Name] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("random picks never hit both assets: %v", seen)
	}
}

func TestLibraryDefaultFallback(t *testing.T) {
	lib := NewLibrary()
	m := lib.Default(CategoryGrass)
	if m.BoundingRadius != 1.0 {
		t.Errorf("placeholder radius: got %f", m.BoundingRadius)
	}
	if m.Category != CategoryGrass {
		t.Errorf("placeholder category: got %s", m.Category)
	}
}

func TestDefaultLibraryStocksAllCategories(t *testing.T) {
	lib := DefaultLibrary()
	for _, cat := range Categories {
		if !lib.Has(cat) {
			t.Errorf("missing default asset for %s", cat)
		}
	}
}

func TestClear(t *testing.T) {
	lib := DefaultLibrary()
	lib.ClearCategory(CategoryTree)
	if lib.Has(CategoryTree) {
		t.Error("tree category should be empty")
	}
	lib.ClearAll()
	if lib.Total() != 0 {
		t.Errorf("library should be empty, has %d", lib.Total())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lib := NewLibrary()
	lib.Add(FromBounds("Oak", CategoryTree, geo.V3(4, 4, 9)))
	lib.Add(FromBounds("Boulder", CategoryRock, geo.V3(3, 2, 2)))

	path := filepath.Join(t.TempDir(), "library.json")
	if err := lib.SaveFile(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewLibrary()
	if err := loaded.LoadFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Count(CategoryTree) != 1 || loaded.Count(CategoryRock) != 1 {
		t.Fatalf("loaded counts: tree=%d rock=%d", loaded.Count(CategoryTree), loaded.Count(CategoryRock))
	}
	oak := loaded.Assets(CategoryTree)[0]
	if oak.Name != "Oak" || oak.BoundingRadius != 2.0 || oak.MaxSlope != 30.0 {
		t.Errorf("oak metadata mangled: %+v", oak)
	}
}

func TestLoadSanitizesMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.json")
	raw := `{
  "tree": [{"name": "bare", "bounding_radius": 0, "height": 0}],
  "castle": [{"name": "ignored"}]
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary()
	if err := lib.LoadFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if lib.Total() != 1 {
		t.Fatalf("unknown category should be skipped, total=%d", lib.Total())
	}
	m := lib.Assets(CategoryTree)[0]
	if m.BoundingRadius != 1.0 || m.Height != 2.0 || m.MinSpacing != 2.0 {
		t.Errorf("defaults not applied: %+v", m)
	}
}

func TestLoadMissingFile(t *testing.T) {
	lib := NewLibrary()
	if err := lib.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
