package catalog

import "testing"

func TestDistrictCount(t *testing.T) {
	all := Districts()
	if len(all) != DistrictCount {
		t.Fatalf("len(Districts()) = %d, want %d", len(all), DistrictCount)
	}
}

func TestDistrictIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Districts() {
		if seen[d.ID] {
			t.Errorf("duplicate district id %q", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestProvinceGrouping(t *testing.T) {
	provinces := Provinces()
	if len(provinces) != 7 {
		t.Fatalf("len(Provinces()) = %d, want 7", len(provinces))
	}

	wantCounts := map[string]int{
		"Koshi":         14,
		"Madhesh":       8,
		"Bagmati":       13,
		"Gandaki":       11,
		"Lumbini":       12,
		"Karnali":       10,
		"Sudurpashchim": 9,
	}
	total := 0
	for _, p := range provinces {
		want, ok := wantCounts[p.Name]
		if !ok {
			t.Errorf("unexpected province %q", p.Name)
			continue
		}
		if len(p.Districts) != want {
			t.Errorf("province %q has %d districts, want %d", p.Name, len(p.Districts), want)
		}
		total += len(p.Districts)
	}
	if total != DistrictCount {
		t.Errorf("districts across provinces = %d, want %d", total, DistrictCount)
	}
}

func TestByID(t *testing.T) {
	d, ok := ByID("kaski")
	if !ok {
		t.Fatal("ByID(kaski) not found")
	}
	if d.Name != "Kaski" || d.Province != "Gandaki" {
		t.Errorf("ByID(kaski) = %+v, want Kaski in Gandaki", d)
	}

	if _, ok := ByID("atlantis"); ok {
		t.Error("ByID(atlantis) found, want missing")
	}
}

func TestProvinceColorsComplete(t *testing.T) {
	for _, p := range Provinces() {
		if ProvinceColors[p.Name] == "" {
			t.Errorf("province %q has no marker color", p.Name)
		}
	}
}

func TestCoordinatesPlausible(t *testing.T) {
	// Nepal sits roughly within lng 80-89, lat 26-31.
	for _, d := range Districts() {
		lng, lat := d.Coordinates[0], d.Coordinates[1]
		if lng < 79 || lng > 89 {
			t.Errorf("district %q longitude %v out of range", d.ID, lng)
		}
		if lat < 26 || lat > 31 {
			t.Errorf("district %q latitude %v out of range", d.ID, lat)
		}
	}
}
