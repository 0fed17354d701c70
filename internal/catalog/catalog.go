// Package catalog holds the compiled-in list of Nepal's 77 administrative
// districts grouped into 7 provinces. The data is immutable; coverage state
// lives in the remote store and is overlaid elsewhere.
package catalog

import "github.com/mission77/core/internal/models"

// DistrictCount is the number of administrative districts in Nepal.
const DistrictCount = 77

// ProvinceColors maps each province to its map marker color.
var ProvinceColors = map[string]string{
	"Koshi":         "#ef4444",
	"Madhesh":       "#f97316",
	"Bagmati":       "#eab308",
	"Gandaki":       "#22c55e",
	"Lumbini":       "#06b6d4",
	"Karnali":       "#8b5cf6",
	"Sudurpashchim": "#ec4899",
}

var districts = []models.CatalogDistrict{
	// Province 1 (Koshi)
	{ID: "taplejung", Name: "Taplejung", Province: "Koshi", Coordinates: [2]float64{87.6667, 27.3500}},
	{ID: "panchthar", Name: "Panchthar", Province: "Koshi", Coordinates: [2]float64{87.5833, 27.1667}},
	{ID: "ilam", Name: "Ilam", Province: "Koshi", Coordinates: [2]float64{87.9167, 26.9167}},
	{ID: "jhapa", Name: "Jhapa", Province: "Koshi", Coordinates: [2]float64{87.9167, 26.5833}},
	{ID: "morang", Name: "Morang", Province: "Koshi", Coordinates: [2]float64{87.3000, 26.6667}},
	{ID: "sunsari", Name: "Sunsari", Province: "Koshi", Coordinates: [2]float64{87.2500, 26.7500}},
	{ID: "dhankuta", Name: "Dhankuta", Province: "Koshi", Coordinates: [2]float64{87.3333, 26.9833}},
	{ID: "terhathum", Name: "Terhathum", Province: "Koshi", Coordinates: [2]float64{87.5833, 27.0833}},
	{ID: "sankhuwasabha", Name: "Sankhuwasabha", Province: "Koshi", Coordinates: [2]float64{87.3333, 27.4167}},
	{ID: "bhojpur", Name: "Bhojpur", Province: "Koshi", Coordinates: [2]float64{87.0833, 27.1667}},
	{ID: "solukhumbu", Name: "Solukhumbu", Province: "Koshi", Coordinates: [2]float64{86.7167, 27.8000}},
	{ID: "okhaldhunga", Name: "Okhaldhunga", Province: "Koshi", Coordinates: [2]float64{86.5000, 27.3167}},
	{ID: "khotang", Name: "Khotang", Province: "Koshi", Coordinates: [2]float64{86.7500, 27.2000}},
	{ID: "udayapur", Name: "Udayapur", Province: "Koshi", Coordinates: [2]float64{86.6667, 26.7500}},

	// Province 2 (Madhesh)
	{ID: "saptari", Name: "Saptari", Province: "Madhesh", Coordinates: [2]float64{86.7500, 26.5833}},
	{ID: "siraha", Name: "Siraha", Province: "Madhesh", Coordinates: [2]float64{86.2500, 26.6667}},
	{ID: "dhanusha", Name: "Dhanusha", Province: "Madhesh", Coordinates: [2]float64{85.9167, 26.7500}},
	{ID: "mahottari", Name: "Mahottari", Province: "Madhesh", Coordinates: [2]float64{85.7500, 26.8333}},
	{ID: "sarlahi", Name: "Sarlahi", Province: "Madhesh", Coordinates: [2]float64{85.5000, 26.9167}},
	{ID: "rautahat", Name: "Rautahat", Province: "Madhesh", Coordinates: [2]float64{85.2500, 26.8333}},
	{ID: "bara", Name: "Bara", Province: "Madhesh", Coordinates: [2]float64{85.0833, 27.0000}},
	{ID: "parsa", Name: "Parsa", Province: "Madhesh", Coordinates: [2]float64{84.8333, 27.0833}},

	// Province 3 (Bagmati)
	{ID: "dolakha", Name: "Dolakha", Province: "Bagmati", Coordinates: [2]float64{86.0833, 27.6667}},
	{ID: "sindhupalchok", Name: "Sindhupalchok", Province: "Bagmati", Coordinates: [2]float64{85.6833, 27.9500}},
	{ID: "ramechhap", Name: "Ramechhap", Province: "Bagmati", Coordinates: [2]float64{86.0833, 27.3333}},
	{ID: "sindhuli", Name: "Sindhuli", Province: "Bagmati", Coordinates: [2]float64{85.9167, 27.2500}},
	{ID: "kavrepalanchok", Name: "Kavrepalanchok", Province: "Bagmati", Coordinates: [2]float64{85.5833, 27.5833}},
	{ID: "bhaktapur", Name: "Bhaktapur", Province: "Bagmati", Coordinates: [2]float64{85.4167, 27.6667}},
	{ID: "lalitpur", Name: "Lalitpur", Province: "Bagmati", Coordinates: [2]float64{85.3333, 27.6667}},
	{ID: "kathmandu", Name: "Kathmandu", Province: "Bagmati", Coordinates: [2]float64{85.3333, 27.7000}},
	{ID: "nuwakot", Name: "Nuwakot", Province: "Bagmati", Coordinates: [2]float64{85.1667, 27.9167}},
	{ID: "rasuwa", Name: "Rasuwa", Province: "Bagmati", Coordinates: [2]float64{85.3333, 28.0833}},
	{ID: "dhading", Name: "Dhading", Province: "Bagmati", Coordinates: [2]float64{84.9167, 27.8333}},
	{ID: "makwanpur", Name: "Makwanpur", Province: "Bagmati", Coordinates: [2]float64{85.0833, 27.4167}},
	{ID: "chitwan", Name: "Chitwan", Province: "Bagmati", Coordinates: [2]float64{84.4167, 27.5000}},

	// Province 4 (Gandaki)
	{ID: "manang", Name: "Manang", Province: "Gandaki", Coordinates: [2]float64{84.0000, 28.6667}},
	{ID: "mustang", Name: "Mustang", Province: "Gandaki", Coordinates: [2]float64{83.8333, 28.8333}},
	{ID: "myagdi", Name: "Myagdi", Province: "Gandaki", Coordinates: [2]float64{83.2500, 28.3333}},
	{ID: "kaski", Name: "Kaski", Province: "Gandaki", Coordinates: [2]float64{83.9167, 28.2500}},
	{ID: "lamjung", Name: "Lamjung", Province: "Gandaki", Coordinates: [2]float64{84.3333, 28.2500}},
	{ID: "tanahun", Name: "Tanahun", Province: "Gandaki", Coordinates: [2]float64{84.2500, 27.9167}},
	{ID: "nawalpur", Name: "Nawalpur", Province: "Gandaki", Coordinates: [2]float64{84.0833, 27.6667}},
	{ID: "syangja", Name: "Syangja", Province: "Gandaki", Coordinates: [2]float64{83.8333, 28.0833}},
	{ID: "parbat", Name: "Parbat", Province: "Gandaki", Coordinates: [2]float64{83.7500, 28.1667}},
	{ID: "baglung", Name: "Baglung", Province: "Gandaki", Coordinates: [2]float64{83.5833, 28.2500}},
	{ID: "gorkha", Name: "Gorkha", Province: "Gandaki", Coordinates: [2]float64{84.6667, 28.0000}},

	// Province 5 (Lumbini)
	{ID: "kapilvastu", Name: "Kapilvastu", Province: "Lumbini", Coordinates: [2]float64{83.0000, 27.5000}},
	{ID: "rupandehi", Name: "Rupandehi", Province: "Lumbini", Coordinates: [2]float64{83.4167, 27.5000}},
	{ID: "arghakhanchi", Name: "Arghakhanchi", Province: "Lumbini", Coordinates: [2]float64{83.0833, 27.9167}},
	{ID: "gulmi", Name: "Gulmi", Province: "Lumbini", Coordinates: [2]float64{83.2500, 28.0833}},
	{ID: "palpa", Name: "Palpa", Province: "Lumbini", Coordinates: [2]float64{83.6667, 27.8333}},
	{ID: "nawalparasi-east", Name: "Nawalparasi East", Province: "Lumbini", Coordinates: [2]float64{84.0000, 27.6667}},
	{ID: "nawalparasi-west", Name: "Nawalparasi West", Province: "Lumbini", Coordinates: [2]float64{83.7500, 27.7500}},
	{ID: "rolpa", Name: "Rolpa", Province: "Lumbini", Coordinates: [2]float64{82.7500, 28.2500}},
	{ID: "pyuthan", Name: "Pyuthan", Province: "Lumbini", Coordinates: [2]float64{82.9167, 28.0833}},
	{ID: "dang", Name: "Dang", Province: "Lumbini", Coordinates: [2]float64{82.3333, 27.8333}},
	{ID: "banke", Name: "Banke", Province: "Lumbini", Coordinates: [2]float64{81.6667, 28.0833}},
	{ID: "bardiya", Name: "Bardiya", Province: "Lumbini", Coordinates: [2]float64{81.4167, 28.3333}},

	// Province 6 (Karnali)
	{ID: "western-rukum", Name: "Western Rukum", Province: "Karnali", Coordinates: [2]float64{82.5000, 28.5000}},
	{ID: "salyan", Name: "Salyan", Province: "Karnali", Coordinates: [2]float64{82.1667, 28.3333}},
	{ID: "dolpa", Name: "Dolpa", Province: "Karnali", Coordinates: [2]float64{82.9167, 29.0000}},
	{ID: "humla", Name: "Humla", Province: "Karnali", Coordinates: [2]float64{81.8333, 29.8333}},
	{ID: "jumla", Name: "Jumla", Province: "Karnali", Coordinates: [2]float64{82.1667, 29.2500}},
	{ID: "kalikot", Name: "Kalikot", Province: "Karnali", Coordinates: [2]float64{81.6667, 29.1667}},
	{ID: "mugu", Name: "Mugu", Province: "Karnali", Coordinates: [2]float64{82.2500, 29.5000}},
	{ID: "surkhet", Name: "Surkhet", Province: "Karnali", Coordinates: [2]float64{81.6667, 28.6667}},
	{ID: "dailekh", Name: "Dailekh", Province: "Karnali", Coordinates: [2]float64{81.7500, 28.8333}},
	{ID: "jajarkot", Name: "Jajarkot", Province: "Karnali", Coordinates: [2]float64{82.0833, 28.9167}},

	// Province 7 (Sudurpashchim)
	{ID: "kailali", Name: "Kailali", Province: "Sudurpashchim", Coordinates: [2]float64{80.7500, 28.6667}},
	{ID: "achham", Name: "Achham", Province: "Sudurpashchim", Coordinates: [2]float64{81.2500, 29.0833}},
	{ID: "doti", Name: "Doti", Province: "Sudurpashchim", Coordinates: [2]float64{80.9167, 29.2500}},
	{ID: "bajhang", Name: "Bajhang", Province: "Sudurpashchim", Coordinates: [2]float64{81.3333, 29.5000}},
	{ID: "bajura", Name: "Bajura", Province: "Sudurpashchim", Coordinates: [2]float64{81.5000, 29.4167}},
	{ID: "kanchanpur", Name: "Kanchanpur", Province: "Sudurpashchim", Coordinates: [2]float64{80.2500, 28.8333}},
	{ID: "dadeldhura", Name: "Dadeldhura", Province: "Sudurpashchim", Coordinates: [2]float64{80.5833, 29.2500}},
	{ID: "baitadi", Name: "Baitadi", Province: "Sudurpashchim", Coordinates: [2]float64{80.4167, 29.5000}},
	{ID: "darchula", Name: "Darchula", Province: "Sudurpashchim", Coordinates: [2]float64{80.6667, 29.6667}},
}

var provinceOrder = []string{
	"Koshi", "Madhesh", "Bagmati", "Gandaki", "Lumbini", "Karnali", "Sudurpashchim",
}

var byID = func() map[string]models.CatalogDistrict {
	m := make(map[string]models.CatalogDistrict, len(districts))
	for _, d := range districts {
		m[d.ID] = d
	}
	return m
}()

// Districts returns the full catalog in province order. The returned slice
// is a copy; callers may not mutate catalog data through it.
func Districts() []models.CatalogDistrict {
	out := make([]models.CatalogDistrict, len(districts))
	copy(out, districts)
	return out
}

// ByID looks up a catalog district by its id.
func ByID(id string) (models.CatalogDistrict, bool) {
	d, ok := byID[id]
	return d, ok
}

// Provinces returns the 7 provinces with their districts.
func Provinces() []models.Province {
	out := make([]models.Province, 0, len(provinceOrder))
	for _, name := range provinceOrder {
		p := models.Province{Name: name}
		for _, d := range districts {
			if d.Province == name {
				p.Districts = append(p.Districts, d)
			}
		}
		out = append(out, p)
	}
	return out
}
