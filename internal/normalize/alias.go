// Package normalize maps free-form country input to the canonical names used
// by the statistics page.
package normalize

// aliases maps lowercase user input to the name printed on the source page.
// Keys must be lowercase with single spaces.
var aliases = map[string]string{
	"us":                               "USA",
	"u.s.":                             "USA",
	"u.s.a.":                           "USA",
	"usa":                              "USA",
	"america":                          "USA",
	"united states":                    "USA",
	"united states of america":         "USA",
	"uk":                               "UK",
	"u.k.":                             "UK",
	"britain":                          "UK",
	"great britain":                    "UK",
	"england":                          "UK",
	"united kingdom":                   "UK",
	"korea":                            "S. Korea",
	"s korea":                          "S. Korea",
	"s. korea":                         "S. Korea",
	"south korea":                      "S. Korea",
	"uae":                              "UAE",
	"emirates":                         "UAE",
	"united arab emirates":             "UAE",
	"car":                              "CAR",
	"central african republic":         "CAR",
	"drc":                              "DRC",
	"congo-kinshasa":                   "DRC",
	"democratic republic of the congo": "DRC",
	"czech republic":                   "Czechia",
	"hong kong":                        "Hong Kong",
	"hk":                               "Hong Kong",
	"new zealand":                      "New Zealand",
	"nz":                               "New Zealand",
	"south africa":                     "South Africa",
	"saudi arabia":                     "Saudi Arabia",
	"sri lanka":                        "Sri Lanka",
	"costa rica":                       "Costa Rica",
	"el salvador":                      "El Salvador",
	"puerto rico":                      "Puerto Rico",
	"dominican republic":               "Dominican Republic",
	"north macedonia":                  "North Macedonia",
	"macedonia":                        "North Macedonia",
	"bosnia":                           "Bosnia and Herzegovina",
	"bosnia and herzegovina":           "Bosnia and Herzegovina",
	"ivory coast":                      "Ivory Coast",
	"cote d'ivoire":                    "Ivory Coast",
	"vatican":                          "Vatican City",
	"vatican city":                     "Vatican City",
	"faroe islands":                    "Faeroe Islands",
	"faeroe islands":                   "Faeroe Islands",
	"diamond princess":                 "Diamond Princess",
	"san marino":                       "San Marino",
	"north korea":                      "North Korea",
}

// Lookup returns the canonical name stored for key. The key is matched as
// given; callers are expected to pass a folded key.
func Lookup(key string) (string, bool) {
	v, ok := aliases[key]
	return v, ok
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
