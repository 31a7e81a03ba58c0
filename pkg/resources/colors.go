package resources

// Static lookup tables for the dashboard. These are configuration data, not
// logic: driver/team assignments go stale every season and are only used for
// presentation defaults.

var driverColors = map[string]string{
	"VER": "#0600EF", // Red Bull
	"PER": "#0600EF", // Red Bull
	"LEC": "#DC0000", // Ferrari
	"SAI": "#DC0000", // Ferrari
	"HAM": "#00D2BE", // Mercedes
	"RUS": "#00D2BE", // Mercedes
	"NOR": "#FF8700", // McLaren
	"PIA": "#FF8700", // McLaren
	"ALO": "#006F62", // Aston Martin
	"STR": "#006F62", // Aston Martin
	"OCO": "#0090FF", // Alpine
	"GAS": "#0090FF", // Alpine
	"ALB": "#005AFF", // Williams
	"SAR": "#005AFF", // Williams
	"TSU": "#4E7C9B", // AlphaTauri/RB
	"RIC": "#4E7C9B", // AlphaTauri/RB
	"HUL": "#FFFFFF", // Haas
	"MAG": "#FFFFFF", // Haas
	"BOT": "#900000", // Alfa Romeo
	"ZHO": "#900000", // Alfa Romeo
	"BEA": "#FF0000",
}

// DriverColor returns the line color for a driver code, white when unknown.
func DriverColor(code string) string {
	if color, ok := driverColors[code]; ok {
		return color
	}
	return "#FFFFFF"
}

var tireColors = map[string]string{
	"Soft":         "#E10600",
	"Medium":       "#FFF200",
	"Hard":         "#FFFFFF",
	"Intermediate": "#43B02A",
	"Wet":          "#0067AD",
	"Unknown":      "#666666",
}

// TireColor returns the fill color for a tire compound.
func TireColor(compound string) string {
	if color, ok := tireColors[compound]; ok {
		return color
	}
	return tireColors["Unknown"]
}

var teamNames = map[string]string{
	"VER": "Red Bull Racing",
	"PER": "Red Bull Racing",
	"HAM": "Mercedes",
	"RUS": "Mercedes",
	"LEC": "Ferrari",
	"SAI": "Ferrari",
	"NOR": "McLaren",
	"PIA": "McLaren",
	"ALO": "Aston Martin",
	"STR": "Aston Martin",
	"OCO": "Alpine",
	"GAS": "Alpine",
	"MAG": "Haas F1 Team",
	"HUL": "Haas F1 Team",
	"TSU": "RB",
	"RIC": "RB",
	"ZHO": "Stake F1 Team",
	"BOT": "Stake F1 Team",
	"ALB": "Williams",
	"SAR": "Williams",
}

// TeamName returns the team a driver code belongs to in the demo lineup.
func TeamName(code string) string {
	if team, ok := teamNames[code]; ok {
		return team
	}
	return "Unknown Team"
}

var countryCodes = map[string]string{
	"Australia":            "au",
	"Austria":              "at",
	"Azerbaijan":           "az",
	"Bahrain":              "bh",
	"Belgium":              "be",
	"Brazil":               "br",
	"Canada":               "ca",
	"China":                "cn",
	"France":               "fr",
	"Germany":              "de",
	"Hungary":              "hu",
	"Italy":                "it",
	"Japan":                "jp",
	"Mexico":               "mx",
	"Monaco":               "mc",
	"Netherlands":          "nl",
	"Portugal":             "pt",
	"Qatar":                "qa",
	"Russia":               "ru",
	"Saudi Arabia":         "sa",
	"Singapore":            "sg",
	"Spain":                "es",
	"United Arab Emirates": "ae",
	"United Kingdom":       "gb",
	"USA":                  "us",
	"United States":        "us",
}

// CountryCode returns the two-letter flag code for a country name, "default"
// when unmapped.
func CountryCode(country string) string {
	if code, ok := countryCodes[country]; ok {
		return code
	}
	return "default"
}
