package config

// Fixed team lookup tables. Loaded once at process start and never
// mutated; callers get ids by lookup, not by reaching into the maps.

// mlbTeams maps full team names to MLB Stats API team ids.
var mlbTeams = map[string]int{
	"Arizona Diamondbacks":  109,
	"Athletics":             133,
	"Atlanta Braves":        144,
	"Baltimore Orioles":     110,
	"Boston Red Sox":        111,
	"Chicago Cubs":          112,
	"Chicago White Sox":     145,
	"Cincinnati Reds":       113,
	"Cleveland Guardians":   114,
	"Colorado Rockies":      115,
	"Detroit Tigers":        116,
	"Houston Astros":        117,
	"Kansas City Royals":    118,
	"Los Angeles Angels":    108,
	"Los Angeles Dodgers":   119,
	"Miami Marlins":         146,
	"Milwaukee Brewers":     158,
	"Minnesota Twins":       142,
	"New York Mets":         121,
	"New York Yankees":      147,
	"Philadelphia Phillies": 143,
	"Pittsburgh Pirates":    134,
	"San Diego Padres":      135,
	"San Francisco Giants":  137,
	"Seattle Mariners":      136,
	"St. Louis Cardinals":   138,
	"Tampa Bay Rays":        139,
	"Texas Rangers":         140,
	"Toronto Blue Jays":     141,
	"Washington Nationals":  120,
}

// nhlTeams maps full team names to NHL API team ids.
var nhlTeams = map[string]int{
	"Boston Bruins":         6,
	"Buffalo Sabres":        7,
	"Carolina Hurricanes":   12,
	"Columbus Blue Jackets": 29,
	"Detroit Red Wings":     17,
	"Montreal Canadiens":    8,
	"New Jersey Devils":     1,
	"New York Islanders":    2,
	"New York Rangers":      3,
	"Ottawa Senators":       9,
	"Philadelphia Flyers":   4,
	"Pittsburgh Penguins":   5,
	"Tampa Bay Lightning":   14,
	"Toronto Maple Leafs":   10,
	"Washington Capitals":   15,
}

// MLBTeamID resolves a full MLB team name to its Stats API id.
func MLBTeamID(name string) (int, bool) {
	id, ok := mlbTeams[name]
	return id, ok
}

// NHLTeamID resolves a full NHL team name to its API id.
func NHLTeamID(name string) (int, bool) {
	id, ok := nhlTeams[name]
	return id, ok
}
