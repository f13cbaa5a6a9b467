package geo

// Built-in location tables. The set covers the major US and international
// tech-hiring markets; metro groupings treat nearby cities as
// location-equivalent for scoring.

var cities = []Location{
	// West Coast
	{Name: "San Francisco", City: "San Francisco", State: "CA", Country: "USA", Coordinates: Coordinates{37.7749, -122.4194}, MetroArea: "San Francisco Bay Area", Aliases: []string{"SF", "San Fran"}, Population: 875000},
	{Name: "Los Angeles", City: "Los Angeles", State: "CA", Country: "USA", Coordinates: Coordinates{34.0522, -118.2437}, MetroArea: "Los Angeles Metro", Aliases: []string{"LA"}, Population: 4000000},
	{Name: "San Diego", City: "San Diego", State: "CA", Country: "USA", Coordinates: Coordinates{32.7157, -117.1611}, MetroArea: "San Diego Metro", Population: 1400000},
	{Name: "Seattle", City: "Seattle", State: "WA", Country: "USA", Coordinates: Coordinates{47.6062, -122.3321}, MetroArea: "Seattle Metro", Population: 750000},
	{Name: "Portland", City: "Portland", State: "OR", Country: "USA", Coordinates: Coordinates{45.5152, -122.6784}, MetroArea: "Portland Metro", Population: 650000},
	{Name: "San Jose", City: "San Jose", State: "CA", Country: "USA", Coordinates: Coordinates{37.3382, -121.8863}, MetroArea: "San Francisco Bay Area", Population: 1000000},
	{Name: "Oakland", City: "Oakland", State: "CA", Country: "USA", Coordinates: Coordinates{37.8044, -122.2712}, MetroArea: "San Francisco Bay Area", Population: 440000},

	// East Coast
	{Name: "New York", City: "New York", State: "NY", Country: "USA", Coordinates: Coordinates{40.7128, -74.0060}, MetroArea: "New York Metro", Aliases: []string{"NYC", "New York City", "Manhattan"}, Population: 8400000},
	{Name: "Boston", City: "Boston", State: "MA", Country: "USA", Coordinates: Coordinates{42.3601, -71.0589}, MetroArea: "Boston Metro", Population: 685000},
	{Name: "Washington", City: "Washington", State: "DC", Country: "USA", Coordinates: Coordinates{38.9072, -77.0369}, MetroArea: "Washington DC Metro", Aliases: []string{"DC", "Washington DC", "Washington D.C."}, Population: 700000},
	{Name: "Philadelphia", City: "Philadelphia", State: "PA", Country: "USA", Coordinates: Coordinates{39.9526, -75.1652}, MetroArea: "Philadelphia Metro", Aliases: []string{"Philly"}, Population: 1600000},
	{Name: "Miami", City: "Miami", State: "FL", Country: "USA", Coordinates: Coordinates{25.7617, -80.1918}, MetroArea: "Miami Metro", Population: 470000},
	{Name: "Atlanta", City: "Atlanta", State: "GA", Country: "USA", Coordinates: Coordinates{33.7490, -84.3880}, MetroArea: "Atlanta Metro", Population: 500000},
	{Name: "Jersey City", City: "Jersey City", State: "NJ", Country: "USA", Coordinates: Coordinates{40.7178, -74.0431}, MetroArea: "New York Metro", Population: 290000},
	{Name: "Newark", City: "Newark", State: "NJ", Country: "USA", Coordinates: Coordinates{40.7357, -74.1724}, MetroArea: "New York Metro", Population: 310000},
	{Name: "Cambridge", City: "Cambridge", State: "MA", Country: "USA", Coordinates: Coordinates{42.3736, -71.1097}, MetroArea: "Boston Metro", Population: 118000},

	// Central
	{Name: "Chicago", City: "Chicago", State: "IL", Country: "USA", Coordinates: Coordinates{41.8781, -87.6298}, MetroArea: "Chicago Metro", Population: 2700000},
	{Name: "Dallas", City: "Dallas", State: "TX", Country: "USA", Coordinates: Coordinates{32.7767, -96.7970}, MetroArea: "Dallas-Fort Worth Metro", Population: 1300000},
	{Name: "Fort Worth", City: "Fort Worth", State: "TX", Country: "USA", Coordinates: Coordinates{32.7555, -97.3308}, MetroArea: "Dallas-Fort Worth Metro", Population: 935000},
	{Name: "Houston", City: "Houston", State: "TX", Country: "USA", Coordinates: Coordinates{29.7604, -95.3698}, MetroArea: "Houston Metro", Population: 2300000},
	{Name: "Austin", City: "Austin", State: "TX", Country: "USA", Coordinates: Coordinates{30.2672, -97.7431}, MetroArea: "Austin Metro", Aliases: []string{"ATX"}, Population: 950000},
	{Name: "Denver", City: "Denver", State: "CO", Country: "USA", Coordinates: Coordinates{39.7392, -104.9903}, MetroArea: "Denver Metro", Population: 715000},
	{Name: "Phoenix", City: "Phoenix", State: "AZ", Country: "USA", Coordinates: Coordinates{33.4484, -112.0740}, MetroArea: "Phoenix Metro", Population: 1700000},
	{Name: "Las Vegas", City: "Las Vegas", State: "NV", Country: "USA", Coordinates: Coordinates{36.1699, -115.1398}, MetroArea: "Las Vegas Metro", Aliases: []string{"Vegas"}, Population: 650000},
	{Name: "Salt Lake City", City: "Salt Lake City", State: "UT", Country: "USA", Coordinates: Coordinates{40.7608, -111.8910}, MetroArea: "Salt Lake City Metro", Aliases: []string{"SLC"}, Population: 200000},
	{Name: "Minneapolis", City: "Minneapolis", State: "MN", Country: "USA", Coordinates: Coordinates{44.9778, -93.2650}, MetroArea: "Minneapolis-St. Paul Metro", Population: 430000},
	{Name: "Kansas City", City: "Kansas City", State: "MO", Country: "USA", Coordinates: Coordinates{39.0997, -94.5786}, MetroArea: "Kansas City Metro", Aliases: []string{"KC"}, Population: 495000},
	{Name: "St. Louis", City: "St. Louis", State: "MO", Country: "USA", Coordinates: Coordinates{38.6270, -90.1994}, MetroArea: "St. Louis Metro", Aliases: []string{"Saint Louis"}, Population: 300000},
	{Name: "Nashville", City: "Nashville", State: "TN", Country: "USA", Coordinates: Coordinates{36.1627, -86.7816}, MetroArea: "Nashville Metro", Population: 695000},
	{Name: "New Orleans", City: "New Orleans", State: "LA", Country: "USA", Coordinates: Coordinates{29.9511, -90.0715}, MetroArea: "New Orleans Metro", Aliases: []string{"NOLA"}, Population: 390000},
	{Name: "San Antonio", City: "San Antonio", State: "TX", Country: "USA", Coordinates: Coordinates{29.4241, -98.4936}, MetroArea: "San Antonio Metro", Population: 1500000},
	{Name: "Oklahoma City", City: "Oklahoma City", State: "OK", Country: "USA", Coordinates: Coordinates{35.4676, -97.5164}, MetroArea: "Oklahoma City Metro", Aliases: []string{"OKC"}, Population: 695000},
	{Name: "Columbus", City: "Columbus", State: "OH", Country: "USA", Coordinates: Coordinates{39.9612, -82.9988}, MetroArea: "Columbus Metro", Population: 900000},
	{Name: "Detroit", City: "Detroit", State: "MI", Country: "USA", Coordinates: Coordinates{42.3314, -83.0458}, MetroArea: "Detroit Metro", Population: 670000},
	{Name: "Indianapolis", City: "Indianapolis", State: "IN", Country: "USA", Coordinates: Coordinates{39.7684, -86.1581}, MetroArea: "Indianapolis Metro", Population: 875000},
	{Name: "Milwaukee", City: "Milwaukee", State: "WI", Country: "USA", Coordinates: Coordinates{43.0389, -87.9065}, MetroArea: "Milwaukee Metro", Population: 590000},
	{Name: "Charlotte", City: "Charlotte", State: "NC", Country: "USA", Coordinates: Coordinates{35.2271, -80.8431}, MetroArea: "Charlotte Metro", Population: 875000},
	{Name: "Raleigh", City: "Raleigh", State: "NC", Country: "USA", Coordinates: Coordinates{35.7796, -78.6382}, MetroArea: "Raleigh-Durham Metro", Population: 470000},
	{Name: "Pittsburgh", City: "Pittsburgh", State: "PA", Country: "USA", Coordinates: Coordinates{40.4406, -79.9959}, MetroArea: "Pittsburgh Metro", Population: 300000},
	{Name: "Baltimore", City: "Baltimore", State: "MD", Country: "USA", Coordinates: Coordinates{39.2904, -76.6122}, MetroArea: "Baltimore Metro", Population: 585000},
	{Name: "Tampa", City: "Tampa", State: "FL", Country: "USA", Coordinates: Coordinates{27.9506, -82.4572}, MetroArea: "Tampa Bay Metro", Population: 385000},
	{Name: "Orlando", City: "Orlando", State: "FL", Country: "USA", Coordinates: Coordinates{28.5383, -81.3792}, MetroArea: "Orlando Metro", Population: 310000},

	// International
	{Name: "Toronto", City: "Toronto", State: "ON", Country: "Canada", Coordinates: Coordinates{43.6532, -79.3832}, MetroArea: "Greater Toronto Area", Population: 2930000},
	{Name: "Vancouver", City: "Vancouver", State: "BC", Country: "Canada", Coordinates: Coordinates{49.2827, -123.1207}, MetroArea: "Metro Vancouver", Population: 675000},
	{Name: "Montreal", City: "Montreal", State: "QC", Country: "Canada", Coordinates: Coordinates{45.5017, -73.5673}, MetroArea: "Montreal Metro", Population: 1780000},
	{Name: "London", City: "London", Country: "United Kingdom", Coordinates: Coordinates{51.5074, -0.1278}, MetroArea: "Greater London", Population: 9000000},
	{Name: "Berlin", City: "Berlin", Country: "Germany", Coordinates: Coordinates{52.5200, 13.4050}, MetroArea: "Berlin Metro", Population: 3700000},
	{Name: "Paris", City: "Paris", Country: "France", Coordinates: Coordinates{48.8566, 2.3522}, MetroArea: "Île-de-France", Population: 2100000},
	{Name: "Amsterdam", City: "Amsterdam", Country: "Netherlands", Coordinates: Coordinates{52.3676, 4.9041}, MetroArea: "Amsterdam Metro", Population: 870000},
	{Name: "Dublin", City: "Dublin", Country: "Ireland", Coordinates: Coordinates{53.3498, -6.2603}, MetroArea: "Dublin Metro", Population: 555000},
	{Name: "Sydney", City: "Sydney", State: "NSW", Country: "Australia", Coordinates: Coordinates{-33.8688, 151.2093}, MetroArea: "Greater Sydney", Population: 5300000},
	{Name: "Melbourne", City: "Melbourne", State: "VIC", Country: "Australia", Coordinates: Coordinates{-37.8136, 144.9631}, MetroArea: "Greater Melbourne", Population: 5000000},
	{Name: "Tel Aviv", City: "Tel Aviv", Country: "Israel", Coordinates: Coordinates{32.0853, 34.7818}, MetroArea: "Tel Aviv Metro", Population: 460000},
	{Name: "Tokyo", City: "Tokyo", Country: "Japan", Coordinates: Coordinates{35.6762, 139.6503}, MetroArea: "Greater Tokyo", Population: 14000000},
	{Name: "Singapore", City: "Singapore", Country: "Singapore", Coordinates: Coordinates{1.3521, 103.8198}, MetroArea: "Singapore", Population: 5900000},
	{Name: "Bangalore", City: "Bangalore", State: "KA", Country: "India", Coordinates: Coordinates{12.9716, 77.5946}, MetroArea: "Bangalore Metro", Aliases: []string{"Bengaluru"}, Population: 8400000},
	{Name: "Mumbai", City: "Mumbai", State: "MH", Country: "India", Coordinates: Coordinates{19.0760, 72.8777}, MetroArea: "Mumbai Metro", Population: 12400000},
	{Name: "Hyderabad", City: "Hyderabad", State: "TG", Country: "India", Coordinates: Coordinates{17.3850, 78.4867}, MetroArea: "Hyderabad Metro", Population: 6900000},
	{Name: "Pune", City: "Pune", State: "MH", Country: "India", Coordinates: Coordinates{18.5204, 73.8567}, MetroArea: "Pune Metro", Population: 3100000},
}

var metroAreas = map[string][]string{
	"San Francisco Bay Area":     {"San Francisco", "San Jose", "Oakland", "Fremont", "Santa Clara", "Sunnyvale", "Berkeley"},
	"Los Angeles Metro":          {"Los Angeles", "Long Beach", "Anaheim", "Santa Ana", "Glendale", "Irvine"},
	"New York Metro":             {"New York", "Newark", "Jersey City", "Yonkers", "Stamford"},
	"Chicago Metro":              {"Chicago", "Aurora", "Naperville", "Evanston", "Schaumburg"},
	"Dallas-Fort Worth Metro":    {"Dallas", "Fort Worth", "Arlington", "Plano", "Irving"},
	"Houston Metro":              {"Houston", "The Woodlands", "Sugar Land", "Pearland"},
	"Washington DC Metro":        {"Washington", "Arlington", "Alexandria", "Bethesda"},
	"Boston Metro":               {"Boston", "Cambridge", "Quincy", "Somerville", "Waltham"},
	"Philadelphia Metro":         {"Philadelphia", "Camden", "Wilmington", "Trenton"},
	"Phoenix Metro":              {"Phoenix", "Mesa", "Chandler", "Scottsdale", "Tempe"},
	"Seattle Metro":              {"Seattle", "Bellevue", "Redmond", "Tacoma"},
	"Minneapolis-St. Paul Metro": {"Minneapolis", "St. Paul", "Bloomington"},
}

// stateAbbreviations maps lowercase full US state names to postal codes
var stateAbbreviations = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
}

var countryAliases = map[string][]string{
	"USA":            {"United States", "US", "America", "United States of America"},
	"Canada":         {"CA", "CAN"},
	"United Kingdom": {"UK", "Britain", "Great Britain", "England"},
	"Germany":        {"DE", "Deutschland"},
	"France":         {"FR"},
	"Netherlands":    {"NL", "Holland"},
	"Ireland":        {"IE", "IRL"},
	"Australia":      {"AU", "AUS"},
	"Israel":         {"IL", "ISR"},
	"India":          {"IN", "IND"},
	"Japan":          {"JP", "JPN"},
	"Singapore":      {"SG", "SGP"},
}
