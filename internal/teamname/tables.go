package teamname

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
)

//go:embed data/team_renames.json
var teamRenamesJSON []byte

// teamRenames is the last chance to rename something. Everything before this
// point has tried its best; these places are just too quirky for rules.
var teamRenames = mustLoadRenames(teamRenamesJSON)

func mustLoadRenames(raw []byte) map[string]string {
	renames := make(map[string]string)
	if err := json.Unmarshal(raw, &renames); err != nil {
		panic(fmt.Sprintf("teamname: parsing team_renames.json: %v", err))
	}
	return renames
}

// abbrevPair is one ordered entry of an expansion table.
type abbrevPair struct {
	abbrev string
	full   string
}

// stateAbbrevOrder lists the state abbreviations in lookup-table order. A few
// states are omitted because they could be ambiguous. WV stays ahead of VA so
// that substring checks see "West Virginia" before "Virginia".
var stateAbbrevOrder = []abbrevPair{
	{"AL", "Alabama"}, {"ALA", "Alabama"}, {"AK", "Alaska"}, {"ALAS", "Alaska"},
	{"AZ", "Arizona"}, {"ARIZ", "Arizona"}, {"AR", "Arkansas"}, {"ARK", "Arkansas"},
	{"BC", "British Columbia"},
	{"CA", "California"}, {"CAL", "California"}, {"CALIF", "California"},
	{"CO", "Colorado"}, {"COLO", "Colorado"},
	{"CT", "Connecticut"}, {"CONN", "Connecticut"},
	{"DC", "District of Columbia"}, {"DE", "Delaware"},
	{"FL", "Florida"}, {"FLA", "Florida"},
	{"GA", "Georgia"},
	{"HI", "Hawaii"}, {"HAW", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"}, {"ILL", "Illinois"},
	{"IN", "Indiana"}, {"IND", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KAN", "Kansas"}, {"KY", "Kentucky"},
	{"MB", "Manitoba"},
	{"ME", "Maine"}, {"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MASS", "Massachusetts"},
	{"MI", "Michigan"}, {"MICH", "Michigan"}, {"MN", "Minnesota"}, {"MINN", "Minnesota"},
	{"MS", "Mississippi"}, {"MISS", "Mississippi"}, {"MO", "Missouri"},
	{"MT", "Montana"}, {"MONT", "Montana"},
	{"NEB", "Nebraska"}, {"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"},
	{"NM", "New Mexico"}, {"NMEX", "New Mexico"}, {"NY", "New York"}, {"NC", "North Carolina"},
	{"ND", "North Dakota"},
	{"ON", "Ontario"},
	{"OH", "Ohio"}, {"OK", "Oklahoma"}, {"OKLA", "Oklahoma"}, {"OR", "Oregon"}, {"ORE", "Oregon"},
	{"PA", "Pennsylvania"}, {"PENN", "Pennsylvania"},
	{"QC", "Quebec"},
	{"RI", "Rhode Island"},
	// USC is ambiguous, but handled by the disambiguator.
	{"SC", "South Carolina"},
	{"SD", "South Dakota"},
	{"SK", "Saskatchewan"},
	{"TN", "Tennessee"}, {"TENN", "Tennessee"}, {"TX", "Texas"}, {"TEX", "Texas"},
	{"WA", "Washington"}, {"WASH", "Washington"},
	{"WV", "West Virginia"}, {"WVA", "West Virginia"}, {"WVU", "West Virginia"},
	{"WESTVIRGINIA", "West Virginia"},
	{"WI", "Wisconsin"}, {"WIS", "Wisconsin"}, {"WISC", "Wisconsin"}, {"WY", "Wyoming"},
	{"VT", "Vermont"}, {"VA", "Virginia"},
}

// otherStateAbbrevOrder holds abbreviations kept out of the main table because
// they collide with something else (AB: Alabama Birmingham, LA: Los Angeles,
// NE: Northeast, UT: University of TN or TX).
var otherStateAbbrevOrder = []abbrevPair{
	{"AB", "Alberta"},
	{"LA", "Louisiana"},
	{"NE", "Nebraska"},
	{"UT", "Utah"},
}

var (
	stateAbbrevs      = make(map[string]string, len(stateAbbrevOrder))
	otherStateAbbrevs = make(map[string]string, len(otherStateAbbrevOrder))
	allStateAbbrevs   = make(map[string]string)

	// allStates is every full state/province name, in table order, deduplicated.
	allStates []string
)

func init() {
	seen := make(map[string]bool)
	for _, pair := range stateAbbrevOrder {
		stateAbbrevs[pair.abbrev] = pair.full
		allStateAbbrevs[pair.abbrev] = pair.full
		if !seen[pair.full] {
			seen[pair.full] = true
			allStates = append(allStates, pair.full)
		}
	}
	for _, pair := range otherStateAbbrevOrder {
		otherStateAbbrevs[pair.abbrev] = pair.full
		allStateAbbrevs[pair.abbrev] = pair.full
		if !seen[pair.full] {
			seen[pair.full] = true
			allStates = append(allStates, pair.full)
		}
	}
	for _, state := range allStates {
		stateStPatterns[state] = regexp.MustCompile(regexp.QuoteMeta(state) + ` St(\.|\b)`)
	}
}

// spacedAbbrevs are the states whose expansion contains a space, which makes
// "N. C." style abbreviations safe to join.
var spacedAbbrevs = map[string]bool{
	"BC": true, "DC": true, "NH": true, "NJ": true, "NM": true, "NY": true,
	"NC": true, "ND": true, "SC": true, "SD": true, "WV": true,
}

// expansion is one ordered whole-word substitution; the pattern is applied as
// `\b<abbrev>(\.|\b)\s*` and replaced by the expansion plus a space.
type expansion struct {
	pattern *regexp.Regexp
	replace string
}

func expandEntry(abbrev, full string) expansion {
	return expansion{
		pattern: regexp.MustCompile(`\b` + abbrev + `(\.|\b)\s*`),
		replace: full + " ",
	}
}

// wordExpansions expands the longer abbreviations. Order is load-bearing:
// U.S before U and S, SE/SW/NW before E/W/N/S, Cent before C's cleanup of
// stray punctuation, and the final Tech entry only eliminates punctuation.
var wordExpansions = []expansion{
	expandEntry(`U\.S`, "US"),
	expandEntry("SE", "Southeast"), expandEntry("SW", "Southwest"), expandEntry("NW", "Northwest"),
	expandEntry("So", "Southern"), expandEntry("No", "Northern"),
	expandEntry("Ft", "Fort"), expandEntry("Atl", "Atlantic"),
	expandEntry("E", "East"), expandEntry("W", "West"),
	expandEntry("N", "North"), expandEntry("S", "South"),
	expandEntry("C", "Central"), expandEntry("Cen", "Central"), expandEntry("Cent", "Central"),
	expandEntry("Mt", "Mount"), expandEntry("Isl", "Island"), expandEntry("Pt", "Point"),
	expandEntry("TAMU", "Texas A&M"),
	expandEntry("Int'l", "International"), expandEntry("Inter'l", "International"),
	expandEntry("Hawai'i", "Hawaii"),
	expandEntry(`Cal(\.|ifornia)? St(\.|\b|ate)`, "California State"),
	expandEntry(`^CSU *`, "California State "),
	expandEntry("LSU", "Louisiana State"),
	expandEntry("Sch", "School"),
	expandEntry("U", "University"), expandEntry("Univ", "University"),
	expandEntry("Col", "College"), expandEntry("Coll", "College"),
	expandEntry("Pitt", "Pittsburgh"), expandEntry("Poly", "Polytechnic"), expandEntry("Caro", "Carolina"),
	expandEntry("Wm", "William"), expandEntry("Bros", "Brothers"),
	expandEntry("JWU", "Johnson and Wales"), expandEntry("BYU", "Brigham Young"),
	expandEntry("Jeff", "Jefferson"),
	expandEntry("Mtl", "Montreal"),
	expandEntry("Tech", "Tech"),
}

// version is one entry of the alias table: a name that has appeared under
// several spellings, consolidated when the whole value matches.
type version struct {
	pattern   *regexp.Regexp
	canonical string
}

func versionEntry(pattern, canonical string) version {
	return version{regexp.MustCompile(`^(?:` + pattern + `)$`), canonical}
}

// versions consolidates universities with several names. Checked after the
// abbreviation expansions, against the full value.
var versions = []version{
	versionEntry(`Alcorn( A&M)?( State)?( Mississippi)?`, "Alcorn"),
	versionEntry(`App(alachian)? State( North Carolina)?`, "Appalachian"),
	versionEntry(`Armstrong( Atlantic)?( State)?`, "Armstrong"),
	versionEntry(`Augsburg( College)?( Minnesota)?`, "Augsburg"),
	versionEntry(`Augusta( State)?( Georgia)?`, "Augusta"),
	versionEntry(`California St(\.|ate)?,? L\.?A\.?`, "California State Los Angeles"),
	versionEntry(`California State San B(ern\.|'dino)?`, "California State San Bernardino"),
	versionEntry(`U?C(al(ifornia)?)? ?S(anta)? ?B(arbara)?`, "California Santa Barbara"),
	versionEntry(`Carroll (College|Montana)( Montana)?`, "Carroll Montana"),
	versionEntry(`Claremont M(udd)?( S(outh|cripps)?)?( California)?`, "Claremont Mudd Scripps"),
	versionEntry(`Clarion( State)?( Pennsylvania)?`, "Clarion"),
	versionEntry(`College of Charleston( South Carolina)?`, "Charleston South Carolina"),
	versionEntry(`East(ern)? Connecticut( State)?`, "Eastern Connecticut"),
	versionEntry(`East Central( State)?( Oklahoma)?`, "East Central Oklahoma"),
	versionEntry(`Edinboro( State)?( Pennsylvania)?`, "Edinboro"),
	versionEntry(`Elizabeth City( State)?( North Carolina)?`, "Elizabeth City"),
	versionEntry(`Evergreen( State)?( Washington)?`, "Evergreen Washington"),
	versionEntry(`FDU ?(Florham|Madison)`, "Fairleigh Dickinson"),
	versionEntry(`Ferris Institute( Michigan)?`, "Ferris State"),
	versionEntry(`Frank(\.|lin)? (&|and) Marsh(\.|all)?`, "Franklin and Marshall"),
	versionEntry(`Grambling State( Louisiana)?`, "Grambling"),
	versionEntry(`Hampton( Institute)?( Virginia)?`, "Hampton"),
	versionEntry(`Hastings( College)?( Nebraska)?`, "Hastings"),
	versionEntry(`U? ?I(llinois)? ?C(hicago)?`, "Illinois Chicago"),
	versionEntry(`I(ndiana)?U(niversity)? East( Indiana)?`, "Indiana East"),
	versionEntry(`Indiana University East`, "Indiana East"),
	versionEntry(`IU Southeast( Indiana)?`, "Indiana Southeast"),
	versionEntry(`Jordan( College)?( Michigan)?`, "Jordan"),
	versionEntry(`Liberty( Baptist)?( Virginia)?`, "Liberty"),
	versionEntry(`L(ong )?I(sland )?U?[- ]? ?Post( \(?N(ew )?Y(ork)?\)?)?`, "Long Island Post"),
	versionEntry(`C(\.|entral)? ?W(\.|est)? ?Post( \(?N(ew )?Y(ork)?\)?)?`, "Long Island Post"),
	versionEntry(`Long Island Central West Post`, "Long Island Post"),
	versionEntry(`L(ong)? ?I(sland)? ?(U(niversity)?)?( Brooklyn)?`, "Long Island"),
	versionEntry(`U?LA? Lafayette`, "Louisiana Lafayette"),
	versionEntry(`Loyola( University)? \(?(Chicago|Illinois)\)?`, "Loyola Chicago"),
	versionEntry(`Loyola \(?(Los Angeles|California)\)?`, "Loyola Marymount"),
	versionEntry(`Mansfield( State)?( Pennsylvania)?`, "Mansfield"),
	versionEntry(`Maryland E(\.|ast(ern)?)? Shore`, "Maryland Eastern Shore"),
	versionEntry(`Memphis( State)?( Tennessee)?`, "Memphis"),
	versionEntry(`Midland( Lutheran)?( Nebraska)?`, "Midland"),
	versionEntry(`Midwestern( State)?( Texas)?`, "Midwestern State Texas"),
	versionEntry(`Miles( College)?( Alabama)?`, "Miles"),
	versionEntry(`Millersville( State)?( Pennsylvania)?`, "Millersville"),
	versionEntry(`Morris Harvey( West Virginia)?`, "Charleston West Virginia"),
	versionEntry(`New Haven( State)?( Connecticut)?`, "New Haven"),
	versionEntry(`New Mexico A&M( State)?`, "New Mexico State"),
	versionEntry(`Northwest(ern)? Oklahoma( State)?`, "Northwestern Oklahoma"),
	versionEntry(`Orange State( California)?`, "California State Fullerton"),
	versionEntry(`.*Pan American.*`, "Texas Rio Grande Valley"),
	versionEntry(`Panhandle( A&M)?( Oklahoma)?( State)?`, "Panhandle Oklahoma"),
	versionEntry(`George Pepperdine( California)?`, "Pepperdine"),
	versionEntry(`Peru State( College)?( Nebraska)?`, "Peru State"),
	versionEntry(`Philadelphia Pharmacy( Pennsylvania)?`, "Saint Joseph's Pennsylvania"),
	versionEntry(`U(niversity of the )?Sciences`, "Saint Joseph's Pennsylvania"),
	versionEntry(`Point Loma( Nazarene)?( California)?`, "Point Loma Nazarene California"),
	versionEntry(`Prairie View( A&M)?( Texas)?`, "Prairie View"),
	versionEntry(`SAGU( Texas)?`, "Southwestern Assemblies of God"),
	versionEntry(`Saginaw Valley( State)?( Michigan)?`, "Saginaw Valley"),
	versionEntry(`Saint Joseph's \(?L\.?I\.?\)?`, "Saint Joseph's Long Island"),
	versionEntry(`Saint Catharine( College)?( Kentucky)?`, "Saint Catharine Kentucky"),
	versionEntry(`Saint Gregory's( University)?( Oklahoma)?`, "Saint Gregory's Oklahoma"),
	versionEntry(`Slippery Rock( State)?( Pennsylvania)?`, "Slippery Rock"),
	versionEntry(`Southeast(ern)?( State)? Oklahoma( State)?`, "Southeastern Oklahoma"),
	versionEntry(`South(ern)? California College`, "Vanguard"),
	versionEntry(`Southern Colorado( State)?`, "Colorado State Pueblo"),
	versionEntry(`South(ern)? Connecticut( State)?`, "Southern Connecticut"),
	versionEntry(`S(outhern )?N(ew )?H(ampshire)?( U(niversity)?)?`, "Southern New Hampshire"),
	versionEntry(`Southern (Poly|Tech)(\.|technic)?( State)?( Georgia)?`, "Southern Polytechnic"),
	versionEntry(`S(outh)?[Ww](est(ern)?)? Oklahoma( State)?( University)?`, "Southwestern Oklahoma"),
	versionEntry(`S(tephen )?F\.? ?A(ustin)?( State)?( Texas)?`, "Stephen F Austin"),
	versionEntry(`(Richard )?Stockton ?(College|University)?`, "Stockton"),
	versionEntry(`Texas A&M CC`, "Texas A&M Corpus Christi"),
	versionEntry(`(A&M )?Corpus Christi( Texas)?`, "Texas A&M Corpus Christi"),
	versionEntry(`UT ?R(io)? ?G(rande)? ?(V(alley)?)?`, "Texas Rio Grande Valley"),
	versionEntry(`Philadelphia ((Textile)|(U(\.|niv(\.|ersity)?)?)|(College))`, "Thomas Jefferson"),
	versionEntry(`Troy( State)?( Alabama)?`, "Troy"),
	versionEntry(`U\.?S\.? International( California)?`, "United States International"),
	versionEntry(`Villa Madonna( Kentucky)?`, "Thomas More"),
	versionEntry(`Wayne( St.)? Michigan`, "Wayne State Michigan"),
	versionEntry(`Wash(ington )?U(\.|niv(ersity)?)?`, "Washington Saint Louis"),
	versionEntry(`Wayland( Baptist)?( University)?`, "Wayland Baptist"),
	versionEntry(`Webber( International)?( Florida)?`, "Webber"),
	versionEntry(`West(\.|ern)? Connecticut( State)?`, "Western Connecticut"),
	versionEntry(`William Pennsylvania( Iowa)?`, "William Penn Iowa"),
	versionEntry(`Winston Salem( State)?( North Carolina)?`, "Winston Salem"),
	versionEntry(`Xavier( University of)? L[Aa]`, "Xavier Louisiana"),
}

// stateUniversityEntry ties a state-university system to satellite-campus
// cities that identify it on their own.
type stateUniversityEntry struct {
	system string
	cities []string
}

// stateUniversities does not contain every system campus, just the necessary
// ones; each city must not occur in any other team name.
var stateUniversities = []stateUniversityEntry{
	{"California State", []string{"Bakersfield", "Chico", "Dominguez Hills", "East Bay", "Fullerton",
		"Northridge", "Sacramento", "San Bernardino", "Stanislaus"}},
	{"California", []string{"Davis", "Riverside", "Santa Clara", "Santa Cruz"}},
	{"Colorado", []string{"Colorado Springs"}},
	{"Colorado State", []string{"Pueblo"}},
	{"Indiana", []string{"Kokomo", "South Bend"}},
	{"Southern Illinois", []string{"Edwardsville"}},
	{"Louisiana", []string{"Monroe"}},
	{"Louisiana State", []string{"Alexandria", "Shreveport"}},
	{"Minnesota State", []string{"Mankato", "Moorhead"}},
	{"North Carolina", []string{"Charlotte", "Greensboro", "Pembroke"}},
	{"Pennsylvania State", []string{"Abington", "Altoona", "Behrend", "Berks", "Harrisburg"}},
	{"SUNY", []string{"Binghamton", "Brockport", "Cortland", "Farmingdale", "Fredonia", "Geneseo",
		"Maritime", "Morrisville", "Niagara", "Old Westbury", "Oneonta", "Oswego", "Plattsburgh",
		"Potsdam", "Purchase"}},
	{"Texas", []string{"Arlington", "Tyler"}},
	{"Wisconsin", []string{"Eau Claire", "Green Bay", "La Crosse", "Milwaukee", "Oshkosh", "Parkside",
		"Platteville", "River Falls", "Stevens Point", "Stout", "Whitewater"}},
}

// universityOf expands names that show up as U<something>.
var universityOf = map[string]string{
	"Albany":        "Albany",
	"AB":            "Alabama Birmingham",
	"ALR":           "Arkansas Little Rock",
	"AFS":           "Arkansas Fort Smith",
	"CCS":           "Colorado Colorado Springs",
	"CF":            "Central Florida",
	"CLA":           "California Los Angeles",
	"CSD":           "California San Diego",
	"C San Diego":   "California San Diego",
	"Indy":          "Indianapolis",
	"IS":            "Illinois Springfield",
	"M Eastern Shore": "Maryland Eastern Shore",
	"MES":           "Maryland Eastern Shore",
	"M Saint Louis": "Missouri Saint Louis",
	"M St. Louis":   "Missouri Saint Louis",
	"MBC":           "Maryland Baltimore County",
	"MKC":           "Missouri Kansas City",
	"MSL":           "Missouri Saint Louis",
	"NCG":           "North Carolina Greensboro",
	"NCW":           "North Carolina Wilmington",
	"NI":            "Northern Iowa",
	"NLV":           "Nevada Las Vegas",
	"SAO":           "Science and Arts Oklahoma",
	"SCA":           "South Carolina Aiken",
	"SCUS":          "South Carolina Upstate",
	"SCHO":          "US College Hockey Online",
	"SF":            "South Florida",
	"T Arlington":   "Texas Arlington",
	"T Chattanooga": "Tennessee Chattanooga",
	"T Dallas":      "Texas Dallas",
	"TEP":           "Texas El Paso",
	"T Martin":      "Tennessee Martin",
	"TPA":           "Texas Rio Grande Valley",
	"TSA":           "Texas San Antonio",
	"T Tyler":       "Texas Tyler",
}

// citiesInState maps a state to cities that pin a team to it. Used only when
// a city shows up with multiple universities and only one state.
var citiesInState = map[string][]string{
	"AB": {"Calgary", "Edmonton"},
	"AL": {"Auburn"},
	"AZ": {"Mesa", "Phoenix"},
	"BC": {"Vancouver"},
	"CA": {"Anaheim", "Fresno", "Golden State", "Los Angeles", "Sacramento", "San Diego",
		"San Francisco", "San Jose"},
	"CO": {"Denver"},
	"GA": {"Atlanta"},
	"FL": {"Orlando", "Tampa Bay"},
	"IL": {"Chicago"},
	"IN": {"Fort Wayne", "Purdue"},
	"LA": {"New Orleans"},
	"MB": {"Winnipeg"},
	"MA": {"Boston", "Worcester"},
	"MD": {"Baltimore"},
	"MI": {"Detroit"},
	"MN": {"Minneapolis", "Saint Paul"},
	"MO": {"Saint Louis"},
	"NC": {"Charlotte"},
	"NJ": {"Rutgers"},
	"NV": {"Vegas"},
	"NY": {"Brooklyn", "Buffalo", "Long Island", "Manhattan", "SUNY"},
	"ON": {"Ottawa", "Toronto"},
	"OH": {"Cincinnati"},
	"PA": {"Philadelphia", "Pittsburgh"},
	"QC": {"Montreal"},
	"SK": {"Regina"},
	"TN": {"Nashville"},
	"TX": {"Austin", "Dallas", "Houston", "San Antonio"},
	"VA": {"Randolph"},
	"WA": {"Seattle"},
	"WI": {"Green Bay", "Milwaukee"},
}

// universitiesInState lists, per state, the universities whose names don't
// otherwise reveal their state. See also citiesInState.
var universitiesInState = map[string][]string{
	"AK": {},
	"AL": {"Athens State", "Birmingham Southern", "Christian Heritage", "Faulkner", "Florence State",
		"Huntingdon", "Jacksonville State", "Miles", "Mobile", "Montevallo", "Samford", "Spring Hill",
		"Stillman", "Talladega", "Troy", "Tuskegee"},
	"AR": {"Central Baptist", "Harding", "Henderson State", "Hendrix", "John Brown", "Little Rock",
		"Lyon", "Ouachita Baptist", "Philander Smith"},
	"AZ": {"Grand Canyon"},
	"BC": {"Simon Fraser"},
	"CA": {"Academy of Art", "Antelope Valley", "Azusa Pacific", "Biola", "Chapman",
		"Claremont Mudd Scripps", "Concordia Irvine", "Frederick Taylor", "Holy Names",
		"Hope International", "Humboldt State", "La Verne", "Long Beach State", "Loyola Marymount",
		"Menlo", "Notre Dame de Namur", "Occidental", "Pacific Union", "Pasadena", "Pepperdine",
		"Point Loma", "Pomona Pitzer", "Redlands", "Saint Katherine", "San Jose State",
		"Santa Barbara", "Sonoma State", "Stanford", "The Master's", "Vanguard",
		"United States International", "Westmont", "Whittier", "William Jessup"},
	"CO": {"Adams State", "Air Force", "Fort Lewis"},
	"CT": {"Albertus Magnus", "Bridgeport", "Coast Guard", "Fairfield", "Hartford", "Mitchell",
		"New Haven", "Quinnipiac", "Yale"},
	"DE": {"Goldey Beacom", "Wesley"},
	"DC": {"American University", "Catholic", "Federal City", "Gallaudet", "Howard"},
	"FL": {"Ave Maria", "Barry", "Bethune Cookman", "Eckerd", "Edward Waters", "Embry Riddle",
		"Flagler", "Keiser", "Lynn", "Nova Southeastern", "Palm Beach Atlantic", "Rollins",
		"Saint Leo", "Stetson", "Tampa", "Webber"},
	"GA": {"Albany State", "Armstrong", "Augusta", "Berry", "Brewton Parker", "Clayton State",
		"Covenant", "Dalton State", "Emory", "Fort Valley State", "Kennesaw State", "LaGrange",
		"Life", "Mercer", "Morehouse", "Oglethorpe", "Paine", "Piedmont", "Reinhardt",
		"Savannah State", "SCAD", "Shorter", "Southern Polytechnic", "Valdosta State", "Young Harris"},
	"HI": {"Chaminade"},
	"ID": {"Albertson", "Boise State", "Lewis Clark State", "Northwest Nazarene"},
	"IL": {"Aurora", "Barat", "Blackburn", "Bradley", "DePaul", "Elmhurst", "Eureka",
		"Governors State", "Greenville", "Knox", "Lake Forest", "Lewis", "Lindenwood Belleville",
		"MacMurray", "McKendree", "Millikin", "North Park", "Olivet Nazarene", "Quincy", "Rockford",
		"Roosevelt", "Saint Xavier", "Trinity International"},
	"IN": {"Ball State", "Butler", "Calumet", "Canterbury", "DePauw", "Earlham", "Evansville",
		"Hanover", "Manchester", "Rose Hulman", "Taylor", "Trine", "Valparaiso", "Wabash"},
	"IA": {"Ashford", "Briar Cliff", "Buena Vista", "Clarke", "Coe", "Dordt", "Drake", "Dubuque",
		"Graceland", "Grand View", "Grinnell", "Loras", "Luther", "Marycrest", "Morningside",
		"Mount Mercy", "Mount Saint Clare", "Saint Ambrose", "Wartburg", "Westmar"},
	"KS": {"Baker", "Emporia State", "Fort Hays State", "Friends", "McPherson", "MidAmerica Nazarene",
		"Newman", "Pittsburg State", "Saint Mary", "Sterling", "Tabor", "Washburn", "Wichita State"},
	"KY": {"Alice Lloyd", "Bellarmine", "Berea", "Brescia", "Campbellsville", "Centre",
		"Lindsey Wilson", "Louisville", "Morehead State", "Murray State", "Pikeville", "Spalding",
		"Thomas More", "Transylvania"},
	"LA": {"Dillard", "Grambling", "McNeese", "Northwestern State", "Nicholls State", "Southern",
		"Southern Baton Rouge", "Tulane"},
	"ME": {"Bates", "Bowdoin", "Colby", "Husson", "New England University", "Westbrook"},
	"MD": {"Baltimore", "Bowie State", "Coppin State", "Frostburg State", "Goucher", "Hood",
		"Johns Hopkins", "McDaniel", "Morgan State", "Navy", "Salisbury", "Stevenson",
		"Towson State", "Washington Adventist"},
	"MA": {"American International", "Amherst", "Anna Maria", "Assumption", "Babson", "Becker",
		"Bentley", "Brandeis", "Curry", "Eastern Nazarene", "Elms", "Emerson", "Endicott", "Fisher",
		"Fitchburg State", "Framingham State", "Harvard", "Lasell", "Lesley", "Lowell", "Merrimack",
		"Mount Ida", "Nichols", "North Adams State", "Pine Manor", "Salem State", "Stonehill",
		"Suffolk", "Tufts", "Wellesley", "Wentworth", "Western New England", "Westfield State"},
	"MI": {"Adrian", "Albion", "Alma", "Aquinas", "Calvin", "Cornerstone", "Davenport",
		"Ferris State", "Finlandia", "Grand Valley State", "Hillsdale", "Jordan", "Kalamazoo",
		"Lake Superior State", "Lawrence Tech", "Madonna", "Saginaw Valley", "Siena Heights",
		"Spring Arbor"},
	"MN": {"Augsburg", "Bemidji State", "Bethany Lutheran", "Carleton", "Crown", "Gustavus Adolphus",
		"Hamline", "Macalester", "Martin Luther", "Saint Catherine", "Saint Cloud State",
		"Saint Olaf", "Saint Scholastica", "Winona State"},
	"MS": {"Alcorn", "Belhaven", "Delta State", "Jackson State", "Millsaps", "Rust", "Tougaloo",
		"William Carey"},
	"MO": {"Avila", "Central Methodist", "College of the Ozarks", "Culver Stockton", "Drury",
		"Evangel", "Fontbonne", "Hannibal LaGrange", "Harris Stowe State", "Kansas City",
		"Rockhurst", "Southwest Baptist", "Tarkio", "Truman State", "Washington Saint Louis",
		"Webster", "William Jewell", "William Woods"},
	"MT": {"Great Falls"},
	"NE": {"Bellevue", "Chadron State", "Creighton", "Doane", "Hastings", "Kearney State", "Midland",
		"Omaha", "Peru State"},
	"NV": {},
	"NH": {"Colby Sawyer", "Daniel Webster", "Dartmouth", "Franklin Pierce", "Keene State",
		"New England College", "Plymouth State", "Rivier", "Saint Anselm"},
	"NJ": {"Bloomfield", "Caldwell", "Drew", "Fairleigh Dickinson", "Felician", "Jersey City State",
		"Kean", "Montclair State", "Princeton", "Ramapo", "Rider", "Rowan", "Saint Peter's",
		"Seton Hall", "Stevens Tech", "Stockton", "Trenton State", "Upsala", "William Paterson"},
	"NM": {"Albuquerque", "Santa Fe"},
	"NY": {"Adelphi", "Army", "Baruch", "Canisius", "Cazenovia", "City Tech", "Clarkson", "Colgate",
		"Daemen", "Dowling", "Elmira", "Fordham", "Hamilton", "Hartwick", "Hobart", "Hofstra",
		"Hunter", "Iona", "Ithaca", "John Jay", "Le Moyne", "Lehman", "Marist", "Medaille",
		"Medgar Evers", "Merchant Marine", "Mercy", "Molloy", "Mount Saint Mary",
		"Mount Saint Vincent", "Nazareth", "New Rochelle", "Pace", "Pratt Institute", "Rensselaer",
		"Roberts Wesleyan", "Rochester Institute Tech", "Russell Sage", "Saint Bonaventure",
		"Saint John Fisher", "Saint Lawrence", "Saint Rose", "Siena", "Skidmore", "Southampton",
		"Staten Island", "Stony Brook", "Syracuse", "Utica", "Vassar", "Wagner", "Wells", "Yeshiva"},
	"NC": {"Appalachian", "Asheville Biltmore", "Atlantic Christian", "Barber Scotia", "Barton",
		"Belmont Abbey", "Brevard", "Campbell", "Catawba", "Chowan", "Davidson", "Duke",
		"East Carolina", "Elizabeth City", "Elon", "Fayetteville State", "Gardner Webb", "Guilford",
		"High Point", "Johnson Central Smith", "Lenoir Rhyne", "Lees McRae", "Livingstone",
		"Mars Hill", "Meredith", "Methodist", "Montreat", "Mount Olive", "Pfeiffer", "Saint Andrews",
		"Saint Augustine's", "Shaw", "Wake Forest", "Western Carolina", "William Peace", "Wingate",
		"Winston Salem"},
	"ND": {"Dickinson State", "Jamestown", "Mary", "Mayville State", "Minot State", "Valley City State"},
	"OH": {"Alfred Holbrook", "Akron", "Ashland", "Baldwin Wallace", "Bowling Green", "Capital",
		"Case Western", "Cedarville", "Cleveland", "Dayton", "Defiance", "Denison", "Findlay",
		"Heidelberg", "Hiram", "John Carroll", "Kent State", "Kenyon", "Lake Erie", "Lourdes",
		"Malone", "Marietta", "Mount Saint Joseph", "Mount Union", "Mount Vernon Nazarene",
		"Muskingum", "Oberlin", "Otterbein", "Shawnee State", "Steubenville", "Tiffin", "Toledo",
		"Urbana", "Ursuline", "Walsh", "Wilberforce", "Wittenberg", "Wooster", "Wright State",
		"Youngstown"},
	"OK": {"Bacone", "Cameron", "Langston", "Mid America Christian", "Oral Roberts",
		"Panhandle State", "Phillips", "Rogers State", "Southern Nazarene", "Tulsa"},
	"OR": {"Bushnell", "Cascade", "Corban", "George Fox", "Lewis and Clark", "Linfield", "Portland",
		"Portland State", "Warner Pacific", "Willamette"},
	"PA": {"Albright", "Allegheny", "Alvernia", "Arcadia", "Bloomsburg", "Bucknell", "Cabrini",
		"Cairn", "Carnegie Mellon", "Chatham", "Chestnut Hill", "Cheyney", "Clarion",
		"Clarks Summit", "DeSales", "Dickinson", "Drexel", "Duquesne", "East Stroudsburg",
		"Edinboro", "Elizabethtown", "Franklin and Marshall", "Gannon", "Geneva", "Gettysburg",
		"Grove City", "Gwynedd Mercy", "Haverford", "Immaculata", "Indiana Pennsylvania",
		"Jefferson", "Juniata", "Keystone", "Kutztown", "La Roche", "La Salle", "Lancaster Bible",
		"Lebanon Valley", "Lehigh", "Lock Haven", "Lycoming", "Mansfield", "Mercyhurst", "Messiah",
		"Millersville", "Misericordia", "Moravian", "Mount Aloysius", "Muhlenberg", "Neumann",
		"PennWest California", "Point Park", "Rosemont", "Saint Vincent", "Scranton", "Seton Hill",
		"Shippensburg", "Slippery Rock", "Spring Garden", "Susquehanna", "Swarthmore", "Temple",
		"Thiel", "Thomas Jefferson", "Ursinus", "Villanova", "Washington and Jefferson",
		"Waynesburg", "West Chester", "Widener", "Wilkes"},
	"RI": {"Brown", "Bryant", "Johnson & Wales", "Roger Williams", "Salve Regina"},
	"SC": {"Charleston Southern", "Claflin", "Clemson", "Coastal Carolina", "Erskine",
		"Francis Marion", "Furman", "Lander", "Limestone", "Morris", "Newberry", "North Greenville",
		"Presbyterian", "Southern Wesleyan", "The Citadel", "Voorhees", "Winthrop", "Wofford"},
	"SD": {"Black Hills State", "Dakota State", "Dakota Wesleyan", "Huron", "Mount Marty",
		"Northern State", "Presentation", "Sioux Falls", "Yankton"},
	"TN": {"Carson Newman", "Chattanooga", "Christian Brothers", "Crichton", "David Lipscomb",
		"Fisk", "Freed Hardeman", "Knoxville", "Lambuth", "Lane", "Lee", "LeMoyne Owen",
		"Lincoln Memorial", "Lipscomb", "Memphis", "Milligan", "Rhodes", "Sewanee",
		"Trevecca Nazarene", "Tusculum", "Vanderbilt"},
	"TX": {"Abilene Christian", "Angelo State", "Baylor", "Hardin Simmons", "Howard Payne",
		"Huston Tillotson", "Incarnate Word", "Jarvis Christian", "Lamar", "LeTourneau",
		"Lubbock Christian", "Mary Hardin Baylor", "McMurry", "Our Lady of the Lake", "Paul Quinn",
		"Prairie View", "Rice", "Saint Edward's", "Schreiner", "Southern Methodist",
		"Southwestern Assemblies of God", "Sul Ross State", "Tarleton", "Wayland Baptist", "Wiley"},
	"UT": {"Brigham Young", "Dixie State", "Weber State"},
	"VT": {"Castleton", "Green Mountain", "Lyndon State", "Middlebury", "Norwich", "Saint Michael's"},
	"VA": {"Averett", "Bluefield", "Christopher Newport", "Eastern Mennonite", "Emory and Henry",
		"Ferrum", "George Mason", "Hampden Sydney", "Hampton", "James Madison", "Liberty",
		"Longwood", "Lynchburg", "Mary Washington", "Norfolk State", "Old Dominion", "Radford",
		"Richmond", "Roanoke", "Shenandoah", "Washington and Lee", "William and Mary"},
	"WA": {"Evergreen", "Gonzaga", "Pacific Lutheran", "Puget Sound", "Saint Martin's", "Whitman",
		"Whitworth"},
	"WV": {"Alderson Broaddus", "Concord", "Fairmont State", "Glenville State", "Marshall",
		"Mountain State", "Shepherd", "West Liberty", "Wheeling Jesuit"},
	"WI": {"Beloit", "Cardinal Stritch", "Carthage", "Edgewood", "Lakeland", "Lawrence", "Marquette",
		"Milwaukee School of Engineering", "Mount Senario", "Northland", "Ripon", "Saint Norbert",
		"Viterbo"},
	"WY": {},
}

// conferences is not exhaustive; it covers the appearances in trailing-suffix
// stripping and in disambiguation phrases.
var conferences = []string{
	"A East", "Atlantic 10", "Atlantic Coast Conference", "America East", "Atlantic Hockey",
	"Atlantic Sun", "Big East", "Big Sky", "Big South", "Big Ten", "BSC", "C USA", "CAA",
	"Colonial Athletic Association", "Commonwealth Coast Conference", "ECAC", "ECAC Hockey",
	"Hockey East", "Horizon League", "Ivy", "MAAC", "MEAC", "Metro Atlantic Athletic Conference",
	"Mid Cont", "Mid-American Conference", "Midwestern Collegiate Conference",
	"Missouri Valley Conference", "MVC", "NAC", "NCHC", "NEC", "New England Hockey Conference",
	"Northeast", "Northeast Conference", "OVC", "Ohio Valley Conference", "Patriot",
	"Patriot League", "SLC", "SoCon", "Southern", "Southland", "Summit League", "SWAC", "TAAC",
	"West Coast Conference",
}

var conferenceSet = func() map[string]bool {
	set := make(map[string]bool, len(conferences))
	for _, conference := range conferences {
		set[conference] = true
	}
	return set
}()

// saints covers occurrences of "St. (saint)"; not intended to be exhaustive.
var saints = []string{"Louis", "Paul", "Thomas"}

// canDrop says whether the literal word at the end of a name can be dropped.
var canDrop = map[string]map[string]bool{
	"College": setOf("Augusta", "Brooklyn", "Centre", "Culver Stockton", "Federal City", "Hartwick",
		"Hunter", "Ithaca", "Limestone", "Madison", "Maryville", "Middlebury", "Philander Smith",
		"Saint Norbert", "Smith", "Thomas Jefferson", "Trinity", "Wiley"),
	"State": setOf("Bloomsburg", "Bluefield", "Castleton", "Central Connecticut", "Central Missouri",
		"Central Washington", "Cheyney", "East Stroudsburg", "East Tennessee", "Eastern Illinois",
		"Eastern Oregon", "Eastern Washington", "Georgia Southwestern", "Lock Haven", "McNeese",
		"Middle Tennessee", "Missouri Southern", "Missouri Western", "North Carolina A&T",
		"North Texas", "Salisbury", "Sam Houston", "Southeastern", "Southern Connecticut",
		"Southern Oregon", "Southern Utah", "Stockton", "Tarleton", "West Chester", "West Liberty",
		"Western Illinois", "Western Kentucky", "Western Oregon", "Western Washington", "Youngstown"),
	"University": setOf("Arizona Christian", "Belhaven", "Catholic", "Chicago State", "Evangel",
		"Freed Hardeman", "Georgia State", "Lamar", "Life", "Oklahoma City", "Samford",
		"Southwestern Assemblies of God", "Thomas Jefferson"),
}

func setOf(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
