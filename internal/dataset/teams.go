// Package dataset ships the 2026 tournament data: the 48 drawn teams, the
// 12-group draw, the Round-of-32 bracket template with its feed topology,
// and the historical head-to-head table.
package dataset

import "github.com/mondialsim/mondial/internal/domain/team"

// Teams returns a fresh registry snapshot of the 48 drawn teams. Ratings are
// Poisson-model multipliers (baseline 1.0); form is the last-10-result
// average. Callers own the returned copy.
func Teams() map[string]*team.Team {
	return team.CloneAll(teams48)
}

var teams48 = map[string]*team.Team{
	"MEX": {
		Code: "MEX", Name: "Mexico",
		Confederation: "CONCACAF", FIFARanking: 14,
		Attack: 1.55, Defense: 1.50, Midfield: 1.50, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"S. Giménez", "H. Lozano", "R. Jiménez"},
			team.Midfielder: {"E. Álvarez", "L. Romo", "O. Pineda"},
			team.Defender:   {"J. Vásquez", "C. Montes", "J. Sánchez"},
			team.Goalkeeper: {"G. Ochoa"},
		},
	},
	"KOR": {
		Code: "KOR", Name: "South Korea",
		Confederation: "AFC", FIFARanking: 24,
		Attack: 1.40, Defense: 1.45, Midfield: 1.45, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"Son Heung-min", "Hwang Hee-chan", "Oh Hyeon-gyu"},
			team.Midfielder: {"Lee Kang-in", "Hwang In-beom", "Jeong Woo-yeong"},
			team.Defender:   {"Kim Min-jae", "Kim Jin-su"},
			team.Goalkeeper: {"Kim Seung-gyu"},
		},
	},
	"RSA": {
		Code: "RSA", Name: "South Africa",
		Confederation: "CAF", FIFARanking: 43,
		Attack: 1.15, Defense: 1.15, Midfield: 1.10, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"P. Tau", "L. Mokoena"},
			team.Midfielder: {"T. Mokoena", "S. Mkhize"},
			team.Defender:   {"M. Mudau", "G. Xulu"},
			team.Goalkeeper: {"R. Williams"},
		},
	},
	"DEN": {
		Code: "DEN", Name: "Denmark",
		Confederation: "UEFA", FIFARanking: 19,
		Attack: 1.50, Defense: 1.55, Midfield: 1.50, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"R. Højlund", "J. Wind", "A. Olsen"},
			team.Midfielder: {"C. Eriksen", "P. Højbjerg", "M. Hjulmand"},
			team.Defender:   {"A. Christensen", "J. Andersen", "V. Kristensen"},
			team.Goalkeeper: {"K. Schmeichel"},
		},
	},
	"CAN": {
		Code: "CAN", Name: "Canada",
		Confederation: "CONCACAF", FIFARanking: 35,
		Attack: 1.35, Defense: 1.30, Midfield: 1.30, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"J. David", "A. Davies", "C. Larin"},
			team.Midfielder: {"S. Eustáquio", "I. Koné", "T. Buchanan"},
			team.Defender:   {"A. Johnston", "K. Miller", "D. Bombito"},
			team.Goalkeeper: {"M. Crépeau"},
		},
	},
	"SUI": {
		Code: "SUI", Name: "Switzerland",
		Confederation: "UEFA", FIFARanking: 17,
		Attack: 1.45, Defense: 1.60, Midfield: 1.50, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"B. Embolo", "N. Okafor", "Z. Amdouni"},
			team.Midfielder: {"G. Xhaka", "D. Freuler", "R. Vargas"},
			team.Defender:   {"M. Akanji", "N. Elvedi", "R. Rodríguez"},
			team.Goalkeeper: {"Y. Sommer"},
		},
	},
	"QAT": {
		Code: "QAT", Name: "Qatar",
		Confederation: "AFC", FIFARanking: 34,
		Attack: 1.20, Defense: 1.25, Midfield: 1.20, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"Almoez Ali", "Akram Afif", "Mohammed Muntari"},
			team.Midfielder: {"Hassan Al-Haydos", "Abdulaziz Hatem"},
			team.Defender:   {"Bassam Al-Rawi", "Homam Ahmed"},
			team.Goalkeeper: {"Saad Al-Sheeb"},
		},
	},
	"ITA": {
		Code: "ITA", Name: "Italy",
		Confederation: "UEFA", FIFARanking: 10,
		Attack: 1.55, Defense: 1.80, Midfield: 1.65, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"G. Scamacca", "M. Retegui", "F. Chiesa"},
			team.Midfielder: {"N. Barella", "S. Tonali", "L. Pellegrini"},
			team.Defender:   {"A. Bastoni", "R. Calafiori", "G. Di Lorenzo"},
			team.Goalkeeper: {"G. Donnarumma"},
		},
	},
	"BRA": {
		Code: "BRA", Name: "Brazil",
		Confederation: "CONMEBOL", FIFARanking: 5,
		Attack: 1.85, Defense: 1.70, Midfield: 1.75, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"Vinícius Jr", "Rodrygo", "Endrick"},
			team.Midfielder: {"Bruno Guimarães", "Lucas Paquetá", "Raphinha"},
			team.Defender:   {"Marquinhos", "É. Militão", "G. Magalhães"},
			team.Goalkeeper: {"Alisson"},
		},
	},
	"MAR": {
		Code: "MAR", Name: "Morocco",
		Confederation: "CAF", FIFARanking: 16,
		Attack: 1.50, Defense: 1.60, Midfield: 1.55, Form: 0.70,
		Roster: map[team.Position][]string{
			team.Forward:    {"Y. En-Nesyri", "H. Ziyech", "S. Boufal"},
			team.Midfielder: {"S. Amrabat", "A. Ounahi", "I. Bennacer"},
			team.Defender:   {"A. Hakimi", "N. Mazraoui", "N. Aguerd"},
			team.Goalkeeper: {"Y. Bounou"},
		},
	},
	"HAI": {
		Code: "HAI", Name: "Haiti",
		Confederation: "CONCACAF", FIFARanking: 47,
		Attack: 0.85, Defense: 0.90, Midfield: 0.85, Form: 0.35,
		Roster: map[team.Position][]string{
			team.Forward:    {"F. Pierrot", "D. Jean-Jacques"},
			team.Midfielder: {"M. Duval", "D. Étienne Jr"},
			team.Defender:   {"C. Hérold", "A. Gedeon"},
			team.Goalkeeper: {"J. Placide"},
		},
	},
	"SCO": {
		Code: "SCO", Name: "Scotland",
		Confederation: "UEFA", FIFARanking: 27,
		Attack: 1.35, Defense: 1.40, Midfield: 1.40, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"C. Adams", "L. Dykes", "R. Shankland"},
			team.Midfielder: {"S. McTominay", "J. McGinn", "B. Gilmour"},
			team.Defender:   {"A. Robertson", "K. Tierney", "J. Hendry"},
			team.Goalkeeper: {"A. Gunn"},
		},
	},
	"USA": {
		Code: "USA", Name: "United States",
		Confederation: "CONCACAF", FIFARanking: 15,
		Attack: 1.50, Defense: 1.50, Midfield: 1.50, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"C. Pulisic", "T. Weah", "F. Balogun"},
			team.Midfielder: {"W. McKennie", "T. Adams", "G. Reyna"},
			team.Defender:   {"S. Dest", "C. Richards", "T. Robinson"},
			team.Goalkeeper: {"M. Turner"},
		},
	},
	"PAR": {
		Code: "PAR", Name: "Paraguay",
		Confederation: "CONMEBOL", FIFARanking: 33,
		Attack: 1.30, Defense: 1.35, Midfield: 1.30, Form: 0.50,
		Roster: map[team.Position][]string{
			team.Forward:    {"A. Enciso", "J. Almirón", "A. Sanabria"},
			team.Midfielder: {"M. Villasanti", "A. Cubas", "Ó. Romero"},
			team.Defender:   {"G. Gómez", "F. Balbuena", "O. Alderete"},
			team.Goalkeeper: {"R. Fernández"},
		},
	},
	"AUS": {
		Code: "AUS", Name: "Australia",
		Confederation: "AFC", FIFARanking: 28,
		Attack: 1.35, Defense: 1.35, Midfield: 1.30, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"M. Duke", "J. Maclaren", "C. Goodwin"},
			team.Midfielder: {"R. McGree", "A. Hrustic", "C. Devlin"},
			team.Defender:   {"H. Souttar", "K. Rowles", "A. Behich"},
			team.Goalkeeper: {"M. Ryan"},
		},
	},
	"TUR": {
		Code: "TUR", Name: "Türkiye",
		Confederation: "UEFA", FIFARanking: 20,
		Attack: 1.50, Defense: 1.45, Midfield: 1.45, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"K. Aktürkoğlu", "B. Yılmaz", "Y. Akgün"},
			team.Midfielder: {"A. Güler", "H. Çalhanoğlu", "İ. Kahveci"},
			team.Defender:   {"M. Demiral", "F. Kadıoğlu", "S. Özkacar"},
			team.Goalkeeper: {"A. Bayındır"},
		},
	},
	"GER": {
		Code: "GER", Name: "Germany",
		Confederation: "UEFA", FIFARanking: 9,
		Attack: 1.75, Defense: 1.70, Midfield: 1.75, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"K. Havertz", "N. Füllkrug", "L. Sané"},
			team.Midfielder: {"J. Musiala", "F. Wirtz", "İ. Gündoğan"},
			team.Defender:   {"A. Rüdiger", "J. Tah", "D. Raum"},
			team.Goalkeeper: {"M. ter Stegen"},
		},
	},
	"CUR": {
		Code: "CUR", Name: "Curaçao",
		Confederation: "CONCACAF", FIFARanking: 46,
		Attack: 0.90, Defense: 0.95, Midfield: 0.90, Form: 0.40,
		Roster: map[team.Position][]string{
			team.Forward:    {"K. Bacuna", "R. Hooi"},
			team.Midfielder: {"L. Bacuna", "J. Rijsdijk"},
			team.Defender:   {"C. Martina", "J. St. Jago"},
			team.Goalkeeper: {"E. Room"},
		},
	},
	"CIV": {
		Code: "CIV", Name: "Ivory Coast",
		Confederation: "CAF", FIFARanking: 38,
		Attack: 1.35, Defense: 1.30, Midfield: 1.30, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"S. Haller", "N. Pépé", "W. Zaha"},
			team.Midfielder: {"F. Kessié", "I. Sangaré", "S. Fofana"},
			team.Defender:   {"S. Aurier", "E. Bailly", "W. Boly"},
			team.Goalkeeper: {"B. Sangaré"},
		},
	},
	"ECU": {
		Code: "ECU", Name: "Ecuador",
		Confederation: "CONMEBOL", FIFARanking: 22,
		Attack: 1.50, Defense: 1.40, Midfield: 1.40, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"E. Valencia", "M. Caicedo", "K. Páez"},
			team.Midfielder: {"M. Caicedo", "A. Franco", "J. Cifuentes"},
			team.Defender:   {"P. Hincapié", "F. Torres", "R. Arboleda"},
			team.Goalkeeper: {"H. Galíndez"},
		},
	},
	"NED": {
		Code: "NED", Name: "Netherlands",
		Confederation: "UEFA", FIFARanking: 7,
		Attack: 1.75, Defense: 1.70, Midfield: 1.70, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"C. Gakpo", "B. Brobbey", "D. Malen"},
			team.Midfielder: {"F. de Jong", "R. Gravenberch", "T. Reijnders"},
			team.Defender:   {"V. van Dijk", "N. Aké", "J. Timber"},
			team.Goalkeeper: {"B. Verbruggen"},
		},
	},
	"JPN": {
		Code: "JPN", Name: "Japan",
		Confederation: "AFC", FIFARanking: 18,
		Attack: 1.55, Defense: 1.50, Midfield: 1.55, Form: 0.70,
		Roster: map[team.Position][]string{
			team.Forward:    {"T. Kubo", "K. Mitoma", "A. Doan"},
			team.Midfielder: {"W. Endo", "H. Doan", "D. Kamada"},
			team.Defender:   {"K. Itakura", "T. Tomiyasu", "M. Yoshida"},
			team.Goalkeeper: {"S. Suzuki"},
		},
	},
	"POL": {
		Code: "POL", Name: "Poland",
		Confederation: "UEFA", FIFARanking: 25,
		Attack: 1.40, Defense: 1.45, Midfield: 1.40, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"R. Lewandowski", "A. Milik", "K. Świderski"},
			team.Midfielder: {"P. Zieliński", "S. Szymański", "J. Moder"},
			team.Defender:   {"J. Kiwior", "J. Bednarek", "M. Cash"},
			team.Goalkeeper: {"W. Szczęsny"},
		},
	},
	"TUN": {
		Code: "TUN", Name: "Tunisia",
		Confederation: "CAF", FIFARanking: 31,
		Attack: 1.25, Defense: 1.40, Midfield: 1.30, Form: 0.50,
		Roster: map[team.Position][]string{
			team.Forward:    {"A. Talbi", "Y. Msakni", "S. Jaziri"},
			team.Midfielder: {"A. Mejbri", "A. Laidouni", "E. Skhiri"},
			team.Defender:   {"D. Bronn", "M. Talbi", "A. Abdi"},
			team.Goalkeeper: {"A. Dahmen"},
		},
	},
	"BEL": {
		Code: "BEL", Name: "Belgium",
		Confederation: "UEFA", FIFARanking: 6,
		Attack: 1.70, Defense: 1.65, Midfield: 1.70, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"R. Lukaku", "J. Doku", "L. Openda"},
			team.Midfielder: {"K. De Bruyne", "Y. Tielemans", "A. Onana"},
			team.Defender:   {"T. Meunier", "A. Theate", "W. Faes"},
			team.Goalkeeper: {"K. Casteels"},
		},
	},
	"EGY": {
		Code: "EGY", Name: "Egypt",
		Confederation: "CAF", FIFARanking: 30,
		Attack: 1.40, Defense: 1.35, Midfield: 1.35, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"M. Salah", "M. Trezeguet", "O. Marmoush"},
			team.Midfielder: {"M. Elneny", "E. Ashour", "I. Adel"},
			team.Defender:   {"A. Hegazi", "M. Abdelmonem", "O. Kamal"},
			team.Goalkeeper: {"M. El Shenawy"},
		},
	},
	"IRN": {
		Code: "IRN", Name: "Iran",
		Confederation: "AFC", FIFARanking: 26,
		Attack: 1.35, Defense: 1.45, Midfield: 1.35, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"M. Taremi", "S. Azmoun", "K. Ansarifard"},
			team.Midfielder: {"S. Ezatolahi", "A. Nourollahi", "A. Jahanbakhsh"},
			team.Defender:   {"S. Hosseini", "M. Pouraliganji", "E. Hajsafi"},
			team.Goalkeeper: {"A. Beiranvand"},
		},
	},
	"NZL": {
		Code: "NZL", Name: "New Zealand",
		Confederation: "OFC", FIFARanking: 44,
		Attack: 1.05, Defense: 1.15, Midfield: 1.05, Form: 0.40,
		Roster: map[team.Position][]string{
			team.Forward:    {"C. Wood", "M. Rojas"},
			team.Midfielder: {"M. Stamenic", "J. Bell"},
			team.Defender:   {"T. Smith", "N. Reid"},
			team.Goalkeeper: {"S. Marinovic"},
		},
	},
	"ESP": {
		Code: "ESP", Name: "Spain",
		Confederation: "UEFA", FIFARanking: 3,
		Attack: 1.85, Defense: 1.80, Midfield: 1.90, Form: 0.75,
		Roster: map[team.Position][]string{
			team.Forward:    {"L. Yamal", "N. Williams", "Á. Morata"},
			team.Midfielder: {"Pedri", "Gavi", "Rodri"},
			team.Defender:   {"D. Carvajal", "A. Laporte", "R. Le Normand"},
			team.Goalkeeper: {"Unai Simón"},
		},
	},
	"URU": {
		Code: "URU", Name: "Uruguay",
		Confederation: "CONMEBOL", FIFARanking: 13,
		Attack: 1.65, Defense: 1.70, Midfield: 1.55, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"D. Núñez", "F. Pellistri", "M. Araújo"},
			team.Midfielder: {"F. Valverde", "R. Bentancur", "M. Vecino"},
			team.Defender:   {"R. Araújo", "J. Giménez", "M. Olivera"},
			team.Goalkeeper: {"S. Rochet"},
		},
	},
	"KSA": {
		Code: "KSA", Name: "Saudi Arabia",
		Confederation: "AFC", FIFARanking: 35,
		Attack: 1.25, Defense: 1.30, Midfield: 1.25, Form: 0.50,
		Roster: map[team.Position][]string{
			team.Forward:    {"S. Al-Dawsari", "F. Al-Buraikan"},
			team.Midfielder: {"S. Al-Shehri", "M. Kanno", "A. Al-Malki"},
			team.Defender:   {"A. Al-Amri", "Y. Al-Shahrani", "A. Al-Bulayhi"},
			team.Goalkeeper: {"M. Al-Owais"},
		},
	},
	"CPV": {
		Code: "CPV", Name: "Cape Verde",
		Confederation: "CAF", FIFARanking: 45,
		Attack: 1.05, Defense: 1.10, Midfield: 1.05, Form: 0.40,
		Roster: map[team.Position][]string{
			team.Forward:    {"G. Rodrigues", "L. Biai"},
			team.Midfielder: {"K. Borges", "J. Graça"},
			team.Defender:   {"S. Lopes", "R. Fortes"},
			team.Goalkeeper: {"V. Soares"},
		},
	},
	"FRA": {
		Code: "FRA", Name: "France",
		Confederation: "UEFA", FIFARanking: 2,
		Attack: 1.90, Defense: 1.85, Midfield: 1.85, Form: 0.75,
		Roster: map[team.Position][]string{
			team.Forward:    {"K. Mbappé", "O. Dembélé", "M. Thuram"},
			team.Midfielder: {"A. Tchouaméni", "E. Camavinga", "A. Griezmann"},
			team.Defender:   {"W. Saliba", "D. Upamecano", "T. Hernández"},
			team.Goalkeeper: {"M. Maignan"},
		},
	},
	"SEN": {
		Code: "SEN", Name: "Senegal",
		Confederation: "CAF", FIFARanking: 23,
		Attack: 1.45, Defense: 1.45, Midfield: 1.40, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"S. Mané", "I. Sarr", "B. Dia"},
			team.Midfielder: {"I. Gueye", "N. Mendy", "P. Gueye"},
			team.Defender:   {"K. Koulibaly", "A. Diallo", "Y. Sabaly"},
			team.Goalkeeper: {"É. Mendy"},
		},
	},
	"NOR": {
		Code: "NOR", Name: "Norway",
		Confederation: "UEFA", FIFARanking: 29,
		Attack: 1.55, Defense: 1.30, Midfield: 1.35, Form: 0.55,
		Roster: map[team.Position][]string{
			team.Forward:    {"E. Haaland", "A. Sørloth", "O. Ødegaard"},
			team.Midfielder: {"M. Ødegaard", "S. Berge", "F. Aursnes"},
			team.Defender:   {"K. Ajer", "L. Ostigård", "B. Meling"},
			team.Goalkeeper: {"Ø. Nyland"},
		},
	},
	"IRQ": {
		Code: "IRQ", Name: "Iraq",
		Confederation: "AFC", FIFARanking: 42,
		Attack: 1.15, Defense: 1.20, Midfield: 1.15, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"A. Bayesh", "M. Ali"},
			team.Midfielder: {"I. Bayesh", "A. Fadhel"},
			team.Defender:   {"A. Natiq", "R. Ghanim"},
			team.Goalkeeper: {"J. Hameed"},
		},
	},
	"ARG": {
		Code: "ARG", Name: "Argentina",
		Confederation: "CONMEBOL", FIFARanking: 1,
		Attack: 1.95, Defense: 1.85, Midfield: 1.90, Form: 0.80,
		Roster: map[team.Position][]string{
			team.Forward:    {"J. Álvarez", "L. Martínez", "A. Garnacho"},
			team.Midfielder: {"E. Fernández", "A. Mac Allister", "R. De Paul"},
			team.Defender:   {"C. Romero", "L. Martínez", "N. Molina"},
			team.Goalkeeper: {"E. Martínez"},
		},
	},
	"ALG": {
		Code: "ALG", Name: "Algeria",
		Confederation: "CAF", FIFARanking: 32,
		Attack: 1.30, Defense: 1.35, Midfield: 1.30, Form: 0.50,
		Roster: map[team.Position][]string{
			team.Forward:    {"I. Bennacer", "S. Mahrez", "A. Slimani"},
			team.Midfielder: {"I. Bennacer", "S. Atal", "H. Aouar"},
			team.Defender:   {"R. Bensebaini", "A. Mandi", "D. Benlamri"},
			team.Goalkeeper: {"R. M'Bolhi"},
		},
	},
	"AUT": {
		Code: "AUT", Name: "Austria",
		Confederation: "UEFA", FIFARanking: 21,
		Attack: 1.45, Defense: 1.45, Midfield: 1.45, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"M. Arnautović", "M. Gregoritsch", "C. Baumgartner"},
			team.Midfielder: {"K. Laimer", "F. Grillitsch", "N. Seiwald"},
			team.Defender:   {"D. Alaba", "P. Lienhart", "M. Wöber"},
			team.Goalkeeper: {"P. Pentz"},
		},
	},
	"JOR": {
		Code: "JOR", Name: "Jordan",
		Confederation: "AFC", FIFARanking: 40,
		Attack: 1.10, Defense: 1.25, Midfield: 1.15, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"H. Al-Tamari", "Y. Al-Rawashdeh"},
			team.Midfielder: {"M. Abu Hasan", "N. Al-Rawabdeh"},
			team.Defender:   {"A. Al-Naimat", "Y. Al-Bitar"},
			team.Goalkeeper: {"Y. Shboul"},
		},
	},
	"POR": {
		Code: "POR", Name: "Portugal",
		Confederation: "UEFA", FIFARanking: 8,
		Attack: 1.80, Defense: 1.75, Midfield: 1.75, Form: 0.70,
		Roster: map[team.Position][]string{
			team.Forward:    {"R. Leão", "G. Ramos", "P. Félix"},
			team.Midfielder: {"B. Fernandes", "B. Silva", "V. Vitinha"},
			team.Defender:   {"R. Dias", "A. Silva", "N. Mendes"},
			team.Goalkeeper: {"D. Costa"},
		},
	},
	"COL": {
		Code: "COL", Name: "Colombia",
		Confederation: "CONMEBOL", FIFARanking: 12,
		Attack: 1.65, Defense: 1.55, Midfield: 1.60, Form: 0.65,
		Roster: map[team.Position][]string{
			team.Forward:    {"L. Díaz", "R. Falcao", "J. Córdoba"},
			team.Midfielder: {"J. Arias", "J. Cuadrado", "R. Ríos"},
			team.Defender:   {"D. Sánchez", "J. Lucumí", "S. Arias"},
			team.Goalkeeper: {"C. Vargas"},
		},
	},
	"UZB": {
		Code: "UZB", Name: "Uzbekistan",
		Confederation: "AFC", FIFARanking: 41,
		Attack: 1.20, Defense: 1.20, Midfield: 1.20, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"E. Shomurodov", "I. Nasimov"},
			team.Midfielder: {"J. Khodjaev", "O. Amonov"},
			team.Defender:   {"R. Gafurzhanow", "A. Tuhtasinov"},
			team.Goalkeeper: {"U. Kutlimuratov"},
		},
	},
	"COD": {
		Code: "COD", Name: "DR Congo",
		Confederation: "CAF", FIFARanking: 39,
		Attack: 1.25, Defense: 1.20, Midfield: 1.20, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"C. Bakambu", "S. Malango"},
			team.Midfielder: {"Y. Wissa", "N. Mbemba"},
			team.Defender:   {"C. Luyindama", "A. Mbemba"},
			team.Goalkeeper: {"J. Kiassumbua"},
		},
	},
	"ENG": {
		Code: "ENG", Name: "England",
		Confederation: "UEFA", FIFARanking: 4,
		Attack: 1.80, Defense: 1.75, Midfield: 1.80, Form: 0.70,
		Roster: map[team.Position][]string{
			team.Forward:    {"B. Saka", "P. Foden", "H. Kane"},
			team.Midfielder: {"J. Bellingham", "D. Rice", "C. Palmer"},
			team.Defender:   {"J. Stones", "M. Guéhi", "T. Alexander-Arnold"},
			team.Goalkeeper: {"J. Pickford"},
		},
	},
	"CRO": {
		Code: "CRO", Name: "Croatia",
		Confederation: "UEFA", FIFARanking: 11,
		Attack: 1.60, Defense: 1.70, Midfield: 1.70, Form: 0.60,
		Roster: map[team.Position][]string{
			team.Forward:    {"A. Kramarić", "B. Petković", "A. Budimir"},
			team.Midfielder: {"L. Modrić", "M. Brozović", "M. Kovačić"},
			team.Defender:   {"J. Gvardiol", "D. Šutalo", "J. Stanišić"},
			team.Goalkeeper: {"D. Livaković"},
		},
	},
	"GHA": {
		Code: "GHA", Name: "Ghana",
		Confederation: "CAF", FIFARanking: 36,
		Attack: 1.30, Defense: 1.25, Midfield: 1.25, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"I. Williams", "J. Ayew", "A. Kudus"},
			team.Midfielder: {"M. Kudus", "T. Partey", "E. Sulemana"},
			team.Defender:   {"A. Djiku", "D. Amartey", "T. Lamptey"},
			team.Goalkeeper: {"L. Jojo Wollacott"},
		},
	},
	"PAN": {
		Code: "PAN", Name: "Panama",
		Confederation: "CONCACAF", FIFARanking: 37,
		Attack: 1.15, Defense: 1.30, Midfield: 1.20, Form: 0.45,
		Roster: map[team.Position][]string{
			team.Forward:    {"J. Fajardo", "E. Guerrero"},
			team.Midfielder: {"A. Carrasquilla", "É. Davis"},
			team.Defender:   {"F. Escobar", "H. Cummings"},
			team.Goalkeeper: {"O. Mosquera"},
		},
	},
}

// Groups returns the official 12-group draw as a fresh copy.
func Groups() map[string][]string {
	out := make(map[string][]string, len(drawGroups))
	for letter, codes := range drawGroups {
		out[letter] = append([]string(nil), codes...)
	}
	return out
}

var drawGroups = map[string][]string{
	"A": {"MEX", "KOR", "RSA", "DEN"},
	"B": {"CAN", "SUI", "QAT", "ITA"},
	"C": {"BRA", "MAR", "HAI", "SCO"},
	"D": {"USA", "PAR", "AUS", "TUR"},
	"E": {"GER", "CUR", "CIV", "ECU"},
	"F": {"NED", "JPN", "POL", "TUN"},
	"G": {"BEL", "EGY", "IRN", "NZL"},
	"H": {"ESP", "URU", "KSA", "CPV"},
	"I": {"FRA", "SEN", "NOR", "IRQ"},
	"J": {"ARG", "ALG", "AUT", "JOR"},
	"K": {"POR", "COL", "UZB", "COD"},
	"L": {"ENG", "CRO", "GHA", "PAN"},
}
