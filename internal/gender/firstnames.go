package gender

// DefaultMale lists lowercase given names treated as male when the exact
// gender table has no entry.
var DefaultMale = []string{
	"achim", "adam", "adis", "adrian", "alaa", "albert", "alexander", "alexis", "alois",
	"andreas", "ansgar", "anton", "armin", "arne", "artur", "ates", "axel", "balten", "bastian",
	"benedikt", "benjamin", "bernd", "boris", "carl", "carl-philipp", "carsten", "cem",
	"christian", "christoph", "christopher", "daniel", "david", "denis", "dennis", "dietmar",
	"dirk", "enrico", "erhard", "erik", "fabian", "falko", "felix", "ferat", "florian", "frank",
	"frederik", "friedrich", "fritz", "georg", "gereon", "gerhard", "gerold", "gerrit",
	"gottfried", "gregor", "gunther", "gökay", "götz", "günter", "hannes", "hans", "hans-jürgen",
	"hansjörg", "harald", "hauke", "heiko", "heinrich", "helge", "helmut", "hendrik", "henning",
	"henri", "herbert", "hermann", "holger", "hubertus", "ingo", "isaac", "jakob", "jan",
	"jan-marco", "jan-niclas", "jan-wilhelm", "janosch", "joachim", "jochen", "johann",
	"johannes", "jonas", "jorrit", "josef", "julian", "jörg", "jörn", "jürgen", "kai", "karl",
	"karsten", "kay", "klaus", "knut", "konrad", "konstantin", "kurt", "lars", "leif",
	"leif-erik", "leon", "lorenz", "luigi", "lukas", "luke", "lutz", "macit", "maik", "malte",
	"manfred", "manuel", "marc", "marcel", "marco", "marcus", "mario", "mark", "markus", "martin",
	"marvin", "matthias", "max", "maximilian", "metin", "micha", "michael", "mirco", "moritz",
	"nicolai", "niklas", "nils", "norbert", "olaf", "olav", "oliver", "omid", "oskar", "otto",
	"parsa", "pascal", "patrick", "paul", "peter", "philip", "philipp", "pierre", "raimond",
	"rainer", "ralf", "ralph", "reinhard", "rene", "rené", "reza", "richard", "robert", "robin",
	"rocco", "roderich", "roland", "rolf", "ronald", "ruben", "rüdiger", "sascha", "sebastian",
	"sepp", "sergej", "sieghard", "stefan", "steffen", "stephan", "sven", "tarek", "theo",
	"theodor", "thomas", "thorsten", "til", "tilman", "tim", "timon", "tino", "tobias", "torben",
	"truels", "udo", "ulrich", "uwe", "vinzenz", "volker", "waldemar", "walter", "werner",
	"wilfried", "wilhelm", "wolfgang",
}

// DefaultFemale is the female counterpart of DefaultMale.
var DefaultFemale = []string{
	"agnieszka", "alexandra", "andrea", "anette", "angela", "angelika", "anja", "anke", "anna",
	"annalena", "anne", "anne-mieke", "annette", "annika", "astrid", "ayse", "barbara", "beate",
	"bettina", "birgit", "britta", "bärbel", "cansin", "caren", "carina", "carolin", "caroline",
	"catarina", "chantal", "charlotte", "christiane", "christina", "christine", "clara",
	"claudia", "corinna", "cornelia", "dagmar", "daniela", "deborah", "denise", "desiree",
	"diana", "doris", "dorothee", "dunja", "elena", "elisabeth", "elke", "ellen", "emilia",
	"emma", "erika", "esra", "esther", "eva", "filiz", "franziska", "frauke", "gabriela",
	"gisela", "gitta", "gudrun", "hannah", "heide", "heidi", "heike", "helga", "hilde",
	"hildegard", "hülya", "ida", "ilse", "ina", "ines", "inge", "ingeborg", "ingrid", "irene",
	"iris", "isabel", "isabell", "isabelle", "jamila", "jana", "janina", "jasmin", "jasmina",
	"jeanne", "jennifer", "jessica", "johanna", "josephine", "julia", "juliane", "jutta", "karin",
	"karla", "karoline", "katalin", "katharina", "kathrin", "katja", "katrin", "kerstin",
	"kirsten", "klara", "kristin", "lamya", "lara", "laura", "lea", "lena", "linda", "lisa",
	"luise", "mandy", "manuela", "mareike", "maren", "margarete", "maria", "marie", "marion",
	"marlene", "marta", "martha", "martina", "mechthild", "melanie", "michaela", "monika",
	"nadine", "nancy", "natalie", "nicole", "nina", "ophelia", "ottilie", "patricia", "paula",
	"petra", "pia", "rasha", "rebecca", "reem", "regina", "renate", "ricarda", "rita", "ronja",
	"rosa", "rosemarie", "ruth", "sabine", "sabrina", "sahra", "sanae", "sandra", "sara", "sarah",
	"saskia", "schahina", "serap", "siemtje", "silke", "silvia", "simone", "sofia", "sonja",
	"sophie", "stefanie", "steffi", "stella", "susanne", "svenja", "swantje", "sylvia", "tamara",
	"tanja", "teresa", "theresa", "tijen", "ulrike", "ursula", "ute", "vanessa", "vera", "verena",
	"veronika", "victoria", "violetta", "waltraud", "wiebke", "zada", "zoe",
}
